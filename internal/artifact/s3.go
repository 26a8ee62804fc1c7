package artifact

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ObjectGetter is the subset of the S3 client used to fetch the artifact.
type S3ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source downloads the artifact from an S3 bucket. When Client is nil one is
// built from the default AWS credential chain on first use.
type S3Source struct {
	Bucket string
	Key    string
	Region string
	Client S3ObjectGetter
}

func (s *S3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

// Open starts the GetObject download. The caller closes the returned body.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Bucket == "" {
		return nil, fmt.Errorf("%w: AWS_BUCKET_NAME is required", ErrMissingSettings)
	}
	if s.Key == "" {
		return nil, fmt.Errorf("%w: MODEL_KEY is required", ErrMissingSettings)
	}

	if s.Client == nil {
		client, err := s.newClient(ctx)
		if err != nil {
			return nil, err
		}
		s.Client = client
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", s, err)
	}
	return out.Body, nil
}

func (s *S3Source) newClient(ctx context.Context) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, awsconfig.WithRegion(s.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}
