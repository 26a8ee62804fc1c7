// Package artifact makes sure the model file is present on local disk,
// fetching it from remote blob storage when it is not.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const defaultLocalPath = "energy_model.json"

var (
	// ErrMissingSettings is returned when a fetch is attempted without the
	// settings that locate the remote object.
	ErrMissingSettings = errors.New("missing artifact settings")
	// ErrRetrieval wraps every failure to download the artifact.
	ErrRetrieval = errors.New("artifact retrieval failed")
)

// Settings locate the artifact locally and remotely.
type Settings struct {
	LocalPath   string
	Bucket      string
	Key         string
	Region      string
	BlobBaseURL string
}

// LoadSettings reads artifact settings from the environment. Missing remote
// settings are not an error here; they surface when a fetch is attempted.
func LoadSettings() Settings {
	s := Settings{
		LocalPath:   strings.TrimSpace(os.Getenv("MODEL_LOCAL_PATH")),
		Bucket:      strings.TrimSpace(os.Getenv("AWS_BUCKET_NAME")),
		Key:         strings.TrimSpace(os.Getenv("MODEL_KEY")),
		Region:      strings.TrimSpace(os.Getenv("AWS_REGION")),
		BlobBaseURL: strings.TrimSpace(os.Getenv("MODEL_BLOB_BASE_URL")),
	}
	if s.LocalPath == "" {
		s.LocalPath = defaultLocalPath
	}
	return s
}

// Source streams the remote artifact.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Source returns the blob store source when a base URL is configured and the
// S3 source otherwise.
func (s Settings) Source() Source {
	if s.BlobBaseURL != "" {
		return &BlobSource{BaseURL: s.BlobBaseURL, Key: s.Key}
	}
	return &S3Source{Bucket: s.Bucket, Key: s.Key, Region: s.Region}
}

// Ensure fetches the artifact from src into path unless path already exists.
// The download goes to a temporary file in the same directory which is only
// renamed onto path once complete.
func Ensure(ctx context.Context, path string, src Source) (bool, error) {
	logger := log.With().Str("component", "artifact").Str("path", path).Logger()

	if _, err := os.Stat(path); err == nil {
		logger.Debug().Msg("model artifact present, skipping fetch")
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat model artifact: %w", err)
	}

	logger.Info().Str("source", src.String()).Msg("downloading model artifact")

	body, err := src.Open(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}
	defer body.Close()

	if err := writeAtomic(path, body); err != nil {
		return false, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	logger.Info().Msg("model artifact downloaded")
	return true, nil
}

func writeAtomic(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("move artifact into place: %w", err)
	}
	return nil
}
