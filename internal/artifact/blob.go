package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// BlobSource downloads the artifact over HTTP from <BaseURL>/<Key>.
type BlobSource struct {
	BaseURL string
	Key     string
	Client  *http.Client
}

// URL joins the base URL and key.
func (b *BlobSource) URL() string {
	return strings.TrimRight(b.BaseURL, "/") + "/" + strings.TrimLeft(b.Key, "/")
}

func (b *BlobSource) String() string {
	return b.URL()
}

// Open issues the GET request. The caller closes the returned body.
func (b *BlobSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if b.BaseURL == "" {
		return nil, fmt.Errorf("%w: MODEL_BLOB_BASE_URL is required", ErrMissingSettings)
	}
	if b.Key == "" {
		return nil, fmt.Errorf("%w: MODEL_KEY is required", ErrMissingSettings)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.URL(), nil)
	if err != nil {
		return nil, err
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request artifact: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
