// Package blob is a thin client for the object storage HTTP API that
// holds signature images and finished PDFs.
//
// Objects are keyed by filename under the store's base URL; a PUT
// returns a provider-assigned public URL in a JSON body. There are no
// retries: a failed call is surfaced to the caller as-is.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client issues authenticated PUTs and unauthenticated GETs against
// the blob store.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a blob store client. token may be empty, in which
// case every upload will fail with an authorization error from the
// store at request time (missing credentials are not a startup error).
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// uploadResponse is the subset of the store's PUT response we use.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload PUTs data to the store under filename and returns the
// provider-assigned public URL.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/%s", c.baseURL, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("blob upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("blob upload returned status %d", resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("failed to decode blob upload response: %w", err)
	}
	if uploaded.URL == "" {
		return "", fmt.Errorf("blob upload response did not contain a URL")
	}

	return uploaded.URL, nil
}

// Download GETs an object by its public URL.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blob download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("blob download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob download body: %w", err)
	}

	return data, nil
}
