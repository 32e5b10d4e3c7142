package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies the backup client to object stores.
const DefaultUserAgent = "go-snapshot-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the
// default user agent set. Each call returns an independent client with its
// own configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	c := resty.New().SetHeader("User-Agent", DefaultUserAgent)
	return &HTTPClient{Client: c}
}

// WithRetries enables resty's retry loop for transport errors and 5xx
// responses. count <= 0 leaves retries disabled.
//
// Backup uploads are idempotent PUTs of the same key, so retrying them
// never produces duplicates.
func (c *HTTPClient) WithRetries(count int, wait time.Duration) *HTTPClient {
	if count <= 0 {
		return c
	}
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(4 * wait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() >= http.StatusInternalServerError
		})
	return c
}
