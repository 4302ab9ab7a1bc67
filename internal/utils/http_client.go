package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("https://api.scryfall.com"),
//	    utils.WithTimeout(10*time.Second),
//	)
//	resp, err := client.R().Get("/cards/random")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request. Zero leaves the client without a timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithHeader sets a header sent with every request. Empty values are skipped.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		if value != "" {
			c.SetHeader(key, value)
		}
	}
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client,
// connection pool and state, applying opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
