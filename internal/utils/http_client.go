package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so application code can extend it without
// touching the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client targeting baseURL. A zero
// timeout leaves resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
