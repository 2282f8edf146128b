package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is attached to every outbound request.
const RequestIDHeader = "X-Request-ID"

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

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Every request leaving the client carries an X-Request-ID header: the value
// pinned in the request context via [WithRequestID], or a fresh UUIDv7.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	gen := NewUUIDGenerator()

	client := resty.New()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(r.Context())
		if !ok {
			id = gen.Generate()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client}
}
