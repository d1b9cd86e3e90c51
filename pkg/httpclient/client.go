// Package httpclient holds the shared client for this API's outbound
// calls: reCAPTCHA verification and the lead-created webhook. Both run
// inside a form submission, so the client carries a hard timeout rather
// than trusting the remote end to hang up.
package httpclient

import (
	"io"
	"net/http"
	"time"
)

// outboundTimeout bounds every outbound call. Webhook and captcha
// endpoints that take longer than this are treated as down.
const outboundTimeout = 30 * time.Second

// Client is the outbound HTTP surface the services depend on.
// Tests substitute a recording implementation.
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

type outboundClient struct {
	inner *http.Client
}

// NewStandardClient returns the client used for all outbound calls
func NewStandardClient() Client {
	return &outboundClient{
		inner: &http.Client{Timeout: outboundTimeout},
	}
}

func (c *outboundClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.inner.Post(url, contentType, body)
}

func (c *outboundClient) Get(url string) (*http.Response, error) {
	return c.inner.Get(url)
}

func (c *outboundClient) Do(req *http.Request) (*http.Response, error) {
	return c.inner.Do(req)
}
