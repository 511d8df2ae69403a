package endpoint

import (
	"crypto/tls"
	"net/http"
	"time"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout         time.Duration
	Insecure        bool
	FollowRedirects bool

	client *http.Client
}

// Do executes an HTTP request. The underlying http.Client is built on first
// use and reused for the rest of the run.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.client == nil {
		c.client = c.build()
	}
	return c.client.Do(req)
}

func (c *RealHTTPClient) build() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if c.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // intentional for --insecure flag
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}

	if !c.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return client
}
