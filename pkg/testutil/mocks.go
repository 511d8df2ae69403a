package testutil

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a test double for HTTP clients.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// Respond returns a MockHTTPClient that always answers with status and body.
func Respond(status int, body string) *MockHTTPClient {
	return &MockHTTPClient{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return MockResponse(status, body), nil
		},
	}
}

// Fail returns a MockHTTPClient whose requests all fail with err.
func Fail(err error) *MockHTTPClient {
	return &MockHTTPClient{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return nil, err
		},
	}
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
