// Package api provides the HTTP client for the shipment analysis service.
package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mbrandao/shipchat/internal/models"
)

// Client is the HTTP client for the analysis service. Requests carry no
// timeout: an operation resolves to success or failure whenever the
// transport delivers it, and the UI stays responsive in the meantime.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientInterface defines the API operations needed by the UI layers.
type ClientInterface interface {
	UploadFile(path string) (*models.UploadResult, error)
	Upload(r io.Reader, filename string) (*models.UploadResult, error)
	Ask(question string, periods int) (*models.AskResult, error)
	DownloadChart(imagePath, dir string) (string, error)
	Health() error
	BaseURL() string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL joins a server-relative path (such as an imageUrl) against
// the base URL. Absolute URLs pass through unchanged.
func (c *Client) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// extractDetail pulls the server-provided detail string out of an error
// body. Bodies that are not JSON or carry no detail yield "".
func extractDetail(body []byte) string {
	return gjson.GetBytes(body, "detail").String()
}
