package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(400, "/ask", "no data uploaded")

	if got := err.Error(); got != "API error [400] at /ask: no data uploaded" {
		t.Errorf("Error() = %q", got)
	}

	withoutDetail := NewAPIError(500, "/upload", "")
	if got := withoutDetail.Error(); got != "API error [500] at /upload" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("/ask", cause)

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if !IsNetworkError(fmt.Errorf("request failed: %w", err)) {
		t.Error("IsNetworkError should see through wrapping")
	}
}

func TestParseError_IsInvalidResponse(t *testing.T) {
	err := NewParseError("bad json", "/ask")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse sentinel")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api error", NewAPIError(404, "/ask", ""), 404},
		{"wrapped api error", fmt.Errorf("failed: %w", NewAPIError(503, "/health", "")), 503},
		{"network error", NewNetworkError("/ask", errors.New("refused")), 0},
		{"plain error", errors.New("boom"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHTTPStatus(tt.err); got != tt.want {
				t.Errorf("GetHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEndpoint(t *testing.T) {
	if got := GetEndpoint(NewAPIError(400, "/upload", "")); got != "/upload" {
		t.Errorf("GetEndpoint(api) = %q", got)
	}
	if got := GetEndpoint(NewNetworkError("/ask", errors.New("x"))); got != "/ask" {
		t.Errorf("GetEndpoint(network) = %q", got)
	}
	if got := GetEndpoint(errors.New("plain")); got != "" {
		t.Errorf("GetEndpoint(plain) = %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server detail wins", NewAPIError(400, "/ask", "no data uploaded"), "no data uploaded"},
		{"empty detail falls back", NewAPIError(500, "/ask", ""), "generic"},
		{"network error falls back", NewNetworkError("/ask", errors.New("refused")), "generic"},
		{"plain error falls back", errors.New("boom"), "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, "generic"); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDownloadError(t *testing.T) {
	err := NewDownloadError("http://localhost:8000/c.png", "status 404")
	if got := err.Error(); got != "download failed for http://localhost:8000/c.png: status 404" {
		t.Errorf("Error() = %q", got)
	}
}
