// Package errors provides custom error types for the shipment analysis API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidResponse = errors.New("invalid response format")
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrNotFound        = errors.New("not found")
)

// APIError represents a failed request to the analysis service.
// Detail carries the server-provided "detail" field when present.
type APIError struct {
	StatusCode int
	Endpoint   string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Detail)
	}
	return fmt.Sprintf("API error [%d] at %s", e.StatusCode, e.Endpoint)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Detail:     detail,
	}
}

// NetworkError represents a transport-level failure (connection refused,
// DNS, broken pipe) where no HTTP response was received.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message  string
	Endpoint string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, endpoint string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint}
}

// DownloadError represents a chart image download failure
type DownloadError struct {
	URL     string
	Message string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed for %s: %s", e.URL, e.Message)
}

// NewDownloadError creates a new DownloadError
func NewDownloadError(url, message string) *DownloadError {
	return &DownloadError{URL: url, Message: message}
}

// GetHTTPStatus extracts the HTTP status code from an error, or 0 if none.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from an error, or "" if none.
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}

// Detail returns the server-provided detail text for an error, or "" if
// the error carries none.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// IsNetworkError reports whether the error is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// UserMessage converts an error into the text shown to the user: the
// server-provided detail when present, otherwise the generic fallback.
func UserMessage(err error, generic string) string {
	if detail := Detail(err); detail != "" {
		return detail
	}
	return generic
}
