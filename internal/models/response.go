package models

import (
	"fmt"
	"strings"
)

// UploadResult is the response of POST /upload.
type UploadResult struct {
	Message string   `json:"message"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// Summary returns the assistant-facing description of a loaded CSV.
func (r UploadResult) Summary() string {
	return fmt.Sprintf("CSV loaded: %d rows. Columns: %s", r.Rows, strings.Join(r.Columns, ", "))
}

// AskResult is the response of POST /ask. ImageURL, when set, is a path
// relative to the service base URL that serves a static chart image.
type AskResult struct {
	Text     string  `json:"text"`
	ImageURL *string `json:"imageUrl"`
}

// HasImage reports whether the answer carries a chart image.
func (r AskResult) HasImage() bool {
	return r.ImageURL != nil && *r.ImageURL != ""
}

// Empty reports whether the answer carries neither text nor an image.
// Empty answers are shown but never recorded as dashboards.
func (r AskResult) Empty() bool {
	return r.Text == "" && !r.HasImage()
}
