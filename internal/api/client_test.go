package api

import (
	"testing"
)

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/")

	if client.BaseURL() != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q", client.BaseURL())
	}
}

func TestResolveURL(t *testing.T) {
	client := NewClient("http://localhost:8000")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute path", "/static/charts/x.png", "http://localhost:8000/static/charts/x.png"},
		{"relative path", "static/charts/x.png", "http://localhost:8000/static/charts/x.png"},
		{"full http url", "http://other:9000/img.png", "http://other:9000/img.png"},
		{"full https url", "https://other/img.png", "https://other/img.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.ResolveURL(tt.path); got != tt.want {
				t.Errorf("ResolveURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"with detail", `{"detail": "no data uploaded"}`, "no data uploaded"},
		{"without detail", `{"error": "boom"}`, ""},
		{"not json", "internal server error", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDetail([]byte(tt.body)); got != tt.want {
				t.Errorf("extractDetail = %q, want %q", got, tt.want)
			}
		})
	}
}
