package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownloadChart(t *testing.T) {
	pngBytes := []byte("\x89PNG fake image data")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/charts/forecast_ab12.png" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := NewClient(srv.URL)

	path, err := client.DownloadChart("/static/charts/forecast_ab12.png", dir)
	if err != nil {
		t.Fatalf("DownloadChart failed: %v", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("returned path is not absolute: %s", path)
	}
	if filepath.Base(path) != "forecast_ab12.png" {
		t.Errorf("filename = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != string(pngBytes) {
		t.Error("downloaded content does not match served content")
	}
}

func TestDownloadChart_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.DownloadChart("/static/charts/gone.png", t.TempDir())
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want status in message", err)
	}
}

func TestDownloadChart_CreatesDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("img"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "charts", "nested")
	client := NewClient(srv.URL)

	if _, err := client.DownloadChart("/c.png", dir); err != nil {
		t.Fatalf("DownloadChart failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("charts dir not created: %v", err)
	}
}

func TestChartFilename(t *testing.T) {
	tests := []struct {
		name        string
		imagePath   string
		contentType string
		want        string
	}{
		{"path with extension", "/static/charts/top_carriers.png", "image/png", "top_carriers.png"},
		{"query string stripped", "/charts/a.png?v=2", "image/png", "a.png"},
		{"jpeg path", "/charts/hist.jpg", "image/jpeg", "hist.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chartFilename(tt.imagePath, tt.contentType); got != tt.want {
				t.Errorf("chartFilename(%q, %q) = %q, want %q", tt.imagePath, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestChartFilename_NoExtensionFallsBack(t *testing.T) {
	got := chartFilename("/charts/latest", "image/png")
	if !strings.HasPrefix(got, "chart_") || !strings.HasSuffix(got, ".png") {
		t.Errorf("chartFilename fallback = %q", got)
	}

	got = chartFilename("/charts/latest", "image/jpeg")
	if !strings.HasSuffix(got, ".jpg") {
		t.Errorf("jpeg fallback = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename(`bad<name>:chart?.png`); strings.ContainsAny(got, `<>:?`) {
		t.Errorf("sanitizeFilename left invalid chars: %q", got)
	}
}
