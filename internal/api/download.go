package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
)

// DownloadChart fetches the chart image referenced by an answer's
// imageUrl (a server-relative path) into dir and returns the local path.
func (c *Client) DownloadChart(imagePath, dir string) (string, error) {
	url := c.ResolveURL(imagePath)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", apierrors.NewDownloadError(url, "failed to create directory: "+err.Error())
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", apierrors.NewDownloadError(url, "failed to create request: "+err.Error())
	}
	req.Header.Set("Accept", "image/png,image/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError(imagePath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", apierrors.NewDownloadError(url, fmt.Sprintf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewDownloadError(url, "failed to read response: "+err.Error())
	}

	destPath := filepath.Join(dir, chartFilename(imagePath, resp.Header.Get("Content-Type")))
	if err := os.WriteFile(destPath, body, 0o600); err != nil {
		return "", apierrors.NewDownloadError(url, "failed to save file: "+err.Error())
	}

	absPath, err := filepath.Abs(destPath)
	if err != nil {
		return destPath, nil
	}
	return absPath, nil
}

// chartFilename derives a local filename from the server path, falling
// back to a timestamped name when the path carries no usable one.
func chartFilename(imagePath, contentType string) string {
	parts := strings.Split(strings.Split(imagePath, "?")[0], "/")
	if len(parts) > 0 {
		last := parts[len(parts)-1]
		if matched, _ := regexp.MatchString(`\.\w+$`, last); matched {
			return sanitizeFilename(last)
		}
	}

	ext := ".png"
	if strings.Contains(contentType, "jpeg") {
		ext = ".jpg"
	}
	return fmt.Sprintf("chart_%s%s", time.Now().Format("20060102_150405"), ext)
}

// sanitizeFilename removes invalid characters from filenames
func sanitizeFilename(name string) string {
	reg := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	return strings.TrimSpace(reg.ReplaceAllString(name, "_"))
}
