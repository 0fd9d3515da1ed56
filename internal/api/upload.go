package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
	"github.com/mbrandao/shipchat/internal/models"
)

const endpointUpload = "/upload"

// UploadFile sends a CSV file from disk to the analysis service.
func (c *Client) UploadFile(path string) (*models.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return c.Upload(f, filepath.Base(path))
}

// Upload sends CSV content to POST /upload as a multipart form with a
// single "file" field and returns the ingestion summary.
func (c *Client) Upload(r io.Reader, filename string) (*models.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apierrors.NewParseError("failed to create form file: "+err.Error(), endpointUpload)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, apierrors.NewParseError("failed to write file data: "+err.Error(), endpointUpload)
	}
	_ = writer.Close()

	req, err := http.NewRequest(http.MethodPost, c.baseURL+endpointUpload, &body)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpointUpload, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpointUpload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewParseError("failed to read response: "+err.Error(), endpointUpload)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewAPIError(resp.StatusCode, endpointUpload, extractDetail(respBody))
	}

	var result models.UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, apierrors.NewParseError("invalid upload response: "+err.Error(), endpointUpload)
	}

	return &result, nil
}
