package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
	"github.com/mbrandao/shipchat/internal/models"
)

const endpointAsk = "/ask"

// askRequest is the body of POST /ask. Periods controls how far forecast
// questions project ahead; the service defaults it to 14 days.
type askRequest struct {
	Question string `json:"question"`
	Periods  int    `json:"periods,omitempty"`
}

// Ask submits a natural-language question about the uploaded dataset and
// returns the answer text plus an optional chart image reference.
func (c *Client) Ask(question string, periods int) (*models.AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apierrors.ErrEmptyQuestion
	}

	payload, err := json.Marshal(askRequest{Question: question, Periods: periods})
	if err != nil {
		return nil, apierrors.NewParseError("failed to marshal request: "+err.Error(), endpointAsk)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+endpointAsk, bytes.NewReader(payload))
	if err != nil {
		return nil, apierrors.NewNetworkError(endpointAsk, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpointAsk, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewParseError("failed to read response: "+err.Error(), endpointAsk)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewAPIError(resp.StatusCode, endpointAsk, extractDetail(respBody))
	}

	var result models.AskResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, apierrors.NewParseError("invalid ask response: "+err.Error(), endpointAsk)
	}

	return &result, nil
}
