package api

import (
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
)

const endpointHealth = "/health"

// Health checks that the analysis service is reachable and reporting ok.
func (c *Client) Health() error {
	resp, err := c.httpClient.Get(c.baseURL + endpointHealth)
	if err != nil {
		return apierrors.NewNetworkError(endpointHealth, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.NewParseError("failed to read response: "+err.Error(), endpointHealth)
	}

	if resp.StatusCode != http.StatusOK {
		return apierrors.NewAPIError(resp.StatusCode, endpointHealth, extractDetail(body))
	}

	if status := gjson.GetBytes(body, "status").String(); status != "ok" {
		return apierrors.NewParseError("unexpected health status: "+status, endpointHealth)
	}

	return nil
}
