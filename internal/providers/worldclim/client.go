// Package worldclim is the HTTP client for the WorldClim raster-sampling
// service, which resolves the 19 bioclimatic variables (WORLDCLIM/V1/BIO) at
// a single coordinate. The sampler is a deployed companion service; its base
// URL comes from configuration.
package worldclim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"easy-bioclim/internal/types"
)

// Sample request: http://localhost:8000/v1/bio?latitude=-15.8&longitude=-47.9&variables=BIO1,BIO2,...
const defaultBaseURL = "http://localhost:8000/v1/bio"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(logger, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a specific sampler endpoint.
func NewClientWithBaseURL(logger *slog.Logger, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "worldclim-client"),
	}
}

// GetBioPoint fetches the 19 bioclimatic variables at the given coordinate.
// The context bounds the whole request; cancellation and deadline expiry
// surface as ordinary errors.
func (c *Client) GetBioPoint(ctx context.Context, latitude, longitude float64) (*BioPointAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("variables", strings.Join(types.BioCodes(), ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp BioPointAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
