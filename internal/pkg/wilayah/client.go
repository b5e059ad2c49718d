package wilayah

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Region is a single province or regency entry from the wilayah.id
// dataset. Codes are strings like "11" (province) or "11.01" (regency).
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type regionEnvelope struct {
	Data []Region `json:"data"`
}

// Client fetches Indonesian administrative regions from the public
// wilayah.id API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a wilayah.id API client. baseURL should be
// "https://wilayah.id/api" in production; tests point it at a local
// server.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetProvinces fetches all provinces.
func (c *Client) GetProvinces(ctx context.Context) ([]Region, error) {
	return c.fetch(ctx, c.baseURL+"/provinces.json")
}

// GetRegencies fetches the regencies (kota/kabupaten) of one province.
func (c *Client) GetRegencies(ctx context.Context, provinceCode string) ([]Region, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/regencies/%s.json", c.baseURL, provinceCode))
}

func (c *Client) fetch(ctx context.Context, url string) ([]Region, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var envelope regionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return envelope.Data, nil
}
