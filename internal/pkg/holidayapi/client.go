// Package holidayapi wraps the external public-holiday HTTP source used to
// populate the holiday calendar.
package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/config"
)

// PublicHoliday is one holiday entry as returned by the source.
type PublicHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Counties  []string `json:"counties"`
}

// Client wraps the holiday source HTTP API
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
}

// NewClient creates a holiday source client
func NewClient(cfg config.HolidayAPIConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		countryCode: cfg.CountryCode,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// APIError represents a holiday source API error
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("holiday API error [%d] %s", e.StatusCode, e.URL)
}

// PublicHolidays fetches the public holidays for a year.
func (c *Client) PublicHolidays(ctx context.Context, year int) ([]PublicHoliday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	var holidays []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	return holidays, nil
}
