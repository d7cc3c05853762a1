// Package weather looks up one-day forecasts from weatherapi.com.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Unavailable is the fixed fallback returned on any lookup failure.
const Unavailable = "Weather data unavailable."

// Client is a request/response adapter over the weatherapi.com forecast API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a weather client. An empty apiKey is allowed; lookups
// then short-circuit to the Unavailable fallback.
func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// forecastResponse mirrors the nested weatherapi.com forecast shape.
type forecastResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Day struct {
				AvgTempC  float64 `json:"avgtemp_c"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Forecast returns a human-readable weather summary for the city and date
// (YYYY-MM-DD). Any failure degrades to the Unavailable fallback; this call
// never blocks the overall response on an error.
func (c *Client) Forecast(ctx context.Context, city, date string) string {
	if c.apiKey == "" {
		c.logger.Warn("weather lookup skipped, no API key configured")
		return Unavailable
	}

	u := fmt.Sprintf("%s/forecast.json?key=%s&q=%s&dt=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(city), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Error("failed to build weather request", "error", err)
		return Unavailable
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("weather lookup failed", "city", city, "error", err)
		return Unavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("weather lookup returned non-200", "city", city, "status", resp.StatusCode)
		return Unavailable
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("failed to decode weather response", "city", city, "error", err)
		return Unavailable
	}
	if len(payload.Forecast.ForecastDay) == 0 {
		c.logger.Warn("weather response had no forecast days", "city", city)
		return Unavailable
	}

	day := payload.Forecast.ForecastDay[0].Day
	return fmt.Sprintf("Weather on %s in %s: %s, Avg Temp: %.1f°C",
		date, city, day.Condition.Text, day.AvgTempC)
}
