// Package events looks up local happenings via the newsapi.org search API.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Event is one local event record in the combined response.
type Event struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

// MockEvents returns the fixed placeholder list used when no API key is
// configured. Useful for running the planner without external credentials.
func MockEvents() []Event {
	return []Event{
		{Title: "Food Festival", Location: "City Center", Time: "1:00 PM - 4:00 PM"},
		{Title: "Historical Walk", Location: "Old Town", Time: "11:00 AM - 1:00 PM"},
	}
}

// noEventsFound is the single placeholder record for failed lookups.
func noEventsFound() []Event {
	return []Event{{Title: "No events found", Location: "", Time: ""}}
}

// Client is a request/response adapter over the newsapi.org everything API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an events client. An empty apiKey is allowed; lookups
// then return the fixed mock list.
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

// articlesResponse mirrors the newsapi.org everything shape.
type articlesResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// LocalEvents returns events for the city from the given date (YYYY-MM-DD).
// Articles are surfaced as events with a placeholder location and their
// publication time. Failures degrade to a single "No events found" record;
// a missing API key yields the fixed mock list regardless of input.
func (c *Client) LocalEvents(ctx context.Context, city, date string) []Event {
	if c.apiKey == "" {
		c.logger.Warn("events lookup using mock data, no API key configured")
		return MockEvents()
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("from", date)
	params.Set("sortBy", "relevance")
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error("failed to build events request", "error", err)
		return noEventsFound()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("events lookup failed", "city", city, "error", err)
		return noEventsFound()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("events lookup returned non-200", "city", city, "status", resp.StatusCode)
		return noEventsFound()
	}

	var payload articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("failed to decode events response", "city", city, "error", err)
		return noEventsFound()
	}

	events := make([]Event, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		events = append(events, Event{
			Title:    article.Title,
			Location: "Various Locations",
			Time:     article.PublishedAt,
		})
	}
	return events
}
