// Package planner composes the collaborators into a single trip response.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/daytrip-go/internal/events"
	"github.com/raphaelgruber/daytrip-go/internal/memory"
)

// Request carries the trip parameters for one planning call.
type Request struct {
	// UserID is optional; when empty, no memory or preference is recorded.
	UserID        string
	City          string
	Interests     []string
	Budget        int
	StartLocation string
	StartTime     string
	EndTime       string
	// Date is the trip day (YYYY-MM-DD). Defaults to today when empty.
	Date string
}

// Response is the assembled best-effort result. Every field is populated
// even when a collaborator fails; degraded values carry fallback content.
type Response struct {
	Itinerary   string         `json:"itinerary"`
	Weather     string         `json:"weather"`
	LocalEvents []events.Event `json:"local_events"`
}

// ItineraryGenerator produces the itinerary text for a trip request.
type ItineraryGenerator interface {
	Generate(ctx context.Context, city string, interests []string, startClock, endClock string) string
}

// MemoryRecorder records trip history and preferences, best-effort.
type MemoryRecorder interface {
	AddMemory(ctx context.Context, userID, text string) memory.WriteStatus
	AddPreference(ctx context.Context, userID, name string) memory.WriteStatus
}

// WeatherLookup returns a weather summary for a city and date.
type WeatherLookup interface {
	Forecast(ctx context.Context, city, date string) string
}

// EventsLookup returns local events for a city and date.
type EventsLookup interface {
	LocalEvents(ctx context.Context, city, date string) []events.Event
}

// Planner orchestrates one itinerary request: generate, record, look up
// weather, look up events, assemble. Calls run in that fixed sequence; each
// degrades independently and none can abort the overall response.
type Planner struct {
	generator ItineraryGenerator
	recorder  MemoryRecorder
	weather   WeatherLookup
	events    EventsLookup
	logger    *slog.Logger
}

// New creates a Planner over its four collaborators.
func New(gen ItineraryGenerator, rec MemoryRecorder, w WeatherLookup, e EventsLookup, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{generator: gen, recorder: rec, weather: w, events: e, logger: logger}
}

// Plan executes the collaborator sequence and assembles the response.
func (p *Planner) Plan(ctx context.Context, req Request) Response {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	itinerary := p.generator.Generate(ctx, req.City, req.Interests, req.StartTime, req.EndTime)

	if req.UserID != "" {
		status := p.recorder.AddMemory(ctx, req.UserID,
			fmt.Sprintf("Generated itinerary for %s on %s", req.City, date))
		if status == memory.WriteDropped {
			p.logger.Warn("trip memory not recorded", "user_id", req.UserID, "city", req.City)
		}
		for _, interest := range req.Interests {
			p.recorder.AddPreference(ctx, req.UserID, interest)
		}
	}

	return Response{
		Itinerary:   itinerary,
		Weather:     p.weather.Forecast(ctx, req.City, date),
		LocalEvents: p.events.LocalEvents(ctx, req.City, date),
	}
}
