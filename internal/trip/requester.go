package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raphaelgruber/daytrip-go/internal/llm"
)

// FallbackItinerary is returned when the generator response carries no
// extractable text.
const FallbackItinerary = "Unable to generate itinerary."

// Generator is the text-generation collaborator.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt constructs the natural-language instruction for a one-day trip.
func BuildPrompt(city string, interests []string, startClock, endClock string) string {
	return fmt.Sprintf(
		"Plan a one-day trip in %s starting from %s to %s. "+
			"The user is interested in: %s. "+
			"Provide an itinerary with hourly activities, covering each interest, "+
			"check transportation availability, and balancing exploration, meals, and relaxation.",
		city, startClock, endClock, strings.Join(interests, ", "))
}

// Requester produces an itinerary string end-to-end for a trip request.
type Requester struct {
	gen    Generator
	logger *slog.Logger
}

// NewRequester creates a Requester over a text-generation collaborator.
func NewRequester(gen Generator, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Requester{gen: gen, logger: logger}
}

// Generate builds the prompt, submits it as a single user turn, and parses
// the response into an hour-stamped schedule.
//
// A generation failure never aborts the overall request: an empty response
// degrades to FallbackItinerary, and any other failure (network, timeout,
// unparseable time window) degrades to a descriptive error string inline in
// the itinerary field.
func (r *Requester) Generate(ctx context.Context, city string, interests []string, startClock, endClock string) string {
	prompt := BuildPrompt(city, interests, startClock, endClock)
	r.logger.Info("submitting itinerary prompt", "city", city, "interests", len(interests))

	text, err := r.gen.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNoContent) {
			r.logger.Warn("generator response had no textual content", "city", city)
			return FallbackItinerary
		}
		r.logger.Error("itinerary generation failed", "city", city, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}

	itinerary, err := ParseHourly(text, startClock, endClock)
	if err != nil {
		r.logger.Error("failed to parse generated itinerary", "city", city, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}

	return itinerary
}
