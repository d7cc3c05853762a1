package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/daytrip-go/internal/events"
	"github.com/raphaelgruber/daytrip-go/internal/llm"
	"github.com/raphaelgruber/daytrip-go/internal/planner"
	"github.com/raphaelgruber/daytrip-go/internal/trip"
	"github.com/raphaelgruber/daytrip-go/internal/weather"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a one-day trip interactively",
	Long: `Plan walks you through a short question flow (city, date, time window,
interests, budget, starting location), generates an hour-by-hour itinerary,
and shows the weather forecast and local events for the day.

The trip is recorded as a memory for your user ID, and each interest is
saved as a preference for later runs.

Examples:
  daytrip plan`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

// newPlanner wires the planning collaborators. The LLM is initialized here
// rather than in the root command so read-only commands never touch it.
func newPlanner(logger *slog.Logger) (*planner.Planner, error) {
	model, err := llm.NewModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("init model: %w", err)
	}

	return planner.New(
		trip.NewRequester(model, logger),
		store,
		weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, logger),
		events.NewClient(cfg.NewsAPIKey, cfg.NewsBaseURL, logger),
		logger,
	), nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	answers, err := runSession()
	if err != nil {
		return err
	}

	p, err := newPlanner(slog.Default())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	theme := defaultTheme

	fmt.Println(theme.hintStyle().Render("Generating your itinerary..."))
	resp := p.Plan(ctx, planner.Request{
		UserID:        answers.UserID,
		City:          answers.City,
		Interests:     answers.Interests,
		Budget:        answers.Budget,
		StartLocation: answers.StartLocation,
		StartTime:     answers.StartTime,
		EndTime:       answers.EndTime,
		Date:          answers.Date,
	})

	fmt.Println(theme.successStyle().Render("Itinerary generated!"))
	fmt.Println()
	fmt.Println(theme.titleStyle().Render("Generated Itinerary"))
	fmt.Println(resp.Itinerary)

	fmt.Println()
	fmt.Println(theme.titleStyle().Render("Weather Forecast"))
	fmt.Println(resp.Weather)

	fmt.Println()
	fmt.Println(theme.titleStyle().Render("Local Events"))
	if len(resp.LocalEvents) == 0 {
		fmt.Println("No events found for this date.")
	}
	for _, event := range resp.LocalEvents {
		fmt.Printf("- %s at %s from %s\n", event.Title, event.Location, event.Time)
	}

	// Show the stored history and preferences for the user, as the final
	// stage of the session flow.
	fmt.Println()
	fmt.Println(theme.titleStyle().Render("Your Memories"))
	memories := store.RetrieveMemories(ctx, answers.UserID)
	if len(memories) == 0 {
		fmt.Println("No memories found.")
	}
	for _, m := range memories {
		fmt.Printf("- %s\n", m)
	}

	fmt.Println()
	fmt.Println(theme.titleStyle().Render("Your Preferences"))
	preferences := store.GetPreferences(ctx, answers.UserID)
	if len(preferences) == 0 {
		fmt.Println("No preferences found.")
	}
	for _, pref := range preferences {
		fmt.Printf("- %s\n", pref)
	}

	fmt.Println()
	fmt.Println(theme.successStyle().Render("Have a great trip!"))
	return nil
}
