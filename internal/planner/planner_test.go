package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/daytrip-go/internal/events"
	"github.com/raphaelgruber/daytrip-go/internal/memory"
)

type stubGenerator struct {
	itinerary string
	calls     int
}

func (s *stubGenerator) Generate(context.Context, string, []string, string, string) string {
	s.calls++
	return s.itinerary
}

type recordedWrite struct {
	kind string // "memory" or "preference"
	text string
}

type stubRecorder struct {
	writes []recordedWrite
	status memory.WriteStatus
}

func (s *stubRecorder) AddMemory(_ context.Context, _ string, text string) memory.WriteStatus {
	s.writes = append(s.writes, recordedWrite{kind: "memory", text: text})
	return s.status
}

func (s *stubRecorder) AddPreference(_ context.Context, _ string, name string) memory.WriteStatus {
	s.writes = append(s.writes, recordedWrite{kind: "preference", text: name})
	return s.status
}

type stubWeather struct{ summary string }

func (s stubWeather) Forecast(context.Context, string, string) string { return s.summary }

type stubEvents struct{ list []events.Event }

func (s stubEvents) LocalEvents(context.Context, string, string) []events.Event { return s.list }

func newTestPlanner(gen *stubGenerator, rec *stubRecorder) *Planner {
	return New(gen, rec,
		stubWeather{summary: "Sunny all day"},
		stubEvents{list: []events.Event{{Title: "Food Festival"}}},
		nil)
}

func TestPlan_AssemblesAllFields(t *testing.T) {
	gen := &stubGenerator{itinerary: "09:00 AM: Louvre"}
	rec := &stubRecorder{}
	p := newTestPlanner(gen, rec)

	resp := p.Plan(context.Background(), Request{
		UserID:        "alice",
		City:          "Paris",
		Interests:     []string{"Art Galleries"},
		Budget:        100,
		StartLocation: "Hotel X",
		StartTime:     "09:00 AM",
		EndTime:       "05:00 PM",
		Date:          "2026-09-01",
	})

	assert.Equal(t, "09:00 AM: Louvre", resp.Itinerary)
	assert.Equal(t, "Sunny all day", resp.Weather)
	require.Len(t, resp.LocalEvents, 1)
	assert.Equal(t, "Food Festival", resp.LocalEvents[0].Title)
}

func TestPlan_RecordsMemoryThenPreferences(t *testing.T) {
	gen := &stubGenerator{itinerary: "plan"}
	rec := &stubRecorder{}
	p := newTestPlanner(gen, rec)

	p.Plan(context.Background(), Request{
		UserID:    "alice",
		City:      "Paris",
		Interests: []string{"Beaches", "Shopping"},
		Date:      "2026-09-01",
	})

	require.Len(t, rec.writes, 3)
	assert.Equal(t, recordedWrite{kind: "memory", text: "Generated itinerary for Paris on 2026-09-01"}, rec.writes[0])
	assert.Equal(t, recordedWrite{kind: "preference", text: "Beaches"}, rec.writes[1])
	assert.Equal(t, recordedWrite{kind: "preference", text: "Shopping"}, rec.writes[2])
}

func TestPlan_AnonymousRequestSkipsRecording(t *testing.T) {
	gen := &stubGenerator{itinerary: "plan"}
	rec := &stubRecorder{}
	p := newTestPlanner(gen, rec)

	p.Plan(context.Background(), Request{City: "Paris", Interests: []string{"Beaches"}})

	assert.Empty(t, rec.writes)
}

func TestPlan_DroppedWriteDoesNotAffectResponse(t *testing.T) {
	gen := &stubGenerator{itinerary: "plan"}
	rec := &stubRecorder{status: memory.WriteDropped}
	p := newTestPlanner(gen, rec)

	resp := p.Plan(context.Background(), Request{UserID: "alice", City: "Paris"})

	// Persistence failures are swallowed; the response is complete.
	assert.Equal(t, "plan", resp.Itinerary)
	assert.Equal(t, "Sunny all day", resp.Weather)
	assert.NotEmpty(t, resp.LocalEvents)
}

func TestPlan_DefaultsDateToToday(t *testing.T) {
	gen := &stubGenerator{itinerary: "plan"}
	rec := &stubRecorder{}
	p := newTestPlanner(gen, rec)

	p.Plan(context.Background(), Request{UserID: "alice", City: "Paris"})

	require.NotEmpty(t, rec.writes)
	assert.Regexp(t, `^Generated itinerary for Paris on \d{4}-\d{2}-\d{2}$`, rec.writes[0].text)
}
