// Package server provides the HTTP API for the day-trip planner.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/raphaelgruber/daytrip-go/internal/planner"
)

// TripPlanner defines the planning operation the server depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a stub without touching the real collaborators.
type TripPlanner interface {
	Plan(ctx context.Context, req planner.Request) planner.Response
}

// Server holds the HTTP handler dependencies.
type Server struct {
	planner TripPlanner
	logger  *slog.Logger
}

// New constructs the Server with its dependencies.
func New(p TripPlanner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{planner: p, logger: logger}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	// The original service allowed all origins for frontend interaction.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Post("/generate-itinerary/", s.handleGenerateItinerary)

	return r
}

// generateItineraryRequest is the JSON body for POST /generate-itinerary/.
type generateItineraryRequest struct {
	UserID        string   `json:"user_id,omitempty"`
	City          string   `json:"city"`
	Interests     []string `json:"interests"`
	Budget        int      `json:"budget"`
	StartLocation string   `json:"start_location"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Date          string   `json:"date,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerateItinerary serves POST /generate-itinerary/.
// The response always carries all three fields; collaborator failures are
// absorbed as fallback values, never as a failure status code.
func (s *Server) handleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req generateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if strings.TrimSpace(req.City) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "city is required"})
		return
	}

	resp := s.planner.Plan(r.Context(), planner.Request{
		UserID:        req.UserID,
		City:          req.City,
		Interests:     req.Interests,
		Budget:        req.Budget,
		StartLocation: req.StartLocation,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Date:          req.Date,
	})

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
