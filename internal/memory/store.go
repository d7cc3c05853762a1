// Package memory implements the graph-backed per-user memory store.
//
// Writes are best-effort by policy: a failed write is logged and reported as
// WriteDropped, never as an error. Reads return empty results on unknown
// users and on backing-store failures. Node writes use get-or-create
// semantics so replays never fail on a missing parent; memory records are
// the exception and are appended verbatim on every call.
package memory

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"

	"github.com/raphaelgruber/daytrip-go/internal/db"
	"github.com/raphaelgruber/daytrip-go/internal/models"
)

// WriteStatus reports the outcome of a best-effort write.
type WriteStatus int

const (
	// WriteCommitted means the write reached the backing store.
	WriteCommitted WriteStatus = iota
	// WriteDropped means the write failed and was logged. The store is
	// unchanged apart from any get-or-create side effects that succeeded.
	WriteDropped
)

// String implements fmt.Stringer.
func (s WriteStatus) String() string {
	if s == WriteCommitted {
		return "committed"
	}
	return "dropped"
}

// Store provides per-user memory history and preference tracking.
type Store struct {
	client *db.Client
	logger *slog.Logger
}

// NewStore creates a memory store over an established database client.
func NewStore(client *db.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, logger: logger}
}

// ensureUser upserts the user node and decodes it back. User ids are
// deterministic, so repeat calls return the same record with its original
// creation time.
func (s *Store) ensureUser(ctx context.Context, userID string) (models.User, error) {
	results, err := surrealdb.Query[[]models.User](ctx, s.client.DB(),
		`UPSERT type::record("user", $user_id)`,
		map[string]any{"user_id": userID})
	if err != nil {
		return models.User{}, err
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return models.User{}, errors.New("user upsert returned no record")
	}
	return (*results)[0].Result[0], nil
}

// AddMemory appends a memory record for the user, creating the user node if
// needed. Each call creates a new memory; memories are never merged.
func (s *Store) AddMemory(ctx context.Context, userID, text string) WriteStatus {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.TrimSpace(text) == "" {
		s.logger.Warn("dropping memory write with empty user or content")
		return WriteDropped
	}

	if _, err := s.ensureUser(ctx, userID); err != nil {
		s.logger.Error("failed to ensure user", "user_id", userID, "error", db.WrapQueryError(err))
		return WriteDropped
	}

	_, err := s.client.Query(ctx, `
		CREATE type::record("memory", $memory_id) SET content = $content;
		RELATE type::record("user", $user_id)->has_memory->type::record("memory", $memory_id);
	`, map[string]any{
		"user_id":   userID,
		"memory_id": uuid.NewString(),
		"content":   text,
	})
	if err != nil {
		s.logger.Error("failed to add memory", "user_id", userID, "error", db.WrapQueryError(err))
		return WriteDropped
	}

	s.logger.Info("memory added", "user_id", userID)
	return WriteCommitted
}

// RetrieveMemories returns the user's memory texts, newest first.
// Returns an empty slice for unknown users and on backing-store failure.
func (s *Store) RetrieveMemories(ctx context.Context, userID string) []string {
	results, err := surrealdb.Query[[]models.Memory](ctx, s.client.DB(), `
		SELECT id, content, timestamp FROM memory
		WHERE <-has_memory<-user CONTAINS type::record("user", $user_id)
		ORDER BY timestamp DESC
	`, map[string]any{"user_id": userID})
	if err != nil {
		s.logger.Error("failed to retrieve memories", "user_id", userID, "error", err)
		return []string{}
	}

	if results == nil || len(*results) == 0 {
		return []string{}
	}

	records := (*results)[0].Result
	memories := make([]string, 0, len(records))
	for _, m := range records {
		memories = append(memories, m.Content)
	}
	return memories
}

// AddPreference links the user to a preference node, creating either node if
// absent. Re-adding an existing preference is a no-op, not a duplicate edge.
func (s *Store) AddPreference(ctx context.Context, userID, name string) WriteStatus {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if userID == "" || name == "" {
		s.logger.Warn("dropping preference write with empty user or name")
		return WriteDropped
	}

	if _, err := s.ensureUser(ctx, userID); err != nil {
		s.logger.Error("failed to ensure user", "user_id", userID, "error", db.WrapQueryError(err))
		return WriteDropped
	}

	_, err := s.client.Query(ctx, `
		UPSERT type::record("preference", $name) SET name = $name;
		RELATE type::record("user", $user_id)->has_preference->type::record("preference", $name);
	`, map[string]any{
		"user_id": userID,
		"name":    name,
	})
	if err != nil {
		// A unique-key violation on the edge means the link already exists,
		// which is exactly the idempotent outcome callers expect.
		wrapped := db.WrapQueryError(err)
		if errors.Is(wrapped, db.ErrDuplicate) {
			return WriteCommitted
		}
		s.logger.Error("failed to add preference", "user_id", userID, "preference", name, "error", wrapped)
		return WriteDropped
	}

	s.logger.Info("preference added", "user_id", userID, "preference", name)
	return WriteCommitted
}

// GetPreferences returns the preference names linked to the user.
// Order is not semantically significant. Returns an empty slice for unknown
// users and on backing-store failure.
func (s *Store) GetPreferences(ctx context.Context, userID string) []string {
	results, err := surrealdb.Query[[]models.Preference](ctx, s.client.DB(), `
		SELECT id, name FROM preference
		WHERE <-has_preference<-user CONTAINS type::record("user", $user_id)
		ORDER BY name
	`, map[string]any{"user_id": userID})
	if err != nil {
		s.logger.Error("failed to retrieve preferences", "user_id", userID, "error", err)
		return []string{}
	}

	if results == nil || len(*results) == 0 {
		return []string{}
	}

	records := (*results)[0].Result
	names := make([]string, 0, len(records))
	for _, p := range records {
		names = append(names, p.Name)
	}
	return names
}

// Close releases the backing connection. No operations are valid afterwards.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}
