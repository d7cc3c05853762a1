// Package models defines the graph records persisted in SurrealDB.
package models

import (
	"time"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// User is a trip-planner user node. Users are created implicitly on their
// first memory or preference write and are never deleted.
type User struct {
	ID      surrealmodels.RecordID `json:"id"`
	Created time.Time              `json:"created,omitempty"`
}

// Memory is a timestamped free-text record owned by exactly one user.
// Memories are immutable once created.
type Memory struct {
	ID        surrealmodels.RecordID `json:"id"`
	Content   string                 `json:"content"`
	Timestamp time.Time              `json:"timestamp,omitempty"`
}

// Preference is a named interest label. Preference nodes are shared: all
// users with the same preference name link to the same record.
type Preference struct {
	ID   surrealmodels.RecordID `json:"id"`
	Name string                 `json:"name"`
}
