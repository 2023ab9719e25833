// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settle/internal/models"
)

// ErrRosterNotFound is returned when a roster lookup matches nothing.
var ErrRosterNotFound = errors.New("roster not found")

// Store defines the interface for roster storage operations.
// Only participant rosters are persisted; expense ledgers are deliberately
// not stored anywhere. The abstraction allows swapping storage backends
// (SQLite, PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// CreateRoster persists a new roster and returns the assigned ID.
	// The roster.ID field will be populated by the store.
	CreateRoster(ctx context.Context, roster *models.Roster) error

	// GetRoster retrieves a roster by its ID.
	// Returns ErrRosterNotFound if no roster matches.
	GetRoster(ctx context.Context, rosterID string) (*models.Roster, error)

	// GetRosterByName retrieves a roster by its display name.
	// Returns ErrRosterNotFound if no roster matches.
	GetRosterByName(ctx context.Context, name string) (*models.Roster, error)

	// ListRosters retrieves all rosters, newest first.
	ListRosters(ctx context.Context) ([]*models.Roster, error)

	// DeleteRoster removes a roster and its members.
	// Returns ErrRosterNotFound if no roster matches.
	DeleteRoster(ctx context.Context, rosterID string) error

	// Close releases any resources held by the store.
	Close() error
}
