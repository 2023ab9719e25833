package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/storage"
)

// RosterService manages persisted participant rosters.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// CreateRoster validates and persists a new roster.
// Member names are de-duplicated preserving order; a roster needs a name and
// at least one member.
func (s *RosterService) CreateRoster(ctx context.Context, name string, members []string) (*models.Roster, error) {
	if name == "" {
		return nil, fmt.Errorf("roster name is required")
	}
	unique := dedupeNames(members)
	if len(unique) == 0 {
		return nil, fmt.Errorf("roster needs at least one member")
	}

	roster := &models.Roster{
		Name:    name,
		Members: unique,
	}

	if err := s.store.CreateRoster(ctx, roster); err != nil {
		slog.Error("CreateRoster failed", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create roster: %w", err)
	}

	slog.Info("Roster created", "roster_id", roster.ID, "name", name, "members", len(unique))
	return roster, nil
}

// GetRoster resolves a roster by ID, falling back to a name lookup.
func (s *RosterService) GetRoster(ctx context.Context, ref string) (*models.Roster, error) {
	roster, err := s.store.GetRoster(ctx, ref)
	if errors.Is(err, storage.ErrRosterNotFound) {
		roster, err = s.store.GetRosterByName(ctx, ref)
	}
	if err != nil {
		slog.Error("GetRoster failed", "roster", ref, "error", err)
		return nil, err
	}
	return roster, nil
}

// ListRosters retrieves all rosters.
func (s *RosterService) ListRosters(ctx context.Context) ([]*models.Roster, error) {
	rosters, err := s.store.ListRosters(ctx)
	if err != nil {
		slog.Error("ListRosters failed", "error", err)
		return nil, err
	}
	slog.Debug("Listed rosters", "count", len(rosters))
	return rosters, nil
}

// DeleteRoster removes a roster by ID or name.
func (s *RosterService) DeleteRoster(ctx context.Context, ref string) error {
	roster, err := s.GetRoster(ctx, ref)
	if err != nil {
		return err
	}

	if err := s.store.DeleteRoster(ctx, roster.ID); err != nil {
		slog.Error("DeleteRoster failed", "roster_id", roster.ID, "error", err)
		return err
	}

	slog.Info("Roster deleted", "roster_id", roster.ID, "name", roster.Name)
	return nil
}
