package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/storage"
)

// CreateRoster persists a new roster and its members to the database.
func (s *SQLiteStore) CreateRoster(ctx context.Context, roster *models.Roster) error {
	// Generate IDs if not set
	if roster.ID == "" {
		roster.ID = uuid.New().String()
	}
	if roster.CreatedAt == 0 {
		roster.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO rosters (id, name, created_at) VALUES (?, ?, ?)",
		roster.ID, roster.Name, roster.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}

	for i, name := range roster.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO roster_members (roster_id, position, name) VALUES (?, ?, ?)",
			roster.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert roster member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRoster retrieves a roster by ID, members in their original order.
func (s *SQLiteStore) GetRoster(ctx context.Context, rosterID string) (*models.Roster, error) {
	return s.getRoster(ctx, "id = ?", rosterID)
}

// GetRosterByName retrieves a roster by display name.
func (s *SQLiteStore) GetRosterByName(ctx context.Context, name string) (*models.Roster, error) {
	return s.getRoster(ctx, "name = ?", name)
}

func (s *SQLiteStore) getRoster(ctx context.Context, where string, arg string) (*models.Roster, error) {
	roster := &models.Roster{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM rosters WHERE "+where,
		arg,
	).Scan(&roster.ID, &roster.Name, &roster.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrRosterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	members, err := s.rosterMembers(ctx, roster.ID)
	if err != nil {
		return nil, err
	}
	roster.Members = members

	return roster, nil
}

// ListRosters retrieves all rosters, newest first.
func (s *SQLiteStore) ListRosters(ctx context.Context) ([]*models.Roster, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM rosters ORDER BY created_at DESC, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var rosters []*models.Roster
	for rows.Next() {
		roster := &models.Roster{}
		if err := rows.Scan(&roster.ID, &roster.Name, &roster.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}
		rosters = append(rosters, roster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rosters: %w", err)
	}

	for _, roster := range rosters {
		members, err := s.rosterMembers(ctx, roster.ID)
		if err != nil {
			return nil, err
		}
		roster.Members = members
	}

	return rosters, nil
}

// DeleteRoster removes a roster; members go with it via ON DELETE CASCADE.
func (s *SQLiteStore) DeleteRoster(ctx context.Context, rosterID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM rosters WHERE id = ?", rosterID)
	if err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrRosterNotFound
	}

	return nil
}

func (s *SQLiteStore) rosterMembers(ctx context.Context, rosterID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM roster_members WHERE roster_id = ? ORDER BY position",
		rosterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan roster member: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster members: %w", err)
	}

	return members, nil
}
