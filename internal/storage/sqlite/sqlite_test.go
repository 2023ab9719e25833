package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "settle-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateRoster generates ID and timestamp", func(t *testing.T) {
		roster := &models.Roster{
			Name:    "Roommates",
			Members: []string{"Alice", "Bob", "Charlie"},
		}

		if err := store.CreateRoster(ctx, roster); err != nil {
			t.Fatalf("CreateRoster failed: %v", err)
		}

		if roster.ID == "" {
			t.Error("Expected roster ID to be generated")
		}
		if roster.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetRoster preserves member order", func(t *testing.T) {
		original := &models.Roster{
			Name:    "Ski Trip",
			Members: []string{"Zoe", "Alice", "Marcus"},
		}
		if err := store.CreateRoster(ctx, original); err != nil {
			t.Fatalf("CreateRoster failed: %v", err)
		}

		retrieved, err := store.GetRoster(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetRoster failed: %v", err)
		}

		if retrieved.Name != original.Name {
			t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, original.Name)
		}
		if len(retrieved.Members) != 3 {
			t.Fatalf("Members count = %d, want 3", len(retrieved.Members))
		}
		// Insertion order, not alphabetical: the tie-break order depends on it.
		for i, want := range original.Members {
			if retrieved.Members[i] != want {
				t.Errorf("Members[%d] = %s, want %s", i, retrieved.Members[i], want)
			}
		}
	})

	t.Run("GetRosterByName", func(t *testing.T) {
		roster, err := store.GetRosterByName(ctx, "Roommates")
		if err != nil {
			t.Fatalf("GetRosterByName failed: %v", err)
		}
		if len(roster.Members) != 3 {
			t.Errorf("Members count = %d, want 3", len(roster.Members))
		}
	})

	t.Run("GetRoster returns ErrRosterNotFound for unknown ID", func(t *testing.T) {
		_, err := store.GetRoster(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrRosterNotFound) {
			t.Errorf("err = %v, want ErrRosterNotFound", err)
		}
	})

	t.Run("ListRosters returns every roster with members", func(t *testing.T) {
		rosters, err := store.ListRosters(ctx)
		if err != nil {
			t.Fatalf("ListRosters failed: %v", err)
		}
		if len(rosters) != 2 {
			t.Fatalf("rosters count = %d, want 2", len(rosters))
		}
		for _, r := range rosters {
			if len(r.Members) == 0 {
				t.Errorf("roster %s has no members", r.Name)
			}
		}
	})

	t.Run("DeleteRoster removes roster and members", func(t *testing.T) {
		roster := &models.Roster{Name: "Temp", Members: []string{"A", "B"}}
		if err := store.CreateRoster(ctx, roster); err != nil {
			t.Fatalf("CreateRoster failed: %v", err)
		}

		if err := store.DeleteRoster(ctx, roster.ID); err != nil {
			t.Fatalf("DeleteRoster failed: %v", err)
		}

		_, err := store.GetRoster(ctx, roster.ID)
		if !errors.Is(err, storage.ErrRosterNotFound) {
			t.Errorf("err = %v, want ErrRosterNotFound after delete", err)
		}
	})

	t.Run("DeleteRoster returns ErrRosterNotFound for unknown ID", func(t *testing.T) {
		err := store.DeleteRoster(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrRosterNotFound) {
			t.Errorf("err = %v, want ErrRosterNotFound", err)
		}
	})

	t.Run("Duplicate roster name rejected", func(t *testing.T) {
		err := store.CreateRoster(ctx, &models.Roster{
			Name:    "Roommates",
			Members: []string{"Alice"},
		})
		if err == nil {
			t.Error("expected error for duplicate roster name")
		}
	})
}
