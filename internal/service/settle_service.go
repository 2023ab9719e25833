// Package service implements settle's application services: input
// normalization, the settlement computation itself, and roster management.
// Services log outcomes and record metrics; the splitter stays pure.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/settle/internal/metrics"
	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/splitter"
	"github.com/mmynk/settle/internal/storage"
)

// SettleService computes settlements from expense ledgers.
// The store is only needed for roster-based computations and may be nil for
// plain participant-list computations.
type SettleService struct {
	store storage.Store
}

// NewSettleService creates a new SettleService with the given storage backend.
func NewSettleService(store storage.Store) *SettleService {
	return &SettleService{store: store}
}

// Compute normalizes input and runs the settlement pipeline.
// Participant names are de-duplicated preserving first occurrence, and
// expenses with non-positive amounts are dropped up front: the engine is
// guaranteed to only see validated records.
func (s *SettleService) Compute(ctx context.Context, participants []string, expenses []models.Expense) (*splitter.Result, error) {
	people := dedupeNames(participants)
	cleaned := dropInvalidExpenses(expenses)

	start := time.Now()
	res, err := splitter.ComputeSettlements(people, cleaned)
	if err != nil {
		slog.Error("Settlement computation failed", "error", err)
		return nil, err
	}
	duration := time.Since(start)

	for _, w := range res.Warnings {
		slog.Warn("Data quality issue", "expense", w.Expense, "reason", w.Reason, "detail", w.Message)
		metrics.WarningsTotal.WithLabelValues(w.Reason).Inc()
	}

	metrics.ComputationsTotal.Inc()
	metrics.ComputationDuration.Observe(duration.Seconds())
	metrics.TransfersTotal.WithLabelValues("detailed").Add(float64(len(res.Detailed)))
	metrics.TransfersTotal.WithLabelValues("simplified").Add(float64(len(res.Simplified)))

	slog.Info("Settlements computed",
		"participants", len(people),
		"expenses", len(cleaned),
		"detailed", len(res.Detailed),
		"simplified", len(res.Simplified),
		"warnings", len(res.Warnings),
		"duration_ms", duration.Milliseconds(),
	)

	return res, nil
}

// ComputeForRoster runs the pipeline against a stored roster's members.
// The roster is resolved by ID first, then by name.
func (s *SettleService) ComputeForRoster(ctx context.Context, rosterRef string, expenses []models.Expense) (*splitter.Result, error) {
	if s.store == nil {
		return nil, fmt.Errorf("roster computation requires a store")
	}

	roster, err := s.store.GetRoster(ctx, rosterRef)
	if errors.Is(err, storage.ErrRosterNotFound) {
		roster, err = s.store.GetRosterByName(ctx, rosterRef)
	}
	if err != nil {
		slog.Error("Failed to resolve roster", "roster", rosterRef, "error", err)
		return nil, fmt.Errorf("failed to resolve roster %q: %w", rosterRef, err)
	}

	slog.Debug("Resolved roster", "roster_id", roster.ID, "name", roster.Name, "members", len(roster.Members))
	return s.Compute(ctx, roster.Members, expenses)
}

// dedupeNames removes duplicate names preserving first occurrence.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, name := range names {
		if name != "" && !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

// dropInvalidExpenses filters out records with non-positive amounts.
// The engine's contract says these are excluded upstream; this is upstream.
func dropInvalidExpenses(expenses []models.Expense) []models.Expense {
	var valid []models.Expense
	for _, e := range expenses {
		if e.Amount > 0 {
			valid = append(valid, e)
			continue
		}
		slog.Warn("Dropping expense with non-positive amount", "expense", e.Description, "amount", e.Amount)
	}
	return valid
}
