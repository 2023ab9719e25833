// Package splitter implements the settlement engine: it turns a ledger of
// shared expenses into pairwise debts, nets opposing debts between each pair,
// and produces a minimized payment plan via greedy creditor/debtor matching.
//
// The pipeline is strictly forward:
//
//	expenses → debt matrix → net matrix → net balances → minimized transfers
//
// Each stage is a pure function of its inputs; a fresh matrix is built on
// every computation. Data-quality problems (unknown payer, unresolvable
// share list) are reported as Warnings and never abort the computation.
package splitter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/settle/internal/models"
)

// Epsilon is the threshold below which a debt is considered negligible.
// It is applied everywhere an amount is compared to zero, absorbing
// floating-point noise from repeated division and subtraction.
const Epsilon = 0.01

// ErrNoParticipants is returned when a computation is requested with an empty
// participant set. Callers can distinguish "genuinely balanced" from
// "nothing to compute".
var ErrNoParticipants = errors.New("participant set is empty")

// Warning reports a non-fatal data-quality issue found while accumulating
// balances. The offending record is skipped or substituted with a safe
// default; the computation always continues.
type Warning struct {
	// Expense is the description of the record the warning concerns.
	Expense string

	// Reason is a short machine-friendly cause: "unknown_payer" or
	// "unresolvable_sharers".
	Reason string

	// Message is the human-readable diagnostic.
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Expense, w.Message)
}

// round2 rounds to currency cents, half away from zero. Two decimal places is
// the fixed scale of every amount the engine emits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// resolveSharedWith parses a raw "Shared With" field against the participant
// set. Blank or "All" (case-insensitive) expands to every participant.
// Otherwise the field is a comma-separated name list: names are trimmed,
// duplicates collapse to a single share, and unknown names are dropped. If
// nothing survives, the resolution falls back to everyone and the second
// return value is true.
func resolveSharedWith(raw string, participants []string) ([]string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, models.SharedWithAll) {
		return participants, false
	}

	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p] = true
	}

	var sharers []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(trimmed, ",") {
		name = strings.TrimSpace(name)
		if known[name] && !seen[name] {
			seen[name] = true
			sharers = append(sharers, name)
		}
	}

	if len(sharers) == 0 {
		return participants, true
	}
	return sharers, false
}

// AccumulateDebts converts raw expense records into a gross debt matrix.
// For each record the amount is divided evenly across the resolved sharer
// set, and each sharer other than the payer accrues that share as a debt to
// the payer. Records whose payer is not a participant are skipped.
func AccumulateDebts(participants []string, expenses []models.Expense) (*Matrix, []Warning) {
	debts := NewMatrix(participants)
	var warnings []Warning

	for _, e := range expenses {
		sharers, fellBack := resolveSharedWith(e.SharedWith, participants)
		if fellBack {
			warnings = append(warnings, Warning{
				Expense: e.Description,
				Reason:  "unresolvable_sharers",
				Message: fmt.Sprintf("no valid people in %q, defaulting to all participants", e.SharedWith),
			})
		}

		if _, ok := debts.index[e.PaidBy]; !ok {
			warnings = append(warnings, Warning{
				Expense: e.Description,
				Reason:  "unknown_payer",
				Message: fmt.Sprintf("payer %q is not a participant, skipping expense", e.PaidBy),
			})
			continue
		}

		share := e.Amount / float64(len(sharers))
		for _, sharer := range sharers {
			if sharer != e.PaidBy {
				debts.Add(sharer, e.PaidBy, share)
			}
		}
	}

	return debts, warnings
}

// NetDebts collapses each bilateral pair's mutual debt into one net
// directional amount. For every unordered pair the smaller debt cancels
// against the larger; amounts at or below Epsilon vanish entirely, so at most
// one of (A,B) and (B,A) is ever populated.
func NetDebts(debts *Matrix) *Matrix {
	net := NewMatrix(debts.Participants())

	n := debts.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff := debts.At(i, j) - debts.At(j, i)
			switch {
			case diff > Epsilon:
				net.Set(i, j, round2(diff))
			case diff < -Epsilon:
				net.Set(j, i, round2(-diff))
			}
		}
	}

	return net
}
