package models

// SharedWithAll is the sentinel value in the "Shared With" field meaning the
// expense is split across every participant. A blank field means the same.
// Matching is case-insensitive.
const SharedWithAll = "All"

// Expense represents one shared expense record from the ledger.
// Records arrive from a spreadsheet or an API request; by the time they reach
// the splitter, amounts are positive and strings are trimmed (the readers
// guarantee this).
type Expense struct {
	// Description is the human-readable label for the expense (e.g. "Pizza").
	Description string

	// PaidBy is the name of the participant who fronted the money.
	// If it does not match any participant, the record is skipped with a
	// warning during balance calculation.
	PaidBy string

	// Amount is the full expense amount, always positive.
	Amount float64

	// SharedWith is the raw "Shared With" field: a comma-separated list of
	// names, or blank/"All" meaning every participant. Resolution against
	// the participant set happens inside the splitter.
	SharedWith string
}
