package models

// Roster represents a reusable, ordered participant list.
// Rosters let frequent groups (roommates, trip crews) compute settlements
// without retyping everyone's name. Only the names are persisted; expense
// ledgers are never stored.
type Roster struct {
	// ID is the unique identifier for the roster (UUID format).
	ID string

	// Name is the display name of the roster (e.g. "Roommates", "Ski Trip").
	Name string

	// Members is the ordered list of participant names. Order matters: it is
	// the tie-break order for settlement computation.
	Members []string

	// CreatedAt is the Unix timestamp when the roster was created.
	CreatedAt int64
}
