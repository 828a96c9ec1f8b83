package domain

import (
	"context"
	"errors"
)

// ErrInvalidImport is returned when an import payload is not a JSON array of
// record-like objects. The collection is left unmodified in that case.
var ErrInvalidImport = errors.New("import payload must be a JSON array of employee records")

// RosterRepository defines persistence for the whole employee collection.
// The collection is always written as one unit; there are no partial updates.
type RosterRepository interface {
	// Load reads the persisted collection. The bool reports whether a value
	// was present at all; a present-but-malformed value yields an empty
	// collection with present=true (logged, never surfaced to the user).
	Load(ctx context.Context) (records []Employee, present bool, err error)
	Save(ctx context.Context, records []Employee) error
	Clear(ctx context.Context) error
}
