package shift

import (
	"context"
)

// ShiftRepository defines data access methods for shifts and their
// per-weekday detail rows.
type ShiftRepository interface {
	// Create persists the shift and its detail rows. Callers run it inside
	// a transaction so the all-seven-weekdays invariant holds on commit.
	Create(ctx context.Context, sh Shift) (Shift, error)

	// GetByID retrieves a shift with its detail rows.
	GetByID(ctx context.Context, id string) (Shift, error)

	List(ctx context.Context, status *Status) ([]Shift, error)

	// Update rewrites the shift name and replaces matching detail rows.
	Update(ctx context.Context, sh Shift) error

	SetStatus(ctx context.Context, id string, status Status) error
}
