package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for check-in records.
type AttendanceRepository interface {
	// Create inserts one record. This is the recorder's single side effect
	// per call and always runs inside the recording transaction.
	Create(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeAndDate returns one employee's records for a date,
	// ascending by time-of-day. The cycle policy classifies against it.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Record, error)

	// ListByDate returns all records for a date with employee name and
	// cedula joined, ordered by cedula then time.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByDateRange returns records in [start, end] in a single pass,
	// ordered by employee, date, time. Optional employee filter.
	ListByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Record, error)

	// DeleteAll is the privileged bulk purge. Not part of the normal
	// business flow.
	DeleteAll(ctx context.Context) (int64, error)
}
