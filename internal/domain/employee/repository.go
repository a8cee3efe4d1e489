package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees. The engine
// treats employees as read-only input keyed by cedula at check-in time;
// write methods exist for the management surface on top of it.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByCedula(ctx context.Context, cedula string) (Employee, error)

	// GetByCedulaForUpdate locks the employee row for the duration of the
	// surrounding transaction. This is the serialization point for the
	// recorder's classify-then-insert sequence: at most one in-flight
	// recording per employee.
	GetByCedulaForUpdate(ctx context.Context, cedula string) (Employee, error)

	Update(ctx context.Context, emp Employee) error

	SetStatus(ctx context.Context, id string, status Status) error

	List(ctx context.Context, status *Status) ([]Employee, error)

	// CountActiveByShift backs the rule that a shift cannot be deactivated
	// while any active employee still references it.
	CountActiveByShift(ctx context.Context, shiftID string) (int64, error)
}
