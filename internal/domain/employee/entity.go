package employee

import (
	"time"
)

type Employee struct {
	ID       string
	Cedula   string
	FullName string

	// Individual default schedule, used when the employee has no shift.
	EntryTime  time.Time
	ExitTime   time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time

	ShiftID *string
	Status  Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
