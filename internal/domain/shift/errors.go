package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrNameExists    = errors.New("shift name already exists")
	ErrShiftInUse    = errors.New("shift is still referenced by active employees")
	ErrShiftInactive = errors.New("shift is inactive")

	// ErrScheduleNotFound means a shift-linked employee's shift has no
	// detail row for the required weekday. Shift creation guarantees all
	// seven rows, so this signals corrupted data and maps to a 500.
	ErrScheduleNotFound = errors.New("no schedule found for the requested weekday")
)
