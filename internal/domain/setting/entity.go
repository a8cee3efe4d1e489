package setting

import "time"

// KeyAllowMultipleAttendance toggles the cycle policy between strict
// (one entry + one exit per day) and flexible (unbounded alternation).
const KeyAllowMultipleAttendance = "allow_multiple_attendance"

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
