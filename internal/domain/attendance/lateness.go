package attendance

import (
	"time"
)

// Lateness compares an entry time against the scheduled entry time with a
// tolerance window. Exit records are never evaluated. minutesLate is never
// negative: arriving early or within tolerance yields (false, 0).
func Lateness(actual, scheduled time.Time, toleranceMinutes int) (late bool, minutesLate int) {
	diff := minutesOfDay(actual) - minutesOfDay(scheduled)
	if diff <= toleranceMinutes {
		return false, 0
	}
	return true, diff - toleranceMinutes
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
