package shift

import (
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
)

// ResolvedSchedule is the expected schedule for one employee on one date.
// Times are time-of-day values; they are only meaningful when IsWorkingDay
// is true.
type ResolvedSchedule struct {
	IsWorkingDay bool
	EntryTime    time.Time
	ExitTime     time.Time
	LunchStart   *time.Time
	LunchEnd     *time.Time
}

// ResolveSchedule resolves the expected schedule for an employee on a date.
// A shift reference always wins over the employee's individual fields, even
// when both are populated. sh is the employee's shift, already loaded by the
// caller; it must be non-nil exactly when emp.ShiftID is set. Without a
// shift, every date is a working day under the individual schedule.
func ResolveSchedule(emp employee.Employee, sh *Shift, date time.Time) (ResolvedSchedule, error) {
	if emp.ShiftID == nil || sh == nil {
		return ResolvedSchedule{
			IsWorkingDay: true,
			EntryTime:    emp.EntryTime,
			ExitTime:     emp.ExitTime,
			LunchStart:   emp.LunchStart,
			LunchEnd:     emp.LunchEnd,
		}, nil
	}

	day := sh.DayFor(WeekdayOf(date))
	if day == nil {
		return ResolvedSchedule{}, ErrScheduleNotFound
	}

	if !day.IsWorkingDay {
		return ResolvedSchedule{IsWorkingDay: false}, nil
	}

	resolved := ResolvedSchedule{
		IsWorkingDay: true,
		LunchStart:   day.LunchStart,
		LunchEnd:     day.LunchEnd,
	}
	if day.EntryTime != nil {
		resolved.EntryTime = *day.EntryTime
	}
	if day.ExitTime != nil {
		resolved.ExitTime = *day.ExitTime
	}

	return resolved, nil
}

// ScheduledWorkMinutes is the scheduled span of the working day in minutes,
// used as the overtime baseline. Zero when the date is not a working day.
func (r ResolvedSchedule) ScheduledWorkMinutes() int {
	if !r.IsWorkingDay {
		return 0
	}
	return MinutesOfDay(r.ExitTime) - MinutesOfDay(r.EntryTime)
}

// MinutesOfDay converts a time-of-day to minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
