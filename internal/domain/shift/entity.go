package shift

import "time"

type Shift struct {
	ID        string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Days always holds exactly one detail per weekday once the shift is
	// fully created.
	Days []DayDetail
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

type DayDetail struct {
	ID           string
	ShiftID      string
	Weekday      Weekday
	IsWorkingDay bool
	EntryTime    *time.Time
	ExitTime     *time.Time
	LunchStart   *time.Time
	LunchEnd     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Weekday is a closed enumeration, 1=Monday .. 7=Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return weekdayNames[w-1]
}

// WeekdayOf maps a calendar date to the weekday enum. Go counts Sunday as 0;
// the mapping is total over all dates.
func WeekdayOf(date time.Time) Weekday {
	wd := int(date.Weekday())
	if wd == 0 {
		return Sunday
	}
	return Weekday(wd)
}

// DayFor returns the detail row for a weekday, or nil if the shift is
// missing it. A missing row is a data-integrity violation, not a normal
// lookup miss.
func (s *Shift) DayFor(w Weekday) *DayDetail {
	for i := range s.Days {
		if s.Days[i].Weekday == w {
			return &s.Days[i]
		}
	}
	return nil
}
