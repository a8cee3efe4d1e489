package shift

import (
	"time"

	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

type DayDetailRequest struct {
	Weekday      int     `json:"dia"` // 1=Monday .. 7=Sunday
	IsWorkingDay bool    `json:"laborable"`
	EntryTime    *string `json:"horaEntrada,omitempty"`
	ExitTime     *string `json:"horaSalida,omitempty"`
	LunchStart   *string `json:"almuerzoInicio,omitempty"`
	LunchEnd     *string `json:"almuerzoFin,omitempty"`
}

type CreateShiftRequest struct {
	Name string             `json:"nombre"`
	Days []DayDetailRequest `json:"dias"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
		})
	}

	// Exactly one detail per weekday, all seven present.
	seen := make(map[Weekday]bool, 7)
	for i := range r.Days {
		day := r.Days[i]
		w := Weekday(day.Weekday)
		if !w.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "dias",
				Message: "dia must be between 1 (monday) and 7 (sunday)",
			})
			continue
		}
		if seen[w] {
			errs = append(errs, validator.ValidationError{
				Field:   "dias",
				Message: "duplicate detail for " + w.String(),
			})
			continue
		}
		seen[w] = true

		errs = append(errs, validateDayDetail(day, w)...)
	}

	for w := Monday; w <= Sunday; w++ {
		if !seen[w] {
			errs = append(errs, validator.ValidationError{
				Field:   "dias",
				Message: "missing detail for " + w.String(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDayDetail(day DayDetailRequest, w Weekday) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !day.IsWorkingDay {
		return nil
	}

	if day.EntryTime == nil || day.ExitTime == nil {
		return validator.ValidationErrors{{
			Field:   "dias." + w.String(),
			Message: "working days require horaEntrada and horaSalida",
		}}
	}

	entry, entryOK := validator.IsValidClockTime(*day.EntryTime)
	exit, exitOK := validator.IsValidClockTime(*day.ExitTime)
	if !entryOK || !exitOK {
		return validator.ValidationErrors{{
			Field:   "dias." + w.String(),
			Message: "times must be HH:MM",
		}}
	}
	if !exit.After(entry) {
		errs = append(errs, validator.ValidationError{
			Field:   "dias." + w.String(),
			Message: "horaSalida must be after horaEntrada",
		})
	}

	if (day.LunchStart == nil) != (day.LunchEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "dias." + w.String(),
			Message: "lunch window requires both almuerzoInicio and almuerzoFin",
		})
	} else if day.LunchStart != nil {
		lunchStart, startOK := validator.IsValidClockTime(*day.LunchStart)
		lunchEnd, endOK := validator.IsValidClockTime(*day.LunchEnd)
		if !startOK || !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "dias." + w.String(),
				Message: "lunch times must be HH:MM",
			})
		} else if !lunchStart.After(entry) || !lunchEnd.After(lunchStart) || !lunchEnd.Before(exit) {
			errs = append(errs, validator.ValidationError{
				Field:   "dias." + w.String(),
				Message: "lunch window must be inside the working hours",
			})
		}
	}

	return errs
}

type UpdateShiftRequest struct {
	ID   string             `json:"-"`
	Name string             `json:"nombre"`
	Days []DayDetailRequest `json:"dias"`
}

func (r *UpdateShiftRequest) Validate() error {
	create := CreateShiftRequest{Name: r.Name, Days: r.Days}
	return create.Validate()
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"estado"`
}

func (r *SetStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, StatusValues) {
		return validator.ValidationErrors{{
			Field:   "estado",
			Message: "estado must be active or inactive",
		}}
	}
	return nil
}

type DayDetailResponse struct {
	Weekday      int     `json:"dia"`
	WeekdayName  string  `json:"nombreDia"`
	IsWorkingDay bool    `json:"laborable"`
	EntryTime    *string `json:"horaEntrada,omitempty"`
	ExitTime     *string `json:"horaSalida,omitempty"`
	LunchStart   *string `json:"almuerzoInicio,omitempty"`
	LunchEnd     *string `json:"almuerzoFin,omitempty"`
}

type ShiftResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"nombre"`
	Status    string              `json:"estado"`
	Days      []DayDetailResponse `json:"dias"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

func ToResponse(s Shift) ShiftResponse {
	days := make([]DayDetailResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, DayDetailResponse{
			Weekday:      int(d.Weekday),
			WeekdayName:  d.Weekday.String(),
			IsWorkingDay: d.IsWorkingDay,
			EntryTime:    formatClockPtr(d.EntryTime),
			ExitTime:     formatClockPtr(d.ExitTime),
			LunchStart:   formatClockPtr(d.LunchStart),
			LunchEnd:     formatClockPtr(d.LunchEnd),
		})
	}

	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		Status:    string(s.Status),
		Days:      days,
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatClockPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
