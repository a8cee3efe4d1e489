package employee

import (
	"errors"
	"strconv"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Cedula     string  `json:"cedula"`
	FullName   string  `json:"nombre"`
	EntryTime  string  `json:"horaEntrada"`
	ExitTime   string  `json:"horaSalida"`
	LunchStart *string `json:"almuerzoInicio,omitempty"`
	LunchEnd   *string `json:"almuerzoFin,omitempty"`
	ShiftID    *string `json:"turnoId,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: "cedula must be 6-12 digits",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
		})
	}

	entry, entryOK := validator.IsValidClockTime(r.EntryTime)
	if !entryOK {
		errs = append(errs, validator.ValidationError{
			Field:   "horaEntrada",
			Message: "horaEntrada must be HH:MM",
		})
	}

	exit, exitOK := validator.IsValidClockTime(r.ExitTime)
	if !exitOK {
		errs = append(errs, validator.ValidationError{
			Field:   "horaSalida",
			Message: "horaSalida must be HH:MM",
		})
	}

	if entryOK && exitOK && !exit.After(entry) {
		errs = append(errs, validator.ValidationError{
			Field:   "horaSalida",
			Message: "horaSalida must be after horaEntrada",
		})
	}

	if (r.LunchStart == nil) != (r.LunchEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "almuerzoInicio",
			Message: "lunch window requires both almuerzoInicio and almuerzoFin",
		})
	}

	if r.LunchStart != nil && r.LunchEnd != nil {
		lunchStart, startOK := validator.IsValidClockTime(*r.LunchStart)
		lunchEnd, endOK := validator.IsValidClockTime(*r.LunchEnd)
		if !startOK || !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "almuerzoInicio",
				Message: "lunch times must be HH:MM",
			})
		} else if entryOK && exitOK {
			// Lunch window must sit strictly inside [entry, exit).
			if !lunchStart.After(entry) || !lunchEnd.After(lunchStart) || !lunchEnd.Before(exit) {
				errs = append(errs, validator.ValidationError{
					Field:   "almuerzoInicio",
					Message: "lunch window must be inside the working hours",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"nombre,omitempty"`
	EntryTime  *string `json:"horaEntrada,omitempty"`
	ExitTime   *string `json:"horaSalida,omitempty"`
	LunchStart *string `json:"almuerzoInicio,omitempty"`
	LunchEnd   *string `json:"almuerzoFin,omitempty"`
	ShiftID    *string `json:"turnoId,omitempty"`
	ClearShift bool    `json:"quitarTurno,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre must not be empty",
		})
	}

	for field, value := range map[string]*string{
		"horaEntrada":    r.EntryTime,
		"horaSalida":     r.ExitTime,
		"almuerzoInicio": r.LunchStart,
		"almuerzoFin":    r.LunchEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidClockTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
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

type ImportEmployeesRequest struct {
	Employees []CreateEmployeeRequest `json:"empleados"`
}

func (r *ImportEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Employees) == 0 {
		return validator.ValidationErrors{{
			Field:   "empleados",
			Message: "empleados must not be empty",
		}}
	}

	for i := range r.Employees {
		if err := r.Employees[i].Validate(); err != nil {
			var nested validator.ValidationErrors
			if errors.As(err, &nested) {
				for _, ve := range nested {
					errs = append(errs, validator.ValidationError{
						Field:   "empleados[" + strconv.Itoa(i) + "]." + ve.Field,
						Message: ve.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Cedula     string  `json:"cedula"`
	FullName   string  `json:"nombre"`
	EntryTime  string  `json:"horaEntrada"`
	ExitTime   string  `json:"horaSalida"`
	LunchStart *string `json:"almuerzoInicio,omitempty"`
	LunchEnd   *string `json:"almuerzoFin,omitempty"`
	ShiftID    *string `json:"turnoId,omitempty"`
	Status     string  `json:"estado"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type ImportEmployeesResponse struct {
	Imported int                `json:"importados"`
	Skipped  []string           `json:"omitidos,omitempty"`
	Results  []EmployeeResponse `json:"empleados"`
}

// ToResponse converts an Employee entity to its wire shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Cedula:     e.Cedula,
		FullName:   e.FullName,
		EntryTime:  e.EntryTime.Format("15:04"),
		ExitTime:   e.ExitTime.Format("15:04"),
		LunchStart: formatClockPtr(e.LunchStart),
		LunchEnd:   formatClockPtr(e.LunchEnd),
		ShiftID:    e.ShiftID,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatClockPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
