package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Cycle-policy and
// lateness errors carry terminal-safe messages; infrastructure errors are
// logged with full detail and surfaced as a generic failure.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCedulaExists):
		Conflict(w, "Cedula already registered")
	case errors.Is(err, employee.ErrEmployeeInactive),
		errors.Is(err, employee.ErrAlreadyActive),
		errors.Is(err, employee.ErrAlreadyInactive):
		BadRequest(w, err.Error(), nil)

	// Cycle-policy rejections: the wrapped message includes the employee's
	// name and is safe to show at a physical terminal.
	case errors.Is(err, attendance.ErrInvalidSequence),
		errors.Is(err, attendance.ErrDailyLimitReached):
		BadRequest(w, err.Error(), nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrShiftInactive):
		BadRequest(w, "Shift is inactive", nil)

	// A shift missing a weekday detail is a data-integrity violation, not
	// a request problem.
	case errors.Is(err, shift.ErrScheduleNotFound):
		slog.Error("schedule integrity violation", "error", err)
		InternalServerError(w, "An unexpected error occurred")

	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
