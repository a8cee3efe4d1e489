package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name: "validation errors map to unprocessable entity",
			err: validator.ValidationErrors{
				{Field: "cedula", Message: "cedula must be 6-12 digits"},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown employee maps to not found",
			err:        employee.ErrEmployeeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate cedula maps to conflict",
			err:        employee.ErrCedulaExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "wrapped daily limit maps to bad request",
			err:        fmt.Errorf("Ana already completed today's journey: %w", attendance.ErrDailyLimitReached),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid sequence maps to bad request",
			err:        attendance.ErrInvalidSequence,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "shift in use maps to conflict",
			err:        fmt.Errorf("3 active employees still assigned: %w", shift.ErrShiftInUse),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "schedule integrity violation maps to internal error",
			err:        shift.ErrScheduleNotFound,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown errors map to internal error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
