package attendance

import (
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

type RecordRequest struct {
	Cedula string  `json:"cedula"`
	Method string  `json:"metodo"`
	Type   *string `json:"tipo,omitempty"` // suggestion only; the cycle policy decides
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: "cedula must be 6-12 digits",
		})
	}

	if !validator.IsInSlice(r.Method, CaptureMethodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "metodo",
			Message: "metodo must be manual, qr or biometric",
		})
	}

	if r.Type != nil && !validator.IsInSlice(*r.Type, RecordTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo must be entry or exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResult is the terminal-facing outcome of one check-in.
type RecordResult struct {
	Message     string                    `json:"message"`
	Type        string                    `json:"tipo"`
	Date        string                    `json:"fecha"`
	Time        string                    `json:"hora"`
	Method      string                    `json:"metodo"`
	Late        bool                      `json:"esTardanza"`
	MinutesLate int                       `json:"tardanza"`
	Employee    employee.EmployeeResponse `json:"employee"`
}

// RecordCreatedEvent is the payload published on the record-created topic
// after a successful recording.
type RecordCreatedEvent struct {
	RecordID     string `json:"recordId"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"empleado"`
	Cedula       string `json:"cedula"`
	Type         string `json:"tipo"`
	Date         string `json:"fecha"`
	Time         string `json:"hora"`
	Method       string `json:"metodo"`
	Late         bool   `json:"esTardanza"`
}
