package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/asistpro/attendance-backend-go/internal/pkg/events"
)

// EmployeeService manages the employee roster the engine records against.
type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context, status *employee.Status) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	SetStatus(ctx context.Context, req employee.SetStatusRequest) (employee.EmployeeResponse, error)

	// Import creates employees in bulk and publishes one employees-imported
	// event for the whole batch. Rows whose cedula already exists are
	// skipped, not fatal.
	Import(ctx context.Context, req employee.ImportEmployeesRequest) (employee.ImportEmployeesResponse, error)
}

type EmployeeServiceImpl struct {
	db database.TxRunner
	employee.EmployeeRepository
	shift.ShiftRepository
	publisher events.Publisher
}

func NewEmployeeService(
	db database.TxRunner,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	publisher events.Publisher,
) EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
		publisher:          publisher,
	}
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.entityFromRequest(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) entityFromRequest(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if req.ShiftID != nil {
		sh, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID)
		if err != nil {
			return employee.Employee{}, err
		}
		if sh.Status != shift.StatusActive {
			return employee.Employee{}, shift.ErrShiftInactive
		}
	}

	entry, _ := time.Parse("15:04", req.EntryTime)
	exit, _ := time.Parse("15:04", req.ExitTime)

	return employee.Employee{
		Cedula:     req.Cedula,
		FullName:   req.FullName,
		EntryTime:  entry,
		ExitTime:   exit,
		LunchStart: parseClockPtr(req.LunchStart),
		LunchEnd:   parseClockPtr(req.LunchEnd),
		ShiftID:    req.ShiftID,
		Status:     employee.StatusActive,
	}, nil
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, status *employee.Status) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.EntryTime != nil {
		if t := parseClockPtr(req.EntryTime); t != nil {
			emp.EntryTime = *t
		}
	}
	if req.ExitTime != nil {
		if t := parseClockPtr(req.ExitTime); t != nil {
			emp.ExitTime = *t
		}
	}
	if req.LunchStart != nil {
		emp.LunchStart = parseClockPtr(req.LunchStart)
	}
	if req.LunchEnd != nil {
		emp.LunchEnd = parseClockPtr(req.LunchEnd)
	}
	if req.ClearShift {
		emp.ShiftID = nil
	} else if req.ShiftID != nil {
		sh, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if sh.Status != shift.StatusActive {
			return employee.EmployeeResponse{}, shift.ErrShiftInactive
		}
		emp.ShiftID = req.ShiftID
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// SetStatus implements EmployeeService.
func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, req employee.SetStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.Status(req.Status)
	if emp.Status == status {
		if status == employee.StatusActive {
			return employee.EmployeeResponse{}, employee.ErrAlreadyActive
		}
		return employee.EmployeeResponse{}, employee.ErrAlreadyInactive
	}

	if err := s.EmployeeRepository.SetStatus(ctx, req.ID, status); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Import implements EmployeeService.
func (s *EmployeeServiceImpl) Import(ctx context.Context, req employee.ImportEmployeesRequest) (employee.ImportEmployeesResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	var response employee.ImportEmployeesResponse

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		for _, row := range req.Employees {
			// Existence is checked up front; a unique-violation inside the
			// transaction would poison every following statement.
			_, err := s.EmployeeRepository.GetByCedula(ctx, row.Cedula)
			if err == nil {
				response.Skipped = append(response.Skipped, row.Cedula)
				continue
			}
			if !errors.Is(err, employee.ErrEmployeeNotFound) {
				return fmt.Errorf("cedula %s: %w", row.Cedula, err)
			}

			emp, err := s.entityFromRequest(ctx, row)
			if err != nil {
				return fmt.Errorf("cedula %s: %w", row.Cedula, err)
			}

			created, err := s.EmployeeRepository.Create(ctx, emp)
			if err != nil {
				return fmt.Errorf("cedula %s: %w", row.Cedula, err)
			}

			response.Imported++
			response.Results = append(response.Results, employee.ToResponse(created))
		}
		return nil
	})
	if err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	s.publisher.Publish(events.TopicEmployeesImported, map[string]interface{}{
		"importados": response.Imported,
		"omitidos":   len(response.Skipped),
	})

	return response, nil
}

func parseClockPtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("15:04", *s)
	if err != nil {
		return nil
	}
	return &t
}
