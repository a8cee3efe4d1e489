package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
)

// ShiftService manages shift templates and enforces their lifecycle rules.
type ShiftService interface {
	Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	Get(ctx context.Context, id string) (shift.ShiftResponse, error)
	List(ctx context.Context) ([]shift.ShiftResponse, error)
	Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)
	SetStatus(ctx context.Context, req shift.SetStatusRequest) (shift.ShiftResponse, error)
}

type ShiftServiceImpl struct {
	db database.TxRunner
	shift.ShiftRepository
	employee.EmployeeRepository
}

func NewShiftService(
	db database.TxRunner,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
) ShiftService {
	return &ShiftServiceImpl{
		db:                 db,
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements ShiftService. Validation guarantees all seven weekday
// details are present; the transaction guarantees they land together.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	newShift := shift.Shift{
		Name:   req.Name,
		Status: shift.StatusActive,
		Days:   daysFromRequest(req.Days),
	}

	var created shift.Shift
	err := s.db.InTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.ShiftRepository.Create(ctx, newShift)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

// Get implements ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

// List implements ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

// Update implements ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.ShiftRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		existing.Name = req.Name
		existing.Days = daysFromRequest(req.Days)
		for i := range existing.Days {
			existing.Days[i].ShiftID = existing.ID
		}

		return s.ShiftRepository.Update(ctx, existing)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// SetStatus implements ShiftService. Deactivation is refused while any
// active employee still references the shift.
func (s *ShiftServiceImpl) SetStatus(ctx context.Context, req shift.SetStatusRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	status := shift.Status(req.Status)

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.ShiftRepository.GetByID(ctx, req.ID); err != nil {
			return err
		}

		if status == shift.StatusInactive {
			count, err := s.EmployeeRepository.CountActiveByShift(ctx, req.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%d active employees still assigned: %w", count, shift.ErrShiftInUse)
			}
		}

		return s.ShiftRepository.SetStatus(ctx, req.ID, status)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func daysFromRequest(days []shift.DayDetailRequest) []shift.DayDetail {
	details := make([]shift.DayDetail, 0, len(days))
	for _, day := range days {
		detail := shift.DayDetail{
			Weekday:      shift.Weekday(day.Weekday),
			IsWorkingDay: day.IsWorkingDay,
		}
		if day.IsWorkingDay {
			detail.EntryTime = parseClockPtr(day.EntryTime)
			detail.ExitTime = parseClockPtr(day.ExitTime)
			detail.LunchStart = parseClockPtr(day.LunchStart)
			detail.LunchEnd = parseClockPtr(day.LunchEnd)
		}
		details = append(details, detail)
	}
	return details
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
