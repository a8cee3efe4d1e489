package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/config"
	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/asistpro/attendance-backend-go/internal/pkg/events"
)

type AttendanceServiceImpl struct {
	db  database.TxRunner
	cfg config.AttendanceConfig
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	setting.SettingRepository
	publisher events.Publisher

	// now is swappable in tests.
	now func() time.Time
}

func NewAttendanceService(
	db database.TxRunner,
	cfg config.AttendanceConfig,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	settingRepo setting.SettingRepository,
	publisher events.Publisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		cfg:                  cfg,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		SettingRepository:    settingRepo,
		publisher:            publisher,
		now:                  time.Now,
	}
}

// Record implements attendance.AttendanceService. Everything after the
// request validation runs inside one transaction: the employee row lock
// taken by GetByCedulaForUpdate serializes concurrent check-ins for the
// same employee, so the classification always sees the live record count.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResult{}, err
	}

	now := s.now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var result attendance.RecordResult
	var event attendance.RecordCreatedEvent

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByCedulaForUpdate(ctx, req.Cedula)
		if err != nil {
			return err
		}

		if !emp.IsActive() {
			return fmt.Errorf("%s: %w", emp.FullName, employee.ErrEmployeeInactive)
		}

		allowMultiple, err := s.SettingRepository.GetBool(ctx, setting.KeyAllowMultipleAttendance, false)
		if err != nil {
			return fmt.Errorf("failed to read cycle mode: %w", err)
		}

		today, err := s.AttendanceRepository.ListByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to load today's records: %w", err)
		}

		types := make([]attendance.RecordType, 0, len(today))
		for _, rec := range today {
			types = append(types, rec.Type)
		}

		recordType, err := attendance.NextType(types, attendance.CycleModeFor(allowMultiple))
		if err != nil {
			return s.rejectionError(emp, err)
		}

		late := false
		minutesLate := 0
		if recordType == attendance.TypeEntry {
			resolved, err := s.resolveSchedule(ctx, emp, date)
			if err != nil {
				return err
			}
			if resolved.IsWorkingDay {
				late, minutesLate = attendance.Lateness(now, resolved.EntryTime, s.cfg.ToleranceMinutes)
			}
		}

		created, err := s.AttendanceRepository.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Type:       recordType,
			Date:       date,
			Time:       now,
			Method:     attendance.CaptureMethod(req.Method),
			Late:       late,
		})
		if err != nil {
			return err
		}

		result = attendance.RecordResult{
			Message:     recordMessage(emp.FullName, recordType, late),
			Type:        string(recordType),
			Date:        date.Format("2006-01-02"),
			Time:        now.Format("15:04:05"),
			Method:      req.Method,
			Late:        late,
			MinutesLate: minutesLate,
			Employee:    employee.ToResponse(emp),
		}

		event = attendance.RecordCreatedEvent{
			RecordID:     created.ID,
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Cedula:       emp.Cedula,
			Type:         string(recordType),
			Date:         date.Format("2006-01-02"),
			Time:         now.Format("15:04:05"),
			Method:       req.Method,
			Late:         late,
		}

		return nil
	})
	if err != nil {
		return attendance.RecordResult{}, err
	}

	// Publish only after the transaction committed; subscribers must never
	// see a record that was rolled back.
	s.publisher.Publish(events.TopicRecordCreated, event)

	return result, nil
}

func (s *AttendanceServiceImpl) resolveSchedule(ctx context.Context, emp employee.Employee, date time.Time) (shift.ResolvedSchedule, error) {
	var sh *shift.Shift
	if emp.ShiftID != nil {
		loaded, err := s.ShiftRepository.GetByID(ctx, *emp.ShiftID)
		if err != nil {
			return shift.ResolvedSchedule{}, fmt.Errorf("failed to load shift %s: %w", *emp.ShiftID, err)
		}
		if loaded.Status == shift.StatusActive {
			sh = &loaded
		}
	}

	return shift.ResolveSchedule(emp, sh, date)
}

// rejectionError wraps a cycle-policy rejection with a message safe to show
// at a physical terminal, keeping the sentinel in the chain for the HTTP
// mapping.
func (s *AttendanceServiceImpl) rejectionError(emp employee.Employee, err error) error {
	switch err {
	case attendance.ErrDailyLimitReached:
		return fmt.Errorf("%s already completed today's journey: %w", emp.FullName, err)
	case attendance.ErrInvalidSequence:
		return fmt.Errorf("%s's day must start with an entry: %w", emp.FullName, err)
	default:
		return err
	}
}

func recordMessage(name string, recordType attendance.RecordType, late bool) string {
	if recordType == attendance.TypeExit {
		return fmt.Sprintf("Exit recorded for %s", name)
	}
	if late {
		return fmt.Sprintf("Entry recorded for %s (late)", name)
	}
	return fmt.Sprintf("Entry recorded for %s", name)
}

// PurgeAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PurgeAll(ctx context.Context) (int64, error) {
	deleted, err := s.AttendanceRepository.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge attendance records: %w", err)
	}
	return deleted, nil
}
