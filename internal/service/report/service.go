package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asistpro/attendance-backend-go/internal/config"
	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/report"
	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
)

type ReportServiceImpl struct {
	cfg config.AttendanceConfig
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	setting.SettingRepository
}

func NewReportService(
	cfg config.AttendanceConfig,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	settingRepo setting.SettingRepository,
) report.ReportService {
	return &ReportServiceImpl{
		cfg:                  cfg,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		SettingRepository:    settingRepo,
	}
}

// shiftCache avoids re-reading the same shift for every date of a range.
// Journeys are derived per request, so a cache scoped to one call never
// serves stale data.
type shiftCache struct {
	repo   shift.ShiftRepository
	shifts map[string]*shift.Shift
}

func newShiftCache(repo shift.ShiftRepository) *shiftCache {
	return &shiftCache{repo: repo, shifts: make(map[string]*shift.Shift)}
}

func (c *shiftCache) resolve(ctx context.Context, emp employee.Employee, date time.Time) (shift.ResolvedSchedule, error) {
	var sh *shift.Shift
	if emp.ShiftID != nil {
		cached, ok := c.shifts[*emp.ShiftID]
		if !ok {
			loaded, err := c.repo.GetByID(ctx, *emp.ShiftID)
			if err != nil {
				return shift.ResolvedSchedule{}, fmt.Errorf("failed to load shift %s: %w", *emp.ShiftID, err)
			}
			cached = &loaded
			if loaded.Status != shift.StatusActive {
				cached = nil
			}
			c.shifts[*emp.ShiftID] = cached
		}
		sh = cached
	}

	return shift.ResolveSchedule(emp, sh, date)
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, date time.Time) ([]report.DailyRow, error) {
	active := employee.StatusActive
	employees, err := s.EmployeeRepository.List(ctx, &active)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]attendance.Record)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	cache := newShiftCache(s.ShiftRepository)

	rows := make([]report.DailyRow, 0, len(employees))
	for _, emp := range employees {
		row := report.DailyRow{
			EmployeeName: emp.FullName,
			Cedula:       emp.Cedula,
			Status:       report.DayStatusAbsent,
		}

		dayRecords := byEmployee[emp.ID]
		entry := firstOfType(dayRecords, attendance.TypeEntry)
		exit := lastOfType(dayRecords, attendance.TypeExit)

		if entry != nil {
			row.EntryTime = formatTimePtr(entry.Time)
			method := string(entry.Method)
			row.Method = &method
			row.Status = report.DayStatusInJourney

			// Minutes late are derived, not stored; recompute them against
			// the resolved schedule.
			resolved, err := cache.resolve(ctx, emp, date)
			if err != nil {
				return nil, err
			}
			if resolved.IsWorkingDay {
				row.Late, row.MinutesLate = attendance.Lateness(entry.Time, resolved.EntryTime, s.cfg.ToleranceMinutes)
			}
		}
		if exit != nil && entry != nil {
			row.ExitTime = formatTimePtr(exit.Time)
			row.Status = report.DayStatusComplete
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Lateness implements report.ReportService.
func (s *ReportServiceImpl) Lateness(ctx context.Context, start, end time.Time) (report.LatenessReport, error) {
	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end, nil)
	if err != nil {
		return report.LatenessReport{}, err
	}

	cache := newShiftCache(s.ShiftRepository)
	empCache := make(map[string]employee.Employee)

	type tally struct {
		name    string
		cedula  string
		count   int
		minutes int
	}
	tallies := make(map[string]*tally)
	var order []string

	result := report.LatenessReport{
		Detail:  []report.LatenessDetail{},
		Summary: []report.LatenessSummary{},
	}

	for _, rec := range records {
		if rec.Type != attendance.TypeEntry || !rec.Late {
			continue
		}

		emp, ok := empCache[rec.EmployeeID]
		if !ok {
			var err error
			emp, err = s.EmployeeRepository.GetByID(ctx, rec.EmployeeID)
			if err != nil {
				return report.LatenessReport{}, err
			}
			empCache[rec.EmployeeID] = emp
		}

		resolved, err := cache.resolve(ctx, emp, rec.Date)
		if err != nil {
			return report.LatenessReport{}, err
		}
		if !resolved.IsWorkingDay {
			continue
		}

		_, minutesLate := attendance.Lateness(rec.Time, resolved.EntryTime, s.cfg.ToleranceMinutes)

		result.Detail = append(result.Detail, report.LatenessDetail{
			EmployeeName:  emp.FullName,
			Cedula:        emp.Cedula,
			Date:          rec.Date.Format("2006-01-02"),
			EntryTime:     rec.Time.Format("15:04"),
			ScheduledTime: resolved.EntryTime.Format("15:04"),
			MinutesLate:   minutesLate,
		})

		t, ok := tallies[emp.ID]
		if !ok {
			t = &tally{name: emp.FullName, cedula: emp.Cedula}
			tallies[emp.ID] = t
			order = append(order, emp.ID)
		}
		t.count++
		t.minutes += minutesLate
	}

	for _, id := range order {
		t := tallies[id]
		average := decimal.NewFromInt(int64(t.minutes)).
			Div(decimal.NewFromInt(int64(t.count))).
			Round(2)
		result.Summary = append(result.Summary, report.LatenessSummary{
			EmployeeName:   t.name,
			Cedula:         t.cedula,
			TotalLate:      t.count,
			AverageMinutes: average,
		})
	}

	return result, nil
}

// Journeys implements report.ReportService.
func (s *ReportServiceImpl) Journeys(ctx context.Context, start, end time.Time, employeeIDs []string) ([]report.Journey, error) {
	active := employee.StatusActive
	employees, err := s.EmployeeRepository.List(ctx, &active)
	if err != nil {
		return nil, err
	}
	if len(employeeIDs) > 0 {
		wanted := make(map[string]bool, len(employeeIDs))
		for _, id := range employeeIDs {
			wanted[id] = true
		}
		filtered := employees[:0]
		for _, emp := range employees {
			if wanted[emp.ID] {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end, employeeIDs)
	if err != nil {
		return nil, err
	}

	allowMultiple, err := s.SettingRepository.GetBool(ctx, setting.KeyAllowMultipleAttendance, false)
	if err != nil {
		return nil, err
	}
	mode := attendance.CycleModeFor(allowMultiple)

	byEmployeeDay := groupByEmployeeDay(records)
	cache := newShiftCache(s.ShiftRepository)

	journeys := []report.Journey{}
	for _, emp := range employees {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			dayRecords := byEmployeeDay[dayKey(emp.ID, date)]

			journey := report.Journey{
				EmployeeName:  emp.FullName,
				Cedula:        emp.Cedula,
				Date:          date.Format("2006-01-02"),
				WorkedHours:   decimal.Zero,
				OvertimeHours: decimal.Zero,
			}

			entry, exit := PairJourney(dayRecords, mode)
			if entry == nil {
				// No entry that day: did not attend, which is a fact, not
				// an error.
				journeys = append(journeys, journey)
				continue
			}

			journey.Attended = true
			journey.EntryTime = formatTimePtr(entry.Time)

			if exit == nil {
				journeys = append(journeys, journey)
				continue
			}

			journey.ExitTime = formatTimePtr(exit.Time)

			resolved, err := cache.resolve(ctx, emp, date)
			if err != nil {
				return nil, err
			}

			scheduled := resolved.ScheduledWorkMinutes()
			if scheduled <= 0 {
				scheduled = s.cfg.FallbackWorkdayMinutes
			}

			worked, overtime, inconsistent := JourneyFigures(
				shift.MinutesOfDay(entry.Time),
				shift.MinutesOfDay(exit.Time),
				scheduled,
			)

			journey.WorkedMinutes = worked
			journey.OvertimeMinutes = overtime
			journey.Inconsistent = inconsistent
			journey.WorkedHours = minutesToHours(worked)
			journey.OvertimeHours = minutesToHours(overtime)

			journeys = append(journeys, journey)
		}
	}

	return journeys, nil
}

// Report implements report.ReportService.
func (s *ReportServiceImpl) Report(ctx context.Context, start, end time.Time) ([]report.RangeSummary, error) {
	journeys, err := s.Journeys(ctx, start, end, nil)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*report.RangeSummary)
	var order []string

	for _, j := range journeys {
		sum, ok := summaries[j.Cedula]
		if !ok {
			sum = &report.RangeSummary{
				EmployeeName:  j.EmployeeName,
				Cedula:        j.Cedula,
				WorkedHours:   decimal.Zero,
				OvertimeHours: decimal.Zero,
			}
			summaries[j.Cedula] = sum
			order = append(order, j.Cedula)
		}

		if !j.Attended {
			sum.DaysAbsent++
			continue
		}

		sum.DaysWorked++
		sum.WorkedMinutes += j.WorkedMinutes
		sum.OvertimeMinutes += j.OvertimeMinutes
	}

	result := make([]report.RangeSummary, 0, len(order))
	for _, cedula := range order {
		sum := summaries[cedula]
		sum.WorkedHours = minutesToHours(sum.WorkedMinutes)
		sum.OvertimeHours = minutesToHours(sum.OvertimeMinutes)
		result = append(result, *sum)
	}

	return result, nil
}

// PairJourney picks the entry/exit pair that bounds the day's journey.
// Strict mode pairs the first entry with the first exit after it. Flexible
// mode reports the last completed entry-exit pair of the day; an entry
// still open at the end of the list leaves the journey without an exit.
func PairJourney(dayRecords []attendance.Record, mode attendance.CycleMode) (entry, exit *attendance.Record) {
	if mode == attendance.CycleStrict {
		entry = firstOfType(dayRecords, attendance.TypeEntry)
		if entry == nil {
			return nil, nil
		}
		for i := range dayRecords {
			rec := &dayRecords[i]
			if rec.Type == attendance.TypeExit && shift.MinutesOfDay(rec.Time) >= shift.MinutesOfDay(entry.Time) {
				return entry, rec
			}
		}
		// Fall back to any exit so an out-of-order pair surfaces as an
		// inconsistency instead of disappearing.
		return entry, firstOfType(dayRecords, attendance.TypeExit)
	}

	var open *attendance.Record
	for i := range dayRecords {
		rec := &dayRecords[i]
		switch rec.Type {
		case attendance.TypeEntry:
			open = rec
		case attendance.TypeExit:
			if open != nil {
				entry, exit = open, rec
				open = nil
			}
		}
	}
	if entry == nil && open != nil {
		// Only an unclosed entry exists.
		return open, nil
	}
	return entry, exit
}

// JourneyFigures computes worked and overtime minutes for one journey. A
// numerically negative span (exit before entry) is clamped to zero and
// flagged inconsistent rather than propagated.
func JourneyFigures(entryMinutes, exitMinutes, scheduledMinutes int) (worked, overtime int, inconsistent bool) {
	worked = exitMinutes - entryMinutes
	if worked < 0 {
		return 0, 0, true
	}

	overtime = worked - scheduledMinutes
	if overtime < 0 {
		overtime = 0
	}

	return worked, overtime, false
}

func groupByEmployeeDay(records []attendance.Record) map[string][]attendance.Record {
	grouped := make(map[string][]attendance.Record)
	for _, rec := range records {
		key := dayKey(rec.EmployeeID, rec.Date)
		grouped[key] = append(grouped[key], rec)
	}
	return grouped
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func firstOfType(records []attendance.Record, t attendance.RecordType) *attendance.Record {
	for i := range records {
		if records[i].Type == t {
			return &records[i]
		}
	}
	return nil
}

func lastOfType(records []attendance.Record, t attendance.RecordType) *attendance.Record {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Type == t {
			return &records[i]
		}
	}
	return nil
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}

func formatTimePtr(t time.Time) *string {
	s := t.Format("15:04")
	return &s
}
