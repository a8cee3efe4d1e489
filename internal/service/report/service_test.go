package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/attendance-backend-go/internal/config"
	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/report"
	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ *employee.Status) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, start, end time.Time, _ []string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

type fakeSettingRepo struct {
	setting.SettingRepository
	allowMultiple bool
}

func (f *fakeSettingRepo) GetBool(_ context.Context, _ string, _ bool) (bool, error) {
	return f.allowMultiple, nil
}

func testConfig() config.AttendanceConfig {
	return config.AttendanceConfig{ToleranceMinutes: 15, FallbackWorkdayMinutes: 540}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:        "emp-1",
		Cedula:    "12345678",
		FullName:  "Ana Torres",
		EntryTime: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		ExitTime:  time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:    employee.StatusActive,
	}
}

func rec(id string, t attendance.RecordType, date time.Time, hour, min int, late bool) attendance.Record {
	return attendance.Record{
		ID:         id,
		EmployeeID: "emp-1",
		Type:       t,
		Date:       date,
		Time:       time.Date(2026, 1, 1, hour, min, 0, 0, time.UTC),
		Method:     attendance.MethodManual,
		Late:       late,
	}
}

func newTestService(emps []employee.Employee, records []attendance.Record, allowMultiple bool) report.ReportService {
	return NewReportService(
		testConfig(),
		&fakeAttendanceRepo{records: records},
		&fakeEmployeeRepo{employees: emps},
		&fakeShiftRepo{shifts: map[string]shift.Shift{}},
		&fakeSettingRepo{allowMultiple: allowMultiple},
	)
}

func TestPairJourney_Strict(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("first entry pairs with first exit after it", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeEntry, date, 9, 0, false),
			rec("2", attendance.TypeExit, date, 18, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleStrict)
		require.NotNil(t, entry)
		require.NotNil(t, exit)
		assert.Equal(t, "1", entry.ID)
		assert.Equal(t, "2", exit.ID)
	})

	t.Run("entry without exit leaves journey open", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeEntry, date, 9, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleStrict)
		require.NotNil(t, entry)
		assert.Nil(t, exit)
	})

	t.Run("no records", func(t *testing.T) {
		entry, exit := PairJourney(nil, attendance.CycleStrict)
		assert.Nil(t, entry)
		assert.Nil(t, exit)
	})

	t.Run("exit before the entry is still reported", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeExit, date, 8, 0, false),
			rec("2", attendance.TypeEntry, date, 9, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleStrict)
		require.NotNil(t, entry)
		require.NotNil(t, exit)
		assert.Equal(t, "2", entry.ID)
		assert.Equal(t, "1", exit.ID)
	})
}

func TestPairJourney_Flexible(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("last completed pair wins", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeEntry, date, 8, 0, false),
			rec("2", attendance.TypeExit, date, 12, 0, false),
			rec("3", attendance.TypeEntry, date, 13, 0, false),
			rec("4", attendance.TypeExit, date, 18, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleFlexible)
		require.NotNil(t, entry)
		require.NotNil(t, exit)
		assert.Equal(t, "3", entry.ID)
		assert.Equal(t, "4", exit.ID)
	})

	t.Run("trailing open entry does not shadow the completed pair", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeEntry, date, 8, 0, false),
			rec("2", attendance.TypeExit, date, 12, 0, false),
			rec("3", attendance.TypeEntry, date, 13, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleFlexible)
		require.NotNil(t, entry)
		require.NotNil(t, exit)
		assert.Equal(t, "1", entry.ID)
		assert.Equal(t, "2", exit.ID)
	})

	t.Run("only an open entry", func(t *testing.T) {
		records := []attendance.Record{
			rec("1", attendance.TypeEntry, date, 8, 0, false),
		}
		entry, exit := PairJourney(records, attendance.CycleFlexible)
		require.NotNil(t, entry)
		assert.Equal(t, "1", entry.ID)
		assert.Nil(t, exit)
	})
}

func TestJourneyFigures(t *testing.T) {
	t.Parallel()

	t.Run("worked within schedule has no overtime", func(t *testing.T) {
		worked, overtime, inconsistent := JourneyFigures(9*60, 17*60, 540)
		assert.Equal(t, 480, worked)
		assert.Zero(t, overtime)
		assert.False(t, inconsistent)
	})

	t.Run("overtime beyond scheduled minutes", func(t *testing.T) {
		worked, overtime, inconsistent := JourneyFigures(9*60, 19*60, 540)
		assert.Equal(t, 600, worked)
		assert.Equal(t, 60, overtime)
		assert.False(t, inconsistent)
	})

	t.Run("negative span clamps to zero and flags", func(t *testing.T) {
		worked, overtime, inconsistent := JourneyFigures(18*60, 9*60, 540)
		assert.Zero(t, worked)
		assert.Zero(t, overtime)
		assert.True(t, inconsistent)
	})
}

func TestJourneys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day1 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	records := []attendance.Record{
		rec("1", attendance.TypeEntry, day1, 9, 0, false),
		rec("2", attendance.TypeExit, day1, 19, 0, false),
	}
	svc := newTestService([]employee.Employee{testEmployee()}, records, false)

	journeys, err := svc.Journeys(ctx, day1, day2, nil)
	require.NoError(t, err)
	require.Len(t, journeys, 2)

	first := journeys[0]
	assert.True(t, first.Attended)
	assert.False(t, first.Inconsistent)
	assert.Equal(t, 600, first.WorkedMinutes)
	assert.Equal(t, 60, first.OvertimeMinutes)
	assert.True(t, first.WorkedHours.Equal(decimal.NewFromInt(10)), first.WorkedHours.String())
	assert.True(t, first.OvertimeHours.Equal(decimal.NewFromInt(1)), first.OvertimeHours.String())
	require.NotNil(t, first.EntryTime)
	assert.Equal(t, "09:00", *first.EntryTime)

	second := journeys[1]
	assert.False(t, second.Attended)
	assert.Nil(t, second.EntryTime)
	assert.Zero(t, second.WorkedMinutes)
}

// Journeys are derived, never stored: running the same aggregation twice
// over the same records yields identical output.
func TestJourneys_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	records := []attendance.Record{
		rec("1", attendance.TypeEntry, day, 8, 30, false),
		rec("2", attendance.TypeExit, day, 17, 45, false),
	}
	svc := newTestService([]employee.Employee{testEmployee()}, records, false)

	first, err := svc.Journeys(ctx, day, day, nil)
	require.NoError(t, err)
	second, err := svc.Journeys(ctx, day, day, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJourneys_InconsistentDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	// Exit recorded before the entry, as after a manual correction gone
	// wrong. The day is reported, clamped, and flagged.
	records := []attendance.Record{
		rec("1", attendance.TypeExit, day, 8, 0, false),
		rec("2", attendance.TypeEntry, day, 9, 0, false),
	}
	svc := newTestService([]employee.Employee{testEmployee()}, records, false)

	journeys, err := svc.Journeys(ctx, day, day, nil)
	require.NoError(t, err)
	require.Len(t, journeys, 1)

	assert.True(t, journeys[0].Attended)
	assert.True(t, journeys[0].Inconsistent)
	assert.Zero(t, journeys[0].WorkedMinutes)
	assert.Zero(t, journeys[0].OvertimeMinutes)
}

func TestReport_RangeTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day1 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	records := []attendance.Record{
		rec("1", attendance.TypeEntry, day1, 9, 0, false),
		rec("2", attendance.TypeExit, day1, 18, 0, false),
		rec("3", attendance.TypeEntry, day2, 9, 0, false),
		rec("4", attendance.TypeExit, day2, 19, 0, false),
	}
	svc := newTestService([]employee.Employee{testEmployee()}, records, false)

	summaries, err := svc.Report(ctx, day1, day3)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	sum := summaries[0]
	assert.Equal(t, "12345678", sum.Cedula)
	assert.Equal(t, 2, sum.DaysWorked)
	assert.Equal(t, 1, sum.DaysAbsent)
	assert.Equal(t, 540+600, sum.WorkedMinutes)
	assert.Equal(t, 60, sum.OvertimeMinutes)
	assert.True(t, sum.WorkedHours.Equal(decimal.NewFromInt(19)), sum.WorkedHours.String())
}

func TestDaily(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	inJourney := testEmployee()
	complete := employee.Employee{
		ID:        "emp-2",
		Cedula:    "87654321",
		FullName:  "Luis Mora",
		EntryTime: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		ExitTime:  time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:    employee.StatusActive,
	}
	absent := employee.Employee{
		ID:        "emp-3",
		Cedula:    "11223344",
		FullName:  "Rosa Díaz",
		EntryTime: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		ExitTime:  time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:    employee.StatusActive,
	}

	records := []attendance.Record{
		// emp-1 past tolerance, still in journey.
		rec("1", attendance.TypeEntry, day, 9, 20, true),
		{
			ID: "2", EmployeeID: "emp-2", Type: attendance.TypeEntry,
			Date: day, Time: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			Method: attendance.MethodQR,
		},
		{
			ID: "3", EmployeeID: "emp-2", Type: attendance.TypeExit,
			Date: day, Time: time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC),
			Method: attendance.MethodQR,
		},
	}
	svc := newTestService([]employee.Employee{inJourney, complete, absent}, records, false)

	rows, err := svc.Daily(ctx, day)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, report.DayStatusInJourney, rows[0].Status)
	assert.True(t, rows[0].Late)
	assert.Equal(t, 5, rows[0].MinutesLate)
	require.NotNil(t, rows[0].EntryTime)
	assert.Equal(t, "09:20", *rows[0].EntryTime)
	assert.Nil(t, rows[0].ExitTime)

	assert.Equal(t, report.DayStatusComplete, rows[1].Status)
	assert.False(t, rows[1].Late)
	require.NotNil(t, rows[1].ExitTime)
	assert.Equal(t, "18:00", *rows[1].ExitTime)

	assert.Equal(t, report.DayStatusAbsent, rows[2].Status)
	assert.Nil(t, rows[2].EntryTime)
}

func TestLatenessReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day1 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	records := []attendance.Record{
		rec("1", attendance.TypeEntry, day1, 9, 20, true),
		rec("2", attendance.TypeExit, day1, 18, 0, false),
		rec("3", attendance.TypeEntry, day2, 9, 25, true),
	}
	svc := newTestService([]employee.Employee{testEmployee()}, records, false)

	result, err := svc.Lateness(ctx, day1, day2)
	require.NoError(t, err)

	require.Len(t, result.Detail, 2)
	assert.Equal(t, 5, result.Detail[0].MinutesLate)
	assert.Equal(t, 10, result.Detail[1].MinutesLate)
	assert.Equal(t, "09:00", result.Detail[0].ScheduledTime)

	require.Len(t, result.Summary, 1)
	assert.Equal(t, 2, result.Summary[0].TotalLate)
	assert.True(t, result.Summary[0].AverageMinutes.Equal(decimal.NewFromFloat(7.5)), result.Summary[0].AverageMinutes.String())
}
