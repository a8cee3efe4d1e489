package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/asistpro/attendance-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// requireTestDB connects once per run and skips the suite when no test
// database is configured.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, testDBErr, "failed to connect to test database")

	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{"attendance_records", "employees", "shift_day_details", "shifts", "global_settings"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, db *database.DB, cedula string) employee.Employee {
	t.Helper()

	repo := postgresql.NewEmployeeRepository(db)
	emp, err := repo.Create(context.Background(), employee.Employee{
		Cedula:    cedula,
		FullName:  "Ana Torres",
		EntryTime: time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
		ExitTime:  time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:    employee.StatusActive,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_CedulaUniqueness(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(db)
	created := createTestEmployee(t, db, "12345678")

	_, err := repo.Create(ctx, employee.Employee{
		Cedula:    "12345678",
		FullName:  "Otra Persona",
		EntryTime: created.EntryTime,
		ExitTime:  created.ExitTime,
		Status:    employee.StatusActive,
	})
	assert.ErrorIs(t, err, employee.ErrCedulaExists)

	got, err := repo.GetByCedula(ctx, "12345678")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestAttendanceRepository_RecordsOrderedByTime(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	emp := createTestEmployee(t, db, "12345678")
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	exitRec := attendance.Record{
		EmployeeID: emp.ID,
		Type:       attendance.TypeExit,
		Date:       date,
		Time:       time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC),
		Method:     attendance.MethodManual,
	}
	entryRec := attendance.Record{
		EmployeeID: emp.ID,
		Type:       attendance.TypeEntry,
		Date:       date,
		Time:       time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
		Method:     attendance.MethodManual,
	}

	// Inserted out of order; reads come back ascending by time.
	_, err := repo.Create(ctx, exitRec)
	require.NoError(t, err)
	_, err = repo.Create(ctx, entryRec)
	require.NoError(t, err)

	records, err := repo.ListByEmployeeAndDate(ctx, emp.ID, date)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, attendance.TypeEntry, records[0].Type)
	assert.Equal(t, attendance.TypeExit, records[1].Type)

	joined, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, joined, 2)
	require.NotNil(t, joined[0].EmployeeCedula)
	assert.Equal(t, "12345678", *joined[0].EmployeeCedula)
}

func TestAttendanceRepository_DeleteAll(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	emp := createTestEmployee(t, db, "12345678")
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	for _, recType := range []attendance.RecordType{attendance.TypeEntry, attendance.TypeExit} {
		_, err := repo.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Type:       recType,
			Date:       date,
			Time:       time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
			Method:     attendance.MethodManual,
		})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	records, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSettingRepository_UpsertAndGetBool(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewSettingRepository(db)

	// Missing key falls back.
	value, err := repo.GetBool(ctx, setting.KeyAllowMultipleAttendance, false)
	require.NoError(t, err)
	assert.False(t, value)

	_, err = repo.Set(ctx, setting.KeyAllowMultipleAttendance, "true")
	require.NoError(t, err)

	value, err = repo.GetBool(ctx, setting.KeyAllowMultipleAttendance, false)
	require.NoError(t, err)
	assert.True(t, value)

	// Upsert overwrites.
	_, err = repo.Set(ctx, setting.KeyAllowMultipleAttendance, "false")
	require.NoError(t, err)

	value, err = repo.GetBool(ctx, setting.KeyAllowMultipleAttendance, true)
	require.NoError(t, err)
	assert.False(t, value)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "12345678")
	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	sentinel := assert.AnError
	err := db.InTx(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Type:       attendance.TypeEntry,
			Date:       date,
			Time:       time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
			Method:     attendance.MethodManual,
		})
		require.NoError(t, err)
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	records, err := repo.ListByEmployeeAndDate(ctx, emp.ID, date)
	require.NoError(t, err)
	assert.Empty(t, records)
}
