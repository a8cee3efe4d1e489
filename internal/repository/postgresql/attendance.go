package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/attendance"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := r.db.GetQuerier(ctx)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, type, date, time, method, late
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Type,
		record.Date,
		record.Time,
		record.Method,
		record.Late,
	).Scan(&record.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// ListByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Record, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		SELECT id, employee_id, type, date, time, method, late, created_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
		ORDER BY time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Type, &rec.Date, &rec.Time,
			&rec.Method, &rec.Late, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		SELECT a.id, a.employee_id, a.type, a.date, a.time, a.method, a.late,
			   a.created_at, e.full_name, e.cedula
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.cedula, a.time ASC
	`

	return r.queryJoined(ctx, q, query, date)
}

// ListByDateRange implements attendance.AttendanceRepository. The range is
// read in one pass so a concurrently inserted record cannot split the
// aggregation's view of a day.
func (r *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]attendance.Record, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		SELECT a.id, a.employee_id, a.type, a.date, a.time, a.method, a.late,
			   a.created_at, e.full_name, e.cedula
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if len(employeeIDs) > 0 {
		query += ` AND a.employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY a.employee_id, a.date, a.time ASC`

	return r.queryJoined(ctx, q, query, args...)
}

func (r *attendanceRepository) queryJoined(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Type, &rec.Date, &rec.Time,
			&rec.Method, &rec.Late, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeCedula,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteAll(ctx context.Context) (int64, error) {
	q := r.db.GetQuerier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge attendance records: %w", err)
	}

	return tag.RowsAffected(), nil
}
