package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/shift"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := r.db.GetQuerier(ctx)

	if sh.ID == "" {
		sh.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (id, name, status)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, sh.ID, sh.Name, sh.Status).Scan(&sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	for i := range sh.Days {
		day := &sh.Days[i]
		day.ID = uuid.NewString()
		day.ShiftID = sh.ID

		detailQuery := `
			INSERT INTO shift_day_details (
				id, shift_id, day_of_week, is_working_day, entry_time,
				exit_time, lunch_start, lunch_end
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`

		err := q.QueryRow(ctx, detailQuery,
			day.ID,
			day.ShiftID,
			int(day.Weekday),
			day.IsWorkingDay,
			day.EntryTime,
			day.ExitTime,
			day.LunchStart,
			day.LunchEnd,
		).Scan(&day.CreatedAt, &day.UpdatedAt)
		if err != nil {
			return shift.Shift{}, fmt.Errorf("failed to create shift day detail: %w", err)
		}
	}

	return sh, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT id, name, status, created_at, updated_at FROM shifts WHERE id = $1`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(&sh.ID, &sh.Name, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	days, err := r.listDays(ctx, id)
	if err != nil {
		return shift.Shift{}, err
	}
	sh.Days = days

	return sh, nil
}

func (r *shiftRepository) listDays(ctx context.Context, shiftID string) ([]shift.DayDetail, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		SELECT id, shift_id, day_of_week, is_working_day, entry_time,
			   exit_time, lunch_start, lunch_end, created_at, updated_at
		FROM shift_day_details
		WHERE shift_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift day details: %w", err)
	}
	defer rows.Close()

	var days []shift.DayDetail
	for rows.Next() {
		var d shift.DayDetail
		var weekday int
		err := rows.Scan(
			&d.ID, &d.ShiftID, &weekday, &d.IsWorkingDay, &d.EntryTime,
			&d.ExitTime, &d.LunchStart, &d.LunchEnd, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift day detail: %w", err)
		}
		d.Weekday = shift.Weekday(weekday)
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift day details: %w", err)
	}

	return days, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, status *shift.Status) ([]shift.Shift, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT id, name, status, created_at, updated_at FROM shifts`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}
	rows.Close()

	for i := range shifts {
		days, err := r.listDays(ctx, shifts[i].ID)
		if err != nil {
			return nil, err
		}
		shifts[i].Days = days
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := r.db.GetQuerier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE shifts SET name = $2, updated_at = $3 WHERE id = $1`,
		sh.ID, sh.Name, time.Now(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	for _, day := range sh.Days {
		query := `
			UPDATE shift_day_details
			SET is_working_day = $3, entry_time = $4, exit_time = $5,
				lunch_start = $6, lunch_end = $7, updated_at = $8
			WHERE shift_id = $1 AND day_of_week = $2
		`
		_, err := q.Exec(ctx, query,
			sh.ID,
			int(day.Weekday),
			day.IsWorkingDay,
			day.EntryTime,
			day.ExitTime,
			day.LunchStart,
			day.LunchEnd,
			time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to update shift day detail: %w", err)
		}
	}

	return nil
}

// SetStatus implements shift.ShiftRepository.
func (r *shiftRepository) SetStatus(ctx context.Context, id string, status shift.Status) error {
	q := r.db.GetQuerier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE shifts SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to set shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
