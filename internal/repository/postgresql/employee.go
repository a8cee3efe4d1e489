package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/employee"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, cedula, full_name, entry_time, exit_time, lunch_start, lunch_end,
	shift_id, status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Cedula, &emp.FullName, &emp.EntryTime, &emp.ExitTime,
		&emp.LunchStart, &emp.LunchEnd, &emp.ShiftID, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := r.db.GetQuerier(ctx)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, cedula, full_name, entry_time, exit_time, lunch_start,
			lunch_end, shift_id, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Cedula,
		emp.FullName,
		emp.EntryTime,
		emp.ExitTime,
		emp.LunchStart,
		emp.LunchEnd,
		emp.ShiftID,
		emp.Status,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrCedulaExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByCedula implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCedula(ctx context.Context, cedula string) (employee.Employee, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE cedula = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by cedula: %w", err)
	}

	return emp, nil
}

// GetByCedulaForUpdate implements employee.EmployeeRepository. The FOR
// UPDATE lock serializes concurrent recordings for the same employee until
// the surrounding transaction commits.
func (r *employeeRepository) GetByCedulaForUpdate(ctx context.Context, cedula string) (employee.Employee, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE cedula = $1 FOR UPDATE`

	emp, err := scanEmployee(q.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to lock employee by cedula: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := r.db.GetQuerier(ctx)

	query := `
		UPDATE employees
		SET full_name = $2, entry_time = $3, exit_time = $4, lunch_start = $5,
			lunch_end = $6, shift_id = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FullName,
		emp.EntryTime,
		emp.ExitTime,
		emp.LunchStart,
		emp.LunchEnd,
		emp.ShiftID,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepository) SetStatus(ctx context.Context, id string, status employee.Status) error {
	q := r.db.GetQuerier(ctx)

	query := `UPDATE employees SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, status *employee.Status) ([]employee.Employee, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// CountActiveByShift implements employee.EmployeeRepository.
func (r *employeeRepository) CountActiveByShift(ctx context.Context, shiftID string) (int64, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT COUNT(*) FROM employees WHERE shift_id = $1 AND status = 'active'`

	var count int64
	if err := q.QueryRow(ctx, query, shiftID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees by shift: %w", err)
	}

	return count, nil
}
