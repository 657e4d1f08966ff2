package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hr-records/internal/model"
)

const employeeColumns = `id, first_name, last_name, email, position, department,
	salary, date_of_joining, profile_image_url, created_at, updated_at`

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Search filters by case-insensitive substring match on department and/or
// position; both present means both must match.
func (r *EmployeeRepository) Search(ctx context.Context, department string, position string) ([]model.Employee, error) {
	query, args := buildSearchQuery(department, position)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// buildSearchQuery composes the optional ILIKE substring filters; both
// present combine with AND, neither degenerates to a plain list.
func buildSearchQuery(department string, position string) (string, []any) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if strings.TrimSpace(department) != "" {
		args = append(args, strings.TrimSpace(department))
		clauses = append(clauses, fmt.Sprintf("department ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if strings.TrimSpace(position) != "" {
		args = append(args, strings.TrimSpace(position))
		clauses = append(clauses, fmt.Sprintf("position ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, args
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (model.Employee, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department,
			&e.Salary, &e.DateOfJoining, &e.ProfileImageURL, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by id: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e model.Employee) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employees (id, first_name, last_name, email, position, department,
			salary, date_of_joining, profile_image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Position, e.Department,
		e.Salary, e.DateOfJoining, e.ProfileImageURL, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// Update applies a partial merge in a single statement so concurrent
// updates never interleave half-applied records. Nil patch fields keep
// the stored values via COALESCE.
func (r *EmployeeRepository) Update(ctx context.Context, id string, patch model.EmployeePatch) (model.Employee, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx,
		`UPDATE employees SET
			first_name        = COALESCE($2, first_name),
			last_name         = COALESCE($3, last_name),
			email             = COALESCE($4, email),
			position          = COALESCE($5, position),
			department        = COALESCE($6, department),
			salary            = COALESCE($7, salary),
			date_of_joining   = COALESCE($8, date_of_joining),
			profile_image_url = COALESCE($9, profile_image_url),
			updated_at        = now()
		 WHERE id = $1
		 RETURNING `+employeeColumns,
		id, patch.FirstName, patch.LastName, patch.Email, patch.Position, patch.Department,
		patch.Salary, patch.DateOfJoining, patch.ProfileImageURL).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department,
			&e.Salary, &e.DateOfJoining, &e.ProfileImageURL, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployees(rows pgx.Rows) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department,
			&e.Salary, &e.DateOfJoining, &e.ProfileImageURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
