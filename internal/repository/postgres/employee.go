package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"employee-records/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	employeeColumns = `id, name, email, department, role, salary, status, avatar_url, employee_code, created_at`

	getEmployeeQuery   = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	listEmployeesQuery = `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	createEmployeeQuery = `
INSERT INTO employees (id, name, email, department, role, salary, status, avatar_url, employee_code, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + employeeColumns

	deleteEmployeeQuery = `DELETE FROM employees WHERE id = $1`
)

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Role, &e.Salary,
		&e.Status, &e.AvatarURL, &e.EmployeeCode, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEmployee returns the employee by id.
func (p *Postgres) GetEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	e, err := scanEmployee(p.db.QueryRow(ctx, getEmployeeQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns all employees ordered by creation time.
func (p *Postgres) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	rows, err := p.db.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			p.log.Errorw("failed to scan employee", "error", err)
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate employees", "error", err)
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// CreateEmployee inserts a new record with a generated id and timestamp.
func (p *Postgres) CreateEmployee(ctx context.Context, in entities.NewEmployee) (*entities.Employee, error) {
	e, err := scanEmployee(p.db.QueryRow(ctx, createEmployeeQuery,
		uuid.NewString(), in.Name, in.Email, in.Department, in.Role,
		in.Salary, in.Status, in.AvatarURL, in.EmployeeCode, time.Now().UTC()))
	if err != nil {
		p.log.Errorw("failed to create employee", "error", err)
		return nil, fmt.Errorf("create employee: %w", err)
	}

	p.log.Infow("employee created", "employee_id", e.ID)
	return e, nil
}

// UpdateEmployee applies the non-nil patch fields. The id and created_at
// columns are never part of the SET list.
func (p *Postgres) UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (*entities.Employee, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	args = append(args, id)

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Department != nil {
		add("department", *patch.Department)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.AvatarURL != nil {
		add("avatar_url", *patch.AvatarURL)
	}
	if patch.EmployeeCode != nil {
		add("employee_code", *patch.EmployeeCode)
	}

	if len(sets) == 0 {
		// Empty patch is the identity update.
		return p.GetEmployee(ctx, id)
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), employeeColumns)

	e, err := scanEmployee(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		p.log.Errorw("failed to update employee", "error", err, "employee_id", id)
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// DeleteEmployee removes the record and reports whether a row was deleted.
func (p *Postgres) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	tag, err := p.db.Exec(ctx, deleteEmployeeQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete employee", "error", err, "employee_id", id)
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
