// Package domain contains application Usecases orchestrating domain logic by entity.
package domain

import (
	"context"
	"fmt"

	"employee-records/internal/entities"
)

// Employee returns an employee by id.
func (u *Usecase) Employee(ctx context.Context, id string) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetEmployee(ctx, id)
}

// Employees returns all employee records.
func (u *Usecase) Employees(ctx context.Context) ([]entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListEmployees(ctx)
}

// CreateEmployee validates the input and stores a new record.
func (u *Usecase) CreateEmployee(ctx context.Context, in entities.NewEmployee) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		u.log.Errorw("failed to create employee: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if in.Email == "" {
		u.log.Errorw("failed to create employee: missing email")
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if in.Salary < 0 {
		return nil, fmt.Errorf("%w: salary must be non-negative", entities.ErrInvalidArgument)
	}
	if in.Status == "" {
		in.Status = entities.StatusActive
	}
	if !entities.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, in.Status)
	}

	return u.repo.CreateEmployee(ctx, in)
}

// UpdateEmployee validates the patch and applies it to an existing record.
func (u *Usecase) UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if patch.Salary != nil && *patch.Salary < 0 {
		return nil, fmt.Errorf("%w: salary must be non-negative", entities.ErrInvalidArgument)
	}
	if patch.Status != nil && !entities.ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *patch.Status)
	}

	return u.repo.UpdateEmployee(ctx, id, patch)
}

// DeleteEmployee removes a record, reporting whether anything was deleted.
func (u *Usecase) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return false, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteEmployee(ctx, id)
}
