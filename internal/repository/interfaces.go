// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"employee-records/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EmployeeInterface exposes employee record operations. Lookups and updates
// on unknown ids return entities.ErrEmployeeNotFound; Delete reports false.
type EmployeeInterface interface {
	GetEmployee(ctx context.Context, id string) (*entities.Employee, error)
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, in entities.NewEmployee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (bool, error)
}

// UserInterface exposes user account operations.
type UserInterface interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
