package usecase

import (
	"context"

	"employee-records/internal/entities"
)

// EmployeeUsecaseInterface abstracts employee record operations for the delivery layer.
type EmployeeUsecaseInterface interface {
	Employee(ctx context.Context, id string) (*entities.Employee, error)
	Employees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, in entities.NewEmployee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (bool, error)
}

// UserUsecaseInterface abstracts user account operations.
type UserUsecaseInterface interface {
	User(ctx context.Context, id string) (*entities.User, error)
	UserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}
