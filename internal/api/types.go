// Package api defines transport DTOs, error codes and the route table for
// the employee records HTTP API.
package api

import "time"

// ErrorResponseErrorCode is a machine-readable error discriminator.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks missing resources.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// VALIDATIONFAILED marks rejected request payloads.
	VALIDATIONFAILED ErrorResponseErrorCode = "VALIDATION_FAILED"
	// USERNAMETAKEN marks a username conflict.
	USERNAMETAKEN ErrorResponseErrorCode = "USERNAME_TAKEN"
	// INTERNAL marks unexpected failures.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Employee is the transport representation of an employee record.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	Role         string    `json:"role"`
	Salary       float64   `json:"salary"`
	Status       string    `json:"status"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	EmployeeCode string    `json:"employee_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateEmployeeRequest is the payload for POST /api/employees.
type CreateEmployeeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Department   string  `json:"department" validate:"required"`
	Role         string  `json:"role" validate:"required"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=active on-leave inactive"`
	AvatarURL    string  `json:"avatar_url" validate:"omitempty,url"`
	EmployeeCode string  `json:"employee_code"`
}

// UpdateEmployeeRequest is the partial payload for PATCH /api/employees/:id.
// Absent fields leave the record untouched.
type UpdateEmployeeRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email"`
	Department   *string  `json:"department,omitempty"`
	Role         *string  `json:"role,omitempty"`
	Salary       *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active on-leave inactive"`
	AvatarURL    *string  `json:"avatar_url,omitempty" validate:"omitempty,url"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
}

// User is the transport representation of a user account. The credential is
// never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the partial payload for PATCH /api/users/:id.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
}
