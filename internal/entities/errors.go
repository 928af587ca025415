// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrEmployeeNotFound is returned when an employee does not exist.
	// Absence is a normal outcome of lookups, never a panic.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUsernameTaken signals a username conflict on user creation.
	ErrUsernameTaken = errors.New("username taken")
)
