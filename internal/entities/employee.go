// Package entities contains core business entities.
package entities

import "time"

// EmployeeStatus enumerates employment states.
type EmployeeStatus string

const (
	// StatusActive marks an employee as currently working.
	StatusActive EmployeeStatus = "active"
	// StatusOnLeave marks an employee as temporarily away.
	StatusOnLeave EmployeeStatus = "on-leave"
	// StatusInactive marks an employee as no longer working.
	StatusInactive EmployeeStatus = "inactive"
)

// ValidStatus reports whether s is one of the known employment states.
func ValidStatus(s EmployeeStatus) bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusInactive:
		return true
	}
	return false
}

// Employee is a domain model of an employee record.
type Employee struct {
	ID           string
	Name         string
	Email        string
	Department   string
	Role         string
	Salary       float64
	Status       EmployeeStatus
	AvatarURL    string
	EmployeeCode string
	CreatedAt    time.Time
}

// NewEmployee carries the caller-supplied fields for employee creation.
// ID and CreatedAt are generated by the store.
type NewEmployee struct {
	Name         string
	Email        string
	Department   string
	Role         string
	Salary       float64
	Status       EmployeeStatus
	AvatarURL    string
	EmployeeCode string
}

// EmployeePatch is a partial update. Nil fields are left untouched;
// the identifier and creation timestamp are never writable.
type EmployeePatch struct {
	Name         *string
	Email        *string
	Department   *string
	Role         *string
	Salary       *float64
	Status       *EmployeeStatus
	AvatarURL    *string
	EmployeeCode *string
}

// Apply merges the non-nil patch fields onto e.
func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.AvatarURL != nil {
		e.AvatarURL = *p.AvatarURL
	}
	if p.EmployeeCode != nil {
		e.EmployeeCode = *p.EmployeeCode
	}
}
