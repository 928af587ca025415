// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"employee-records/internal/api"
	"employee-records/internal/entities"
)

// ToAPIEmployee maps entities.Employee to transport model.
func ToAPIEmployee(e entities.Employee) api.Employee {
	return api.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Department:   e.Department,
		Role:         e.Role,
		Salary:       e.Salary,
		Status:       string(e.Status),
		AvatarURL:    e.AvatarURL,
		EmployeeCode: e.EmployeeCode,
		CreatedAt:    e.CreatedAt,
	}
}

// ToAPIEmployeeList maps a slice of employees to the transport slice.
func ToAPIEmployeeList(list []entities.Employee) []api.Employee {
	res := make([]api.Employee, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIEmployee(e))
	}
	return res
}

// FromCreateEmployeeRequest builds creation input from the transport DTO.
func FromCreateEmployeeRequest(src api.CreateEmployeeRequest) entities.NewEmployee {
	return entities.NewEmployee{
		Name:         src.Name,
		Email:        src.Email,
		Department:   src.Department,
		Role:         src.Role,
		Salary:       src.Salary,
		Status:       entities.EmployeeStatus(src.Status),
		AvatarURL:    src.AvatarURL,
		EmployeeCode: src.EmployeeCode,
	}
}

// FromUpdateEmployeeRequest builds a partial patch from the transport DTO.
func FromUpdateEmployeeRequest(src api.UpdateEmployeeRequest) entities.EmployeePatch {
	patch := entities.EmployeePatch{
		Name:         src.Name,
		Email:        src.Email,
		Department:   src.Department,
		Role:         src.Role,
		Salary:       src.Salary,
		AvatarURL:    src.AvatarURL,
		EmployeeCode: src.EmployeeCode,
	}
	if src.Status != nil {
		status := entities.EmployeeStatus(*src.Status)
		patch.Status = &status
	}
	return patch
}

// ToAPIUser maps entities.User to the transport model, dropping the credential.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:       u.ID,
		Username: u.Username,
	}
}

// FromCreateUserRequest builds creation input from the transport DTO.
func FromCreateUserRequest(src api.CreateUserRequest) entities.NewUser {
	return entities.NewUser{
		Username: src.Username,
		Password: src.Password,
	}
}

// FromUpdateUserRequest builds a partial patch from the transport DTO.
func FromUpdateUserRequest(src api.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{
		Username: src.Username,
		Password: src.Password,
	}
}
