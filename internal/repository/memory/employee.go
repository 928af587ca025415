package memory

import (
	"context"

	"employee-records/internal/entities"
)

// GetEmployee returns the employee by id.
func (m *Memory) GetEmployee(_ context.Context, id string) (*entities.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.employees[id]
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	return &e, nil
}

// ListEmployees returns all employees in insertion order. Order is not a
// contract callers may rely on.
func (m *Memory) ListEmployees(_ context.Context) ([]entities.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Employee, 0, len(m.empOrder))
	for _, id := range m.empOrder {
		out = append(out, m.employees[id])
	}
	return out, nil
}

// CreateEmployee generates an id, stamps the creation time and stores the
// record.
func (m *Memory) CreateEmployee(_ context.Context, in entities.NewEmployee) (*entities.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entities.Employee{
		ID:           m.newID(),
		Name:         in.Name,
		Email:        in.Email,
		Department:   in.Department,
		Role:         in.Role,
		Salary:       in.Salary,
		Status:       in.Status,
		AvatarURL:    in.AvatarURL,
		EmployeeCode: in.EmployeeCode,
		CreatedAt:    m.now(),
	}
	m.employees[e.ID] = e
	m.empOrder = append(m.empOrder, e.ID)

	m.log.Debugw("employee created", "employee_id", e.ID)
	return &e, nil
}

// UpdateEmployee merges the non-nil patch fields onto the stored record.
// The id and creation timestamp are never altered.
func (m *Memory) UpdateEmployee(_ context.Context, id string, patch entities.EmployeePatch) (*entities.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.employees[id]
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	patch.Apply(&e)
	m.employees[id] = e
	return &e, nil
}

// DeleteEmployee removes the record if present and reports whether a
// removal occurred.
func (m *Memory) DeleteEmployee(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return false, nil
	}
	delete(m.employees, id)
	for i, existing := range m.empOrder {
		if existing == id {
			m.empOrder = append(m.empOrder[:i], m.empOrder[i+1:]...)
			break
		}
	}
	return true, nil
}
