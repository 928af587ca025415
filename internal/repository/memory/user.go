package memory

import (
	"context"

	"employee-records/internal/entities"
)

// GetUser returns the user by id.
func (m *Memory) GetUser(_ context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

// ListUsers returns all users in insertion order.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		out = append(out, m.users[id])
	}
	return out, nil
}

// CreateUser stores a new user with a generated id. Username uniqueness is
// not enforced at this layer; the usecase checks before calling.
func (m *Memory) CreateUser(_ context.Context, in entities.NewUser) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := entities.User{
		ID:       m.newID(),
		Username: in.Username,
		Password: in.Password,
	}
	m.users[u.ID] = u
	m.userOrder = append(m.userOrder, u.ID)

	m.log.Debugw("user created", "user_id", u.ID)
	return &u, nil
}

// UpdateUser merges the non-nil patch fields onto the stored user.
func (m *Memory) UpdateUser(_ context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	patch.Apply(&u)
	m.users[id] = u
	return &u, nil
}

// DeleteUser removes the user if present and reports whether a removal
// occurred.
func (m *Memory) DeleteUser(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	for i, existing := range m.userOrder {
		if existing == id {
			m.userOrder = append(m.userOrder[:i], m.userOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

// FindByUsername scans users in insertion order and returns the first
// match. Cardinality is expected to stay small enough for a linear scan.
func (m *Memory) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.userOrder {
		if u := m.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}
