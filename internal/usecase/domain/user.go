package domain

import (
	"context"
	"errors"
	"fmt"

	"employee-records/internal/entities"
)

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUser(ctx, id)
}

// UserByUsername returns the first user with the given username.
func (u *Usecase) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	return u.repo.FindByUsername(ctx, username)
}

// CreateUser stores a new user. Duplicate usernames are rejected here, not
// at the store layer.
func (u *Usecase) CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Username == "" {
		u.log.Errorw("failed to create user: missing username")
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.FindByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrUsernameTaken, in.Username)
	}

	return u.repo.CreateUser(ctx, in)
}

// UpdateUser applies a partial update. A username change is checked for
// conflicts against other users.
func (u *Usecase) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if patch.Username != nil {
		if *patch.Username == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", entities.ErrInvalidArgument)
		}
		existing, err := u.repo.FindByUsername(ctx, *patch.Username)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: %s", entities.ErrUsernameTaken, *patch.Username)
		}
	}

	return u.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser removes a user, reporting whether anything was deleted.
func (u *Usecase) DeleteUser(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return false, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteUser(ctx, id)
}
