package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee-records/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	getUserQuery   = `SELECT id, username, password FROM users WHERE id = $1`
	listUsersQuery = `SELECT id, username, password FROM users ORDER BY created_at, id`

	createUserQuery = `
INSERT INTO users (id, username, password)
VALUES ($1, $2, $3)
RETURNING id, username, password`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	// First match wins on duplicates; insertion order is approximated by
	// created_at.
	findByUsernameQuery = `SELECT id, username, password FROM users WHERE username = $1 ORDER BY created_at, id LIMIT 1`
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns the user by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, getUserQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users ordered by creation time.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// CreateUser inserts a new user with a generated id.
func (p *Postgres) CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, createUserQuery, uuid.NewString(), in.Username, in.Password))
	if err != nil {
		p.log.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return u, nil
}

// UpdateUser applies the non-nil patch fields.
func (p *Postgres) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	args = append(args, id)

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}

	if len(sets) == 0 {
		return p.GetUser(ctx, id)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1 RETURNING id, username, password",
		strings.Join(sets, ", "))

	u, err := scanUser(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes the user and reports whether a row was deleted.
func (p *Postgres) DeleteUser(ctx context.Context, id string) (bool, error) {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByUsername returns the earliest-created user with the given username.
func (p *Postgres) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, findByUsernameQuery, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}
