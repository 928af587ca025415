// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"employee-records/config"
	"employee-records/internal/repository/memory"
	"employee-records/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	EmployeeInterface
	UserInterface
}

// New constructs repository backend by name. The memory backend is the
// volatile reference store; postgres preserves the same absent-vs-present
// contract over a real database.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log, cfg), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
