// Package memory implements the repository over in-process maps.
// The store is volatile: its contents are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"employee-records/config"
	"employee-records/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Memory holds both entity sets behind a single RWMutex. The HTTP server
// handles requests concurrently, so each operation takes the lock and
// completes atomically.
type Memory struct {
	log  *zap.SugaredLogger
	seed bool

	now   func() time.Time
	newID func() string

	mu        sync.RWMutex
	employees map[string]entities.Employee
	empOrder  []string
	users     map[string]entities.User
	userOrder []string
}

// New creates a Memory repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *Memory {
	return &Memory{
		log:       log.Named("repo.memory"),
		seed:      cfg.Storage.Seed,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		employees: make(map[string]entities.Employee),
		users:     make(map[string]entities.User),
	}
}

// OnStart optionally loads sample data.
func (m *Memory) OnStart(ctx context.Context) error {
	if m.seed {
		if err := m.loadSeed(ctx); err != nil {
			return err
		}
	}
	m.log.Infow("memory store ready", "seeded", m.seed)
	return nil
}

// OnStop discards nothing; the store has no external resources.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

func (m *Memory) loadSeed(ctx context.Context) error {
	for _, in := range seedEmployees {
		if _, err := m.CreateEmployee(ctx, in); err != nil {
			return err
		}
	}
	for _, in := range seedUsers {
		if _, err := m.CreateUser(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

var seedEmployees = []entities.NewEmployee{
	{Name: "Amelia Hart", Email: "amelia.hart@example.com", Department: "Engineering", Role: "Backend Engineer", Salary: 98000, Status: entities.StatusActive, EmployeeCode: "EMP-001"},
	{Name: "Bruno Keller", Email: "bruno.keller@example.com", Department: "Engineering", Role: "Frontend Engineer", Salary: 92000, Status: entities.StatusActive, EmployeeCode: "EMP-002"},
	{Name: "Carla Mendes", Email: "carla.mendes@example.com", Department: "Design", Role: "Product Designer", Salary: 84000, Status: entities.StatusOnLeave, EmployeeCode: "EMP-003"},
	{Name: "Diego Fuentes", Email: "diego.fuentes@example.com", Department: "Sales", Role: "Account Executive", Salary: 76000, Status: entities.StatusActive, EmployeeCode: "EMP-004"},
	{Name: "Elena Volkov", Email: "elena.volkov@example.com", Department: "HR", Role: "HR Manager", Salary: 81000, Status: entities.StatusInactive, EmployeeCode: "EMP-005"},
}

var seedUsers = []entities.NewUser{
	{Username: "admin", Password: "admin"},
}
