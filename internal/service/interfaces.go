package service

import (
	"context"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

// DateFilter selects a today-relative scheduling window.
type DateFilter string

const (
	FilterToday    DateFilter = "today"
	FilterTomorrow DateFilter = "tomorrow"
	FilterWeek     DateFilter = "week"
)

type MaintenanceService interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)
	List(ctx context.Context, status domain.MaintenanceStatus) ([]*domain.Maintenance, error)
	// ListByDateFilter returns open maintenances due today, tomorrow or in
	// the current week (Monday through Sunday).
	ListByDateFilter(ctx context.Context, filter DateFilter) ([]*domain.Maintenance, error)
	// ListByEquipment returns the full maintenance history of one piece of
	// equipment ordered by scheduled date. Unknown equipment is an error.
	ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// Complete marks the task completed and, for recurring tasks, schedules
	// the next occurrence. Completion is durable even when generating the
	// successor fails: in that case the completed task is returned together
	// with an error wrapping ErrSuccessorGeneration.
	Complete(ctx context.Context, id, completedBy string) (*domain.Maintenance, error)
	// GenerateNext creates the successor of a recurring template task.
	// Returns (nil, nil) for non-recurring templates. Exposed for backfill;
	// Complete calls it internally.
	GenerateNext(ctx context.Context, template *domain.Maintenance) (*domain.Maintenance, error)
	// Related returns every member of the task's recurrence chain (root plus
	// all successors) ordered by scheduled date, regardless of which member
	// is queried. An unresolved id yields an empty slice.
	Related(ctx context.Context, id string) ([]*domain.Maintenance, error)
	// UpdateFrequency changes the recurrence frequency of a recurring task
	// and, when propagate is set, of every still-planned future member of
	// its chain. Non-recurring targets are rejected with ErrNotRecurring.
	UpdateFrequency(ctx context.Context, id string, f domain.Frequency, propagate bool) (*domain.Maintenance, error)
}

type EquipmentService interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, t domain.CategoryType) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
