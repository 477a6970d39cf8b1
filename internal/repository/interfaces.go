package repository

import (
	"context"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

type MaintenanceRepo interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)
	// List returns maintenances ordered by scheduled date ascending,
	// optionally filtered by status ("" returns all).
	List(ctx context.Context, status domain.MaintenanceStatus) ([]*domain.Maintenance, error)
	// ListScheduledBetween returns open (planned or in-progress) maintenances
	// with a scheduled date inside [from, to], ordered by scheduled date
	// ascending then priority high to low.
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Maintenance, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Maintenance, error)
	// ListChain returns the chain root plus every successor referencing it,
	// ordered by scheduled date ascending.
	ListChain(ctx context.Context, rootID string) ([]*domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// PropagateFrequency bulk-updates the frequency of still-planned chain
	// members scheduled strictly after the given instant. Returns the number
	// of rows touched.
	PropagateFrequency(ctx context.Context, rootID string, f domain.Frequency, after time.Time) (int64, error)
}

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	// SetLastMaintenance stamps the equipment's last completed maintenance
	// date; part of the completion write-pair.
	SetLastMaintenance(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	ListByType(ctx context.Context, t domain.CategoryType) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
