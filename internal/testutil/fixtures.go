package testutil

import (
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/google/uuid"
)

// Equipment options

type EquipmentOption func(*domain.Equipment)

func WithEquipmentLocation(loc string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Location = loc
	}
}

func WithEquipmentCategory(cat string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Category = cat
	}
}

// NewTestEquipment builds a valid equipment record with sensible defaults.
func NewTestEquipment(name string, opts ...EquipmentOption) *domain.Equipment {
	now := time.Now().UTC()
	e := &domain.Equipment{
		ID:           uuid.New().String(),
		Name:         name,
		SerialNumber: "SN-" + uuid.New().String()[:8],
		Category:     "HVAC",
		Location:     "Building A",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Maintenance options

type MaintenanceOption func(*domain.Maintenance)

func WithScheduledDate(d time.Time) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.ScheduledDate = d
	}
}

func WithStatus(s domain.MaintenanceStatus) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.Status = s
	}
}

func WithPriority(p domain.Priority) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.Priority = p
	}
}

// WithRecurring marks the task routine with the given frequency.
func WithRecurring(f domain.Frequency) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.IsRecurring = true
		m.Frequency = f
		m.MaintenanceType = domain.TypeRoutine
	}
}

func WithParent(rootID string) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.ParentMaintenanceID = &rootID
	}
}

func WithAssignedTo(who string) MaintenanceOption {
	return func(m *domain.Maintenance) {
		m.AssignedTo = who
	}
}

// NewTestMaintenance builds a valid planned maintenance for the given
// equipment with sensible defaults.
func NewTestMaintenance(equipment *domain.Equipment, title string, opts ...MaintenanceOption) *domain.Maintenance {
	now := time.Now().UTC()
	m := &domain.Maintenance{
		ID:              uuid.New().String(),
		Title:           title,
		Description:     "test maintenance",
		EquipmentID:     equipment.ID,
		EquipmentName:   equipment.Name,
		ScheduledDate:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Priority:        domain.PriorityMedium,
		Status:          domain.MaintenancePlanned,
		MaintenanceType: domain.TypeExtraordinary,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestCategory builds a valid category record.
func NewTestCategory(name string, t domain.CategoryType) *domain.Category {
	now := time.Now().UTC()
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      t,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
