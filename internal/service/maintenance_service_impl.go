package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/db"
	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/recurrence"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
	"github.com/google/uuid"
)

// DefaultCompletedBy is recorded when a completion request names nobody.
const DefaultCompletedBy = "system"

type maintenanceService struct {
	maintenances repository.MaintenanceRepo
	equipment    repository.EquipmentRepo
	uow          db.UnitOfWork
	observer     OperationObserver
	now          func() time.Time
}

// MaintenanceServiceOption configures optional service collaborators.
type MaintenanceServiceOption func(*maintenanceService)

// WithClock overrides the time source; tests use it to pin "now".
func WithClock(now func() time.Time) MaintenanceServiceOption {
	return func(s *maintenanceService) {
		s.now = now
	}
}

// WithObserver attaches an operation observer.
func WithObserver(obs OperationObserver) MaintenanceServiceOption {
	return func(s *maintenanceService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func NewMaintenanceService(
	maintenances repository.MaintenanceRepo,
	equipment repository.EquipmentRepo,
	uow db.UnitOfWork,
	opts ...MaintenanceServiceOption,
) MaintenanceService {
	s := &maintenanceService{
		maintenances: maintenances,
		equipment:    equipment,
		uow:          uow,
		observer:     NoopObserver{},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *maintenanceService) Create(ctx context.Context, m *domain.Maintenance) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := s.now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = domain.MaintenancePlanned
	}
	if m.Priority == "" {
		m.Priority = domain.PriorityMedium
	}
	if m.MaintenanceType == "" {
		if m.IsRecurring {
			m.MaintenanceType = domain.TypeRoutine
		} else {
			m.MaintenanceType = domain.TypeExtraordinary
		}
	}
	if err := m.Validate(); err != nil {
		return err
	}

	// Denormalize the equipment name onto the task; also verifies the
	// reference resolves before hitting the foreign key.
	eq, err := s.equipment.GetByID(ctx, m.EquipmentID)
	if err != nil {
		return err
	}
	if m.EquipmentName == "" {
		m.EquipmentName = eq.Name
	}

	return s.maintenances.Create(ctx, m)
}

func (s *maintenanceService) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	return s.maintenances.GetByID(ctx, id)
}

func (s *maintenanceService) List(ctx context.Context, status domain.MaintenanceStatus) ([]*domain.Maintenance, error) {
	return s.maintenances.List(ctx, status)
}

func (s *maintenanceService) ListByDateFilter(ctx context.Context, filter DateFilter) ([]*domain.Maintenance, error) {
	now := s.now().UTC()
	from, to, err := filterWindow(now, filter)
	if err != nil {
		return nil, err
	}
	return s.maintenances.ListScheduledBetween(ctx, from, to)
}

func (s *maintenanceService) ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Maintenance, error) {
	if _, err := s.equipment.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.maintenances.ListByEquipment(ctx, equipmentID)
}

func (s *maintenanceService) Update(ctx context.Context, m *domain.Maintenance) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.UpdatedAt = s.now().UTC()
	return s.maintenances.Update(ctx, m)
}

func (s *maintenanceService) Archive(ctx context.Context, id string) error {
	return s.maintenances.Archive(ctx, id)
}

func (s *maintenanceService) Delete(ctx context.Context, id string) error {
	return s.maintenances.Delete(ctx, id)
}

// Complete is a read-modify-write on the task plus a last-maintenance stamp
// on its equipment, committed as one transaction. Successor generation runs
// after the commit on purpose: a generation failure must never undo the
// completion.
func (s *maintenanceService) Complete(ctx context.Context, id, completedBy string) (*domain.Maintenance, error) {
	started := s.now()
	if completedBy == "" {
		completedBy = DefaultCompletedBy
	}

	var completed *domain.Maintenance
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMaint := repository.NewSQLiteMaintenanceRepo(tx)
		txEquip := repository.NewSQLiteEquipmentRepo(tx)

		m, err := txMaint.GetByID(ctx, id)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		m.Status = domain.MaintenanceCompleted
		m.CompletedDate = &now
		m.CompletedBy = completedBy
		m.UpdatedAt = now
		if err := txMaint.Update(ctx, m); err != nil {
			return err
		}
		if err := txEquip.SetLastMaintenance(ctx, m.EquipmentID, now); err != nil {
			return err
		}

		completed = m
		return nil
	})
	if err != nil {
		s.observeComplete(ctx, started, id, err)
		return nil, err
	}

	if completed.IsRecurring {
		if _, genErr := s.GenerateNext(ctx, completed); genErr != nil {
			wrapped := fmt.Errorf("%w: %v", ErrSuccessorGeneration, genErr)
			s.observeComplete(ctx, started, id, wrapped)
			return completed, wrapped
		}
	}

	s.observeComplete(ctx, started, id, nil)
	return completed, nil
}

// GenerateNext copies the template into a fresh planned occurrence scheduled
// one frequency step after the template's date. The successor always points
// at the chain root, never at the template itself (unless the template is
// the root), keeping chains flat.
func (s *maintenanceService) GenerateNext(ctx context.Context, template *domain.Maintenance) (*domain.Maintenance, error) {
	if template == nil || !template.IsRecurring {
		return nil, nil
	}

	rootID := template.ChainRootID()
	now := s.now().UTC()
	next := &domain.Maintenance{
		ID:                  uuid.New().String(),
		Title:               template.Title,
		Description:         template.Description,
		EquipmentID:         template.EquipmentID,
		EquipmentName:       template.EquipmentName,
		ScheduledDate:       recurrence.NextOccurrence(template.ScheduledDate, template.Frequency),
		Priority:            template.Priority,
		Status:              domain.MaintenancePlanned,
		AssignedTo:          template.AssignedTo,
		Notes:               template.Notes,
		MaintenanceType:     template.MaintenanceType,
		IsRecurring:         true,
		Frequency:           template.Frequency,
		ParentMaintenanceID: &rootID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.maintenances.Create(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *maintenanceService) Related(ctx context.Context, id string) ([]*domain.Maintenance, error) {
	m, err := s.maintenances.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return []*domain.Maintenance{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.maintenances.ListChain(ctx, m.ChainRootID())
}

func (s *maintenanceService) UpdateFrequency(ctx context.Context, id string, f domain.Frequency, propagate bool) (*domain.Maintenance, error) {
	if !domain.ValidFrequencies[string(f)] {
		return nil, &domain.ValidationError{Field: "frequency", Msg: "unknown frequency " + string(f)}
	}

	m, err := s.maintenances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsRecurring {
		return nil, fmt.Errorf("maintenance %s: %w", id, ErrNotRecurring)
	}

	m.Frequency = f
	m.UpdatedAt = s.now().UTC()
	if err := s.maintenances.Update(ctx, m); err != nil {
		return nil, err
	}

	if propagate {
		// Best effort across the chain. The target task keeps its new
		// frequency even when the mass update fails part-way.
		if _, err := s.maintenances.PropagateFrequency(ctx, m.ChainRootID(), f, s.now().UTC()); err != nil {
			return m, fmt.Errorf("%w: %v", ErrFrequencyPropagation, err)
		}
	}
	return m, nil
}

func (s *maintenanceService) observeComplete(ctx context.Context, started time.Time, id string, err error) {
	s.observer.Observe(ctx, OperationEvent{
		Operation:     "maintenance_complete",
		MaintenanceID: id,
		Duration:      s.now().Sub(started),
		Err:           err,
	})
}

// filterWindow maps a date filter to an inclusive scheduling window.
// Weeks run Monday through Sunday.
func filterWindow(now time.Time, filter DateFilter) (time.Time, time.Time, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	switch filter {
	case FilterToday:
		return dayStart, dayEnd, nil
	case FilterTomorrow:
		return dayStart.AddDate(0, 0, 1), dayEnd.AddDate(0, 0, 1), nil
	case FilterWeek:
		// Monday-based offset; Sunday counts as day 6 of the running week.
		offset := (int(now.Weekday()) + 6) % 7
		weekStart := dayStart.AddDate(0, 0, -offset)
		weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)
		return weekStart, weekEnd, nil
	default:
		return time.Time{}, time.Time{}, &domain.ValidationError{
			Field: "filter", Msg: fmt.Sprintf("unknown date filter %q", filter),
		}
	}
}
