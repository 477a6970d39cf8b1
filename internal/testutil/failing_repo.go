package testutil

import (
	"context"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
)

// FailingCreateMaintenanceRepo wraps a MaintenanceRepo and fails every
// Create call with Err. Used to exercise the partial-failure policy where a
// completion survives a failed successor insert.
type FailingCreateMaintenanceRepo struct {
	repository.MaintenanceRepo
	Err error
}

func (r *FailingCreateMaintenanceRepo) Create(ctx context.Context, m *domain.Maintenance) error {
	return r.Err
}
