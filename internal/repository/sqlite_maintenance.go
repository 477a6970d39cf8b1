package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/db"
	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

// maintenanceColumns is the canonical SELECT column list for maintenances.
const maintenanceColumns = `id, title, description, equipment_id, equipment_name,
		scheduled_date, priority, status, assigned_to, notes,
		maintenance_type, is_recurring, frequency, parent_maintenance_id,
		completed_date, completed_by, created_at, updated_at`

// priorityRank orders rows high before medium before low when appended to
// ORDER BY.
const priorityRank = `CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END`

// SQLiteMaintenanceRepo implements MaintenanceRepo using a SQLite database.
type SQLiteMaintenanceRepo struct {
	db db.DBTX
}

// NewSQLiteMaintenanceRepo creates a new SQLiteMaintenanceRepo over a
// database handle or transaction.
func NewSQLiteMaintenanceRepo(dbtx db.DBTX) *SQLiteMaintenanceRepo {
	return &SQLiteMaintenanceRepo{db: dbtx}
}

func (r *SQLiteMaintenanceRepo) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenances (id, title, description, equipment_id, equipment_name,
		scheduled_date, priority, status, assigned_to, notes,
		maintenance_type, is_recurring, frequency, parent_maintenance_id,
		completed_date, completed_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Title,
		m.Description,
		m.EquipmentID,
		m.EquipmentName,
		timeToString(m.ScheduledDate),
		string(m.Priority),
		string(m.Status),
		m.AssignedTo,
		m.Notes,
		string(m.MaintenanceType),
		boolToInt(m.IsRecurring),
		string(m.Frequency),
		nullableStr(m.ParentMaintenanceID),
		nullableTimeToString(m.CompletedDate, time.RFC3339),
		m.CompletedBy,
		timeToString(m.CreatedAt),
		timeToString(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting maintenance: %w", err)
	}
	return nil
}

func (r *SQLiteMaintenanceRepo) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanMaintenance(row)
}

func (r *SQLiteMaintenanceRepo) List(ctx context.Context, status domain.MaintenanceStatus) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances ORDER BY scheduled_date`
	args := []any{}
	if status != "" {
		query = `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE status = ? ORDER BY scheduled_date`
		args = append(args, string(status))
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing maintenances: %w", err)
	}
	defer rows.Close()
	return r.scanMaintenances(rows)
}

func (r *SQLiteMaintenanceRepo) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances
		WHERE scheduled_date >= ? AND scheduled_date <= ?
		  AND status IN ('planned', 'in_progress')
		ORDER BY scheduled_date, ` + priorityRank
	rows, err := r.db.QueryContext(ctx, query, timeToString(from), timeToString(to))
	if err != nil {
		return nil, fmt.Errorf("listing maintenances by date range: %w", err)
	}
	defer rows.Close()
	return r.scanMaintenances(rows)
}

func (r *SQLiteMaintenanceRepo) ListByEquipment(ctx context.Context, equipmentID string) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE equipment_id = ? ORDER BY scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenances by equipment: %w", err)
	}
	defer rows.Close()
	return r.scanMaintenances(rows)
}

func (r *SQLiteMaintenanceRepo) ListChain(ctx context.Context, rootID string) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances
		WHERE id = ? OR parent_maintenance_id = ?
		ORDER BY scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, rootID, rootID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance chain: %w", err)
	}
	defer rows.Close()
	return r.scanMaintenances(rows)
}

func (r *SQLiteMaintenanceRepo) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `UPDATE maintenances SET title = ?, description = ?, equipment_id = ?, equipment_name = ?,
		scheduled_date = ?, priority = ?, status = ?, assigned_to = ?, notes = ?,
		maintenance_type = ?, is_recurring = ?, frequency = ?, parent_maintenance_id = ?,
		completed_date = ?, completed_by = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.Description,
		m.EquipmentID,
		m.EquipmentName,
		timeToString(m.ScheduledDate),
		string(m.Priority),
		string(m.Status),
		m.AssignedTo,
		m.Notes,
		string(m.MaintenanceType),
		boolToInt(m.IsRecurring),
		string(m.Frequency),
		nullableStr(m.ParentMaintenanceID),
		nullableTimeToString(m.CompletedDate, time.RFC3339),
		m.CompletedBy,
		timeToString(m.UpdatedAt),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating maintenance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("maintenance %s: %w", m.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMaintenanceRepo) Archive(ctx context.Context, id string) error {
	now := timeToString(time.Now())
	query := `UPDATE maintenances SET status = 'archived', updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return fmt.Errorf("archiving maintenance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("maintenance %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMaintenanceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting maintenance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("maintenance %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMaintenanceRepo) PropagateFrequency(ctx context.Context, rootID string, f domain.Frequency, after time.Time) (int64, error) {
	query := `UPDATE maintenances SET frequency = ?, updated_at = ?
		WHERE (id = ? OR parent_maintenance_id = ?)
		  AND status = 'planned'
		  AND scheduled_date > ?`
	res, err := r.db.ExecContext(ctx, query,
		string(f),
		timeToString(time.Now()),
		rootID,
		rootID,
		timeToString(after),
	)
	if err != nil {
		return 0, fmt.Errorf("propagating frequency: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting propagated rows: %w", err)
	}
	return n, nil
}

// scanMaintenance scans a single maintenance from a *sql.Row.
func (r *SQLiteMaintenanceRepo) scanMaintenance(row *sql.Row) (*domain.Maintenance, error) {
	var m domain.Maintenance
	var priorityStr, statusStr, typeStr, frequencyStr string
	var parentID, completedDateStr sql.NullString
	var recurringInt int
	var scheduledStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.EquipmentID, &m.EquipmentName,
		&scheduledStr, &priorityStr, &statusStr, &m.AssignedTo, &m.Notes,
		&typeStr, &recurringInt, &frequencyStr, &parentID,
		&completedDateStr, &m.CompletedBy, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("maintenance: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning maintenance: %w", err)
	}

	return r.populateMaintenance(&m, priorityStr, statusStr, typeStr, frequencyStr,
		parentID, completedDateStr, recurringInt, scheduledStr, createdAtStr, updatedAtStr)
}

// scanMaintenances scans multiple maintenances from *sql.Rows.
func (r *SQLiteMaintenanceRepo) scanMaintenances(rows *sql.Rows) ([]*domain.Maintenance, error) {
	var items []*domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		var priorityStr, statusStr, typeStr, frequencyStr string
		var parentID, completedDateStr sql.NullString
		var recurringInt int
		var scheduledStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.EquipmentID, &m.EquipmentName,
			&scheduledStr, &priorityStr, &statusStr, &m.AssignedTo, &m.Notes,
			&typeStr, &recurringInt, &frequencyStr, &parentID,
			&completedDateStr, &m.CompletedBy, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning maintenance row: %w", err)
		}

		item, err := r.populateMaintenance(&m, priorityStr, statusStr, typeStr, frequencyStr,
			parentID, completedDateStr, recurringInt, scheduledStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating maintenances: %w", err)
	}
	return items, nil
}

// populateMaintenance fills in parsed fields on a Maintenance after scanning
// raw values. This is the single mapping point between stored rows and the
// typed record; every stored field appears here explicitly.
func (r *SQLiteMaintenanceRepo) populateMaintenance(
	m *domain.Maintenance,
	priorityStr, statusStr, typeStr, frequencyStr string,
	parentID, completedDateStr sql.NullString,
	recurringInt int,
	scheduledStr, createdAtStr, updatedAtStr string,
) (*domain.Maintenance, error) {
	m.Priority = domain.Priority(priorityStr)
	m.Status = domain.MaintenanceStatus(statusStr)
	m.MaintenanceType = domain.MaintenanceType(typeStr)
	m.Frequency = domain.Frequency(frequencyStr)
	m.IsRecurring = intToBool(recurringInt)
	m.ParentMaintenanceID = strPtr(parentID)
	m.CompletedDate = parseNullableTime(completedDateStr, time.RFC3339)

	var parseErr error
	m.ScheduledDate, parseErr = time.Parse(time.RFC3339, scheduledStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing scheduled_date: %w", parseErr)
	}
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return m, nil
}
