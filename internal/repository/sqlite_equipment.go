package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/db"
	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

// equipmentColumns is the canonical SELECT column list for equipment.
const equipmentColumns = `id, name, serial_number, category, location,
		purchase_date, last_maintenance, notes, created_at, updated_at`

// SQLiteEquipmentRepo implements EquipmentRepo using a SQLite database.
type SQLiteEquipmentRepo struct {
	db db.DBTX
}

// NewSQLiteEquipmentRepo creates a new SQLiteEquipmentRepo over a database
// handle or transaction.
func NewSQLiteEquipmentRepo(dbtx db.DBTX) *SQLiteEquipmentRepo {
	return &SQLiteEquipmentRepo{db: dbtx}
}

func (r *SQLiteEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (id, name, serial_number, category, location,
		purchase_date, last_maintenance, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.SerialNumber,
		e.Category,
		e.Location,
		nullableTimeToString(e.PurchaseDate, dateLayout),
		nullableTimeToString(e.LastMaintenance, time.RFC3339),
		e.Notes,
		timeToString(e.CreatedAt),
		timeToString(e.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("equipment serial number %s: %w", e.SerialNumber, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting equipment: %w", err)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEquipment(row.Scan)
}

func (r *SQLiteEquipmentRepo) List(ctx context.Context) ([]*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	var items []*domain.Equipment
	for rows.Next() {
		e, err := r.scanEquipment(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment: %w", err)
	}
	return items, nil
}

func (r *SQLiteEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name = ?, serial_number = ?, category = ?, location = ?,
		purchase_date = ?, last_maintenance = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.SerialNumber,
		e.Category,
		e.Location,
		nullableTimeToString(e.PurchaseDate, dateLayout),
		nullableTimeToString(e.LastMaintenance, time.RFC3339),
		e.Notes,
		timeToString(e.UpdatedAt),
		e.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("equipment serial number %s: %w", e.SerialNumber, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("updating equipment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("equipment %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) SetLastMaintenance(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE equipment SET last_maintenance = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		timeToString(at),
		timeToString(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("stamping last maintenance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("equipment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting equipment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("equipment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) scanEquipment(scan func(dest ...any) error) (*domain.Equipment, error) {
	var e domain.Equipment
	var purchaseStr, lastMaintStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Location,
		&purchaseStr, &lastMaintStr, &e.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("equipment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}

	e.PurchaseDate = parseNullableTime(purchaseStr, dateLayout)
	e.LastMaintenance = parseNullableTime(lastMaintStr, time.RFC3339)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}
