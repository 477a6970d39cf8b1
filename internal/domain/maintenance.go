package domain

import "time"

// Maintenance is a scheduled maintenance task for a piece of equipment.
//
// A recurring (routine) task forms a flat chain: every generated successor
// carries ParentMaintenanceID pointing at the chain's original task, never at
// its immediate predecessor. The original has ParentMaintenanceID == nil.
type Maintenance struct {
	ID            string
	Title         string
	Description   string
	EquipmentID   string
	EquipmentName string
	ScheduledDate time.Time
	Priority      Priority
	Status        MaintenanceStatus
	AssignedTo    string
	Notes         string

	MaintenanceType MaintenanceType
	IsRecurring     bool
	Frequency       Frequency
	// ParentMaintenanceID references (not owns) the chain root.
	ParentMaintenanceID *string

	CompletedDate *time.Time
	CompletedBy   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants enforced at create/update time.
// A recurring task without a valid frequency is rejected outright; the
// lenient monthly fallback inside the recurrence calculator is an internal
// robustness measure, not a substitute for this check.
func (m *Maintenance) Validate() error {
	if m.Title == "" {
		return &ValidationError{Field: "title", Msg: "required"}
	}
	if m.EquipmentID == "" {
		return &ValidationError{Field: "equipmentId", Msg: "required"}
	}
	if m.ScheduledDate.IsZero() {
		return &ValidationError{Field: "scheduledDate", Msg: "required"}
	}
	if m.Priority != "" && !ValidPriorities[string(m.Priority)] {
		return &ValidationError{Field: "priority", Msg: "unknown priority " + string(m.Priority)}
	}
	if m.Status != "" && !ValidMaintenanceStatuses[string(m.Status)] {
		return &ValidationError{Field: "status", Msg: "unknown status " + string(m.Status)}
	}
	if m.IsRecurring {
		if m.Frequency == "" {
			return &ValidationError{Field: "frequency", Msg: "required for recurring maintenance"}
		}
		if !ValidFrequencies[string(m.Frequency)] {
			return &ValidationError{Field: "frequency", Msg: "unknown frequency " + string(m.Frequency)}
		}
	}
	return nil
}

// ChainRootID returns the id of the task's chain root: the parent reference
// when set, otherwise the task itself.
func (m *Maintenance) ChainRootID() string {
	if m.ParentMaintenanceID != nil && *m.ParentMaintenanceID != "" {
		return *m.ParentMaintenanceID
	}
	return m.ID
}
