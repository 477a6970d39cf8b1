package domain

import "fmt"

type MaintenanceStatus string

const (
	MaintenancePlanned    MaintenanceStatus = "planned"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceArchived   MaintenanceStatus = "archived"
)

// ValidMaintenanceStatuses is the canonical set of accepted status strings.
var ValidMaintenanceStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true, "archived": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type MaintenanceType string

const (
	// TypeRoutine marks recurring maintenance; completing a routine task
	// schedules the next occurrence of its chain.
	TypeRoutine MaintenanceType = "routine"
	// TypeExtraordinary marks one-off maintenance.
	TypeExtraordinary MaintenanceType = "extraordinary"
)

// Frequency is the recurrence interval of a routine maintenance task.
type Frequency string

const (
	FreqDaily      Frequency = "daily"
	FreqWeekly     Frequency = "weekly"
	FreqMonthly    Frequency = "monthly"
	FreqQuarterly  Frequency = "quarterly"
	FreqSemiannual Frequency = "semiannual"
	FreqNineMonth  Frequency = "nine_month"
	FreqAnnual     Frequency = "annual"
	FreqBiennial   Frequency = "biennial"
	FreqTriennial  Frequency = "triennial"
)

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "quarterly": true,
	"semiannual": true, "nine_month": true, "annual": true,
	"biennial": true, "triennial": true,
}

// ParseFrequency validates a frequency literal received at an input boundary.
func ParseFrequency(s string) (Frequency, error) {
	if !ValidFrequencies[s] {
		return "", &ValidationError{Field: "frequency", Msg: fmt.Sprintf("unknown frequency %q", s)}
	}
	return Frequency(s), nil
}

type CategoryType string

const (
	CategoryEquipmentCategory CategoryType = "equipment_category"
	CategoryEquipmentLocation CategoryType = "equipment_location"
	CategoryStaffRole         CategoryType = "staff_role"
)

var ValidCategoryTypes = map[string]bool{
	"equipment_category": true, "equipment_location": true, "staff_role": true,
}
