package httpapi

import (
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

// Wire representations. Field names match the JSON the frontend exchanges;
// dates travel as RFC3339 strings.

type maintenanceDTO struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	EquipmentID         string  `json:"equipmentId"`
	EquipmentName       string  `json:"equipmentName"`
	ScheduledDate       string  `json:"scheduledDate"`
	Priority            string  `json:"priority"`
	Status              string  `json:"status"`
	AssignedTo          string  `json:"assignedTo,omitempty"`
	Notes               string  `json:"notes,omitempty"`
	MaintenanceType     string  `json:"maintenanceType"`
	IsRecurring         bool    `json:"isRecurring"`
	Frequency           string  `json:"frequency,omitempty"`
	ParentMaintenanceID *string `json:"parentMaintenanceId,omitempty"`
	CompletedDate       *string `json:"completedDate,omitempty"`
	CompletedBy         string  `json:"completedBy,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

func toMaintenanceDTO(m *domain.Maintenance) maintenanceDTO {
	dto := maintenanceDTO{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		EquipmentID:         m.EquipmentID,
		EquipmentName:       m.EquipmentName,
		ScheduledDate:       m.ScheduledDate.Format(time.RFC3339),
		Priority:            string(m.Priority),
		Status:              string(m.Status),
		AssignedTo:          m.AssignedTo,
		Notes:               m.Notes,
		MaintenanceType:     string(m.MaintenanceType),
		IsRecurring:         m.IsRecurring,
		Frequency:           string(m.Frequency),
		ParentMaintenanceID: m.ParentMaintenanceID,
		CompletedBy:         m.CompletedBy,
		CreatedAt:           m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           m.UpdatedAt.Format(time.RFC3339),
	}
	if m.CompletedDate != nil {
		s := m.CompletedDate.Format(time.RFC3339)
		dto.CompletedDate = &s
	}
	return dto
}

func toMaintenanceDTOs(list []*domain.Maintenance) []maintenanceDTO {
	out := make([]maintenanceDTO, 0, len(list))
	for _, m := range list {
		out = append(out, toMaintenanceDTO(m))
	}
	return out
}

// maintenanceRequest is the create/update payload.
type maintenanceRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EquipmentID     string `json:"equipmentId"`
	EquipmentName   string `json:"equipmentName"`
	ScheduledDate   string `json:"scheduledDate"`
	Priority        string `json:"priority"`
	Status          string `json:"status"`
	AssignedTo      string `json:"assignedTo"`
	Notes           string `json:"notes"`
	MaintenanceType string `json:"maintenanceType"`
	IsRecurring     bool   `json:"isRecurring"`
	Frequency       string `json:"frequency"`
}

func (r *maintenanceRequest) toDomain() (*domain.Maintenance, error) {
	scheduled, err := time.Parse(time.RFC3339, r.ScheduledDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "scheduledDate", Msg: "expected RFC3339 timestamp"}
	}
	// Offsets are accepted but the instant is kept in UTC from here on.
	scheduled = scheduled.UTC()
	return &domain.Maintenance{
		Title:           r.Title,
		Description:     r.Description,
		EquipmentID:     r.EquipmentID,
		EquipmentName:   r.EquipmentName,
		ScheduledDate:   scheduled,
		Priority:        domain.Priority(r.Priority),
		Status:          domain.MaintenanceStatus(r.Status),
		AssignedTo:      r.AssignedTo,
		Notes:           r.Notes,
		MaintenanceType: domain.MaintenanceType(r.MaintenanceType),
		IsRecurring:     r.IsRecurring,
		Frequency:       domain.Frequency(r.Frequency),
	}, nil
}

type equipmentDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SerialNumber    string  `json:"serialNumber"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	PurchaseDate    *string `json:"purchaseDate,omitempty"`
	LastMaintenance *string `json:"lastMaintenance,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toEquipmentDTO(e *domain.Equipment) equipmentDTO {
	dto := equipmentDTO{
		ID:           e.ID,
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		Category:     e.Category,
		Location:     e.Location,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
	if e.PurchaseDate != nil {
		s := e.PurchaseDate.Format("2006-01-02")
		dto.PurchaseDate = &s
	}
	if e.LastMaintenance != nil {
		s := e.LastMaintenance.Format(time.RFC3339)
		dto.LastMaintenance = &s
	}
	return dto
}

type equipmentRequest struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	PurchaseDate string `json:"purchaseDate"`
	Notes        string `json:"notes"`
}

func (r *equipmentRequest) toDomain() (*domain.Equipment, error) {
	e := &domain.Equipment{
		Name:         r.Name,
		SerialNumber: r.SerialNumber,
		Category:     r.Category,
		Location:     r.Location,
		Notes:        r.Notes,
	}
	if r.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", r.PurchaseDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "purchaseDate", Msg: "expected YYYY-MM-DD date"}
		}
		e.PurchaseDate = &d
	}
	return e, nil
}

type categoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toCategoryDTO(c *domain.Category) categoryDTO {
	return categoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

type categoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
