package domain

import "time"

// Equipment is a tracked piece of equipment that maintenance tasks refer to.
type Equipment struct {
	ID              string
	Name            string
	SerialNumber    string
	Category        string
	Location        string
	PurchaseDate    *time.Time
	LastMaintenance *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e *Equipment) Validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Msg: "required"}
	}
	if e.SerialNumber == "" {
		return &ValidationError{Field: "serialNumber", Msg: "required"}
	}
	if e.Category == "" {
		return &ValidationError{Field: "category", Msg: "required"}
	}
	if e.Location == "" {
		return &ValidationError{Field: "location", Msg: "required"}
	}
	return nil
}
