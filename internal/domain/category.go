package domain

import "time"

// Category is a settings entry: an equipment category, an equipment
// location or a staff role.
type Category struct {
	ID        string
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Msg: "required"}
	}
	if !ValidCategoryTypes[string(c.Type)] {
		return &ValidationError{Field: "type", Msg: "unknown category type " + string(c.Type)}
	}
	return nil
}
