package repository

import "errors"

// ErrNotFound is returned when a referenced id does not resolve to a stored
// record. Implementations wrap it with entity context via fmt.Errorf("%w").
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a uniqueness
// rule (equipment serial number, category name).
var ErrDuplicate = errors.New("already exists")
