package service

import "errors"

// ErrNotRecurring is returned when a frequency update targets a task that is
// not recurring. The operation is only defined for recurring tasks; this is
// an explicit rejection rather than a silent no-op.
var ErrNotRecurring = errors.New("maintenance is not recurring")

// ErrSuccessorGeneration marks the secondary, non-fatal failure mode of
// Complete: the task was durably completed but its next occurrence could not
// be created. Callers receive the completed task alongside this error.
var ErrSuccessorGeneration = errors.New("generating next occurrence failed")

// ErrFrequencyPropagation marks a best-effort chain propagation that failed
// after the target task's frequency was already updated.
var ErrFrequencyPropagation = errors.New("propagating frequency to future occurrences failed")
