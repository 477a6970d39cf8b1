// Package recurrence computes occurrence dates for routine maintenance.
package recurrence

import (
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

// NextOccurrence returns the scheduled date of the occurrence following base
// for the given frequency. It is a pure calendar computation.
//
// Month and year offsets clamp to the last day of the target month when the
// base day does not exist there (2024-01-31 +1 month = 2024-02-29), matching
// the behaviour of the original scheduling data. An unknown or empty
// frequency falls back to the monthly offset; input validation rejects such
// values before they reach persisted tasks, so the fallback only guards
// against legacy rows.
func NextOccurrence(base time.Time, f domain.Frequency) time.Time {
	switch f {
	case domain.FreqDaily:
		return base.AddDate(0, 0, 1)
	case domain.FreqWeekly:
		return base.AddDate(0, 0, 7)
	case domain.FreqMonthly:
		return addMonthsClamped(base, 1)
	case domain.FreqQuarterly:
		return addMonthsClamped(base, 3)
	case domain.FreqSemiannual:
		return addMonthsClamped(base, 6)
	case domain.FreqNineMonth:
		return addMonthsClamped(base, 9)
	case domain.FreqAnnual:
		return addMonthsClamped(base, 12)
	case domain.FreqBiennial:
		return addMonthsClamped(base, 24)
	case domain.FreqTriennial:
		return addMonthsClamped(base, 36)
	default:
		return addMonthsClamped(base, 1)
	}
}

// addMonthsClamped advances t by months, clamping the day of month to the
// last day of the target month instead of letting time.AddDate normalize
// overflow into the following month.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	first := time.Date(y, m+time.Month(months), 1, h, min, sec, t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
