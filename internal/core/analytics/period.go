// Package analytics turns raw completion timestamps into streaks and rankings.
//
// Every function here is pure: the evaluation instant is always passed in,
// nothing reads a clock and nothing is cached between calls, so results are
// reproducible and safe to compute from any number of goroutines.
package analytics

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

const secondsPerDay = 24 * 60 * 60

// PeriodKey is the calendar bucket a timestamp falls into. Keys of the same
// periodicity are totally ordered and consecutive buckets differ by exactly
// one ordinal, which makes adjacency and distance plain arithmetic.
//
// Daily keys carry (year, month, day), weekly keys (ISO year, ISO week) and
// monthly keys (year, month). Unused fields stay zero so keys compare with ==.
type PeriodKey struct {
	Periodicity domain.Periodicity
	Year        int
	Month       time.Month
	Week        int
	Day         int

	ordinal int64
}

// KeyFor buckets t in its own location. No timezone conversion happens here.
func KeyFor(p domain.Periodicity, t time.Time) (PeriodKey, error) {
	if t.IsZero() {
		return PeriodKey{}, domain.ErrInvalidTimestamp
	}

	year, month, day := t.Date()

	switch p {
	case domain.Daily:
		return PeriodKey{
			Periodicity: p,
			Year:        year,
			Month:       month,
			Day:         day,
			ordinal:     civilDays(year, month, day),
		}, nil

	case domain.Weekly:
		isoYear, isoWeek := t.ISOWeek()
		// Monday-based offset; 1970-01-05 (civil day 4) is the first Monday after the epoch.
		sinceMonday := int64((int(t.Weekday()) + 6) % 7)
		monday := civilDays(year, month, day) - sinceMonday
		return PeriodKey{
			Periodicity: p,
			Year:        isoYear,
			Week:        isoWeek,
			ordinal:     (monday - 4) / 7,
		}, nil

	case domain.Monthly:
		return PeriodKey{
			Periodicity: p,
			Year:        year,
			Month:       month,
			ordinal:     int64(year)*12 + int64(month) - 1,
		}, nil
	}

	return PeriodKey{}, fmt.Errorf("%w: %q", domain.ErrUnknownPeriodicity, p)
}

func civilDays(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// IsSuccessor reports whether b is exactly one period after a.
func IsSuccessor(a, b PeriodKey) bool {
	return a.Periodicity == b.Periodicity && b.ordinal == a.ordinal+1
}

// Distance counts the periods from a to b. It is negative when b precedes a.
func Distance(a, b PeriodKey) (int, error) {
	if a.Periodicity != b.Periodicity {
		return 0, domain.ErrPeriodicityMismatch
	}
	return int(b.ordinal - a.ordinal), nil
}

// Before orders keys of the same periodicity.
func (k PeriodKey) Before(other PeriodKey) bool {
	return k.ordinal < other.ordinal
}

// Compare returns -1, 0 or +1 as k sorts before, equal to or after other.
func (k PeriodKey) Compare(other PeriodKey) int {
	switch {
	case k.ordinal < other.ordinal:
		return -1
	case k.ordinal > other.ordinal:
		return 1
	}
	return 0
}

func (k PeriodKey) String() string {
	switch k.Periodicity {
	case domain.Daily:
		return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
	case domain.Weekly:
		return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
	case domain.Monthly:
		return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
	}
	return "invalid"
}
