package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrUnknownPeriodicity = errors.New("unknown periodicity (must be daily, weekly or monthly)")
)

// Periodicity is the cadence class of a habit. The zero value is not a valid
// periodicity and is rejected by Validate.
type Periodicity string

const (
	Daily   Periodicity = "daily"
	Weekly  Periodicity = "weekly"
	Monthly Periodicity = "monthly"
)

// Periodicities lists every supported cadence in display order.
var Periodicities = []Periodicity{Daily, Weekly, Monthly}

// ParsePeriodicity resolves a user supplied tag. Matching ignores case and
// surrounding whitespace.
func ParsePeriodicity(raw string) (Periodicity, error) {
	p := Periodicity(strings.ToLower(strings.TrimSpace(raw)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p Periodicity) Validate() error {
	switch p {
	case Daily, Weekly, Monthly:
		return nil
	default:
		return ErrUnknownPeriodicity
	}
}

func (p Periodicity) String() string {
	return string(p)
}

func (p *Periodicity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePeriodicity(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
