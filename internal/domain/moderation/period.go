package moderation

import (
	"fmt"
	"regexp"
	"time"
)

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Period is a half-open calendar-month window [Start, End) in UTC. The
// upper bound is exclusive so a fact stamped exactly at the boundary
// belongs to the following month only.
type Period struct {
	label string
	start time.Time
	end   time.Time
}

// ParsePeriod parses a "YYYY-MM" label into a month window.
func ParsePeriod(label string) (Period, error) {
	if !periodPattern.MatchString(label) {
		return Period{}, fmt.Errorf("period must be in YYYY-MM format")
	}
	start, err := time.ParseInLocation("2006-01", label, time.UTC)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", label, err)
	}
	return Period{
		label: label,
		start: start,
		end:   start.AddDate(0, 1, 0),
	}, nil
}

func (p Period) String() string { return p.label }

func (p Period) Start() time.Time { return p.start }

func (p Period) End() time.Time { return p.end }

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}
