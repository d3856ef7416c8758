package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInputNotFound reports that the workout log source is absent or unreadable.
var ErrInputNotFound = errors.New("workout log not found")

var (
	ErrEmptyExercise  = errors.New("empty exercise name")
	ErrNegativeWeight = errors.New("negative weight")
	ErrNegativeReps   = errors.New("negative reps")
	ErrEmptyGroupName = errors.New("empty group name")
	ErrNoAliases      = errors.New("group has no aliases")
)

// MalformedRowError reports a source row that does not match the expected
// schema (missing column, unparseable date, non-numeric weight or reps).
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %s", e.Line, e.Reason)
}

type (
	Date struct {
		time.Time
	}

	// Set is one logged row of the workout log: a single performed set.
	Set struct {
		Date     Date
		Exercise string
		Weight   float64 // lbs
		Reps     int
	}

	// ExerciseGroup is a logical exercise identity spanning one or more raw
	// name variants (renames, data-entry variants over time).
	ExerciseGroup struct {
		Name    string
		Aliases []string
	}
)

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// DayKey returns the calendar-date key used to collapse same-day sets into
// one training session.
func (d Date) DayKey() string {
	return d.Time.Format("2006-01-02")
}

// Ordinal returns the date as days since the Unix epoch, the linear numeric
// x-axis used for trend fitting.
func (d Date) Ordinal() float64 {
	return float64(d.Time.Unix()) / 86400.0
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (s Set) Validate() error {
	if err := s.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Exercise) == "" {
		return ErrEmptyExercise
	}
	if s.Weight < 0 {
		return ErrNegativeWeight
	}
	if s.Reps < 0 {
		return ErrNegativeReps
	}
	return nil
}

// Volume is the training-load metric for one set: weight times reps.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

func (g ExerciseGroup) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyGroupName
	}
	if len(g.Aliases) == 0 {
		return ErrNoAliases
	}
	for _, a := range g.Aliases {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("group %q: empty alias", g.Name)
		}
	}
	return nil
}

// ValidateGroups validates each group and checks that alias sets are disjoint
// across groups, so a set belongs to at most one group.
func ValidateGroups(groups []ExerciseGroup) error {
	seen := map[string]string{}
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
		for _, a := range g.Aliases {
			key := strings.TrimSpace(a)
			if owner, ok := seen[key]; ok && owner != g.Name {
				return fmt.Errorf("alias %q mapped to both %q and %q", key, owner, g.Name)
			}
			seen[key] = g.Name
		}
	}
	return nil
}
