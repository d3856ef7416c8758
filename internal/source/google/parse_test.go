package google

import (
	"errors"
	"testing"

	"liftreport/internal/core"
)

// Build a small matrix emulating a Strong log mirrored into a sheet.
func TestParseSets(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Workout Name", "Exercise Name", "Weight", "Reps"},
		{"2024-01-01 09:30:00", "Morning", "Squat (Barbell)", 100.0, 5.0},
		{"2024-01-08", "Morning", "Deadlift Old Data", "210", "2"},
		{"2024-02-01", "Morning", "Pull Up", "", 8.0},
	}
	sets, err := parseSets(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(sets))
	}
	if sets[0].Weight != 100 || sets[0].Reps != 5 {
		t.Fatalf("numeric cells wrong: %+v", sets[0])
	}
	if sets[1].Exercise != "Deadlift Old Data" || sets[1].Weight != 210 {
		t.Fatalf("string cells wrong: %+v", sets[1])
	}
	if sets[2].Weight != 0 {
		t.Fatalf("empty weight cell should be zero: %+v", sets[2])
	}
}

func TestParseSetsMissingHeaders(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Exercise Name", "Weight"},
		{"2024-01-01", "Squat (Barbell)", 100.0},
	}
	_, err := parseSets(values)
	var malformed *core.MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
}

func TestParseSetsBadCell(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Exercise Name", "Weight", "Reps"},
		{"2024-01-01", "Squat (Barbell)", "heavy", 5.0},
	}
	_, err := parseSets(values)
	var malformed *core.MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if malformed.Line != 2 {
		t.Fatalf("line: got %d, want 2", malformed.Line)
	}
}

func TestParseSetsEmpty(t *testing.T) {
	sets, err := parseSets(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected no sets, got %d", len(sets))
	}
}
