package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"liftreport/internal/core"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strong.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestListSets(t *testing.T) {
	// Strong exports carry extra columns; they must be ignored.
	path := writeLog(t, `Date,Workout Name,Exercise Name,Set Order,Weight,Reps,Distance,Seconds
2024-01-01 09:30:00,Morning,Squat (Barbell),1,100,5,,
2024-01-01 09:40:00,Morning,Squat (Barbell),2,105,3,,
2024-01-08,Morning,Deadlift Old Data,1,200,5,,
2024-02-01 10:00:00,Morning,Pull Up,1,,8,,
`)
	sets, err := New(path).ListSets(context.Background())
	if err != nil {
		t.Fatalf("list sets: %v", err)
	}
	if len(sets) != 4 {
		t.Fatalf("expected 4 sets, got %d", len(sets))
	}
	if sets[0].Exercise != "Squat (Barbell)" || sets[0].Weight != 100 || sets[0].Reps != 5 {
		t.Fatalf("first set wrong: %+v", sets[0])
	}
	if sets[2].Date.DayKey() != "2024-01-08" {
		t.Fatalf("date-only layout not parsed: %+v", sets[2])
	}
	// Empty weight cell means a bodyweight set, not a malformed row.
	if sets[3].Weight != 0 || sets[3].Reps != 8 {
		t.Fatalf("bodyweight set wrong: %+v", sets[3])
	}
}

func TestListSetsMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv")).ListSets(context.Background())
	if !errors.Is(err, core.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestListSetsMissingColumns(t *testing.T) {
	path := writeLog(t, "Date,Exercise Name,Weight\n2024-01-01,Squat (Barbell),100\n")
	_, err := New(path).ListSets(context.Background())
	var malformed *core.MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if malformed.Line != 1 {
		t.Fatalf("expected header line 1, got %d", malformed.Line)
	}
}

func TestListSetsMalformedRows(t *testing.T) {
	header := "Date,Exercise Name,Weight,Reps\n"
	cases := []struct {
		name string
		row  string
		line int
	}{
		{"bad date", "01.05.2024,Squat (Barbell),100,5\n", 2},
		{"bad weight", "2024-01-01,Squat (Barbell),heavy,5\n", 2},
		{"bad reps", "2024-01-01,Squat (Barbell),100,five\n", 2},
		{"empty exercise", "2024-01-01,,100,5\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLog(t, header+tc.row)
			_, err := New(path).ListSets(context.Background())
			var malformed *core.MalformedRowError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedRowError, got %v", err)
			}
			if malformed.Line != tc.line {
				t.Fatalf("line: got %d, want %d", malformed.Line, tc.line)
			}
		})
	}
}

func TestListSetsEmptyFile(t *testing.T) {
	path := writeLog(t, "")
	_, err := New(path).ListSets(context.Background())
	var malformed *core.MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError for empty file, got %v", err)
	}
}

func TestListSetsHeaderOnly(t *testing.T) {
	path := writeLog(t, "Date,Exercise Name,Weight,Reps\n")
	sets, err := New(path).ListSets(context.Background())
	if err != nil {
		t.Fatalf("list sets: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected no sets, got %d", len(sets))
	}
}
