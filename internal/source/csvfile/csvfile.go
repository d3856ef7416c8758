// Package csvfile reads workout sets from a Strong-style CSV export.
//
// The file must carry at least the columns "Date", "Exercise Name", "Weight"
// and "Reps"; any extra columns are ignored. A missing or unreadable file is
// reported as core.ErrInputNotFound, a row that does not match the schema as
// core.MalformedRowError.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"liftreport/internal/core"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

// ListSets implements source.SetReader.
func (r *Reader) ListSets(ctx context.Context) ([]core.Set, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrInputNotFound, r.path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &core.MalformedRowError{Line: 1, Reason: "empty file"}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var sets []core.Set
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &core.MalformedRowError{Line: line, Reason: err.Error()}
		}
		set, err := parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

type columns struct {
	date, exercise, weight, reps int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, exercise: -1, weight: -1, reps: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Date":
			cols.date = i
		case "Exercise Name":
			cols.exercise = i
		case "Weight":
			cols.weight = i
		case "Reps":
			cols.reps = i
		}
	}
	var missing []string
	if cols.date == -1 {
		missing = append(missing, "Date")
	}
	if cols.exercise == -1 {
		missing = append(missing, "Exercise Name")
	}
	if cols.weight == -1 {
		missing = append(missing, "Weight")
	}
	if cols.reps == -1 {
		missing = append(missing, "Reps")
	}
	if len(missing) > 0 {
		return cols, &core.MalformedRowError{Line: 1, Reason: "missing columns: " + strings.Join(missing, ", ")}
	}
	return cols, nil
}

func parseRow(row []string, cols columns, line int) (core.Set, error) {
	get := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := parseDate(get(cols.date))
	if err != nil {
		return core.Set{}, &core.MalformedRowError{Line: line, Reason: err.Error()}
	}

	exercise := get(cols.exercise)
	if exercise == "" {
		return core.Set{}, &core.MalformedRowError{Line: line, Reason: "empty exercise name"}
	}

	// Bodyweight and duration-only rows export with empty weight/reps cells.
	weight := 0.0
	if cell := get(cols.weight); cell != "" {
		weight, err = strconv.ParseFloat(cell, 64)
		if err != nil {
			return core.Set{}, &core.MalformedRowError{Line: line, Reason: fmt.Sprintf("invalid weight %q", cell)}
		}
	}

	reps := 0
	if cell := get(cols.reps); cell != "" {
		reps, err = strconv.Atoi(cell)
		if err != nil {
			return core.Set{}, &core.MalformedRowError{Line: line, Reason: fmt.Sprintf("invalid reps %q", cell)}
		}
	}

	set := core.Set{Date: date, Exercise: exercise, Weight: weight, Reps: reps}
	if err := set.Validate(); err != nil {
		return core.Set{}, &core.MalformedRowError{Line: line, Reason: err.Error()}
	}
	return set, nil
}

func parseDate(cell string) (core.Date, error) {
	if cell == "" {
		return core.Date{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return core.Date{Time: t}, nil
		}
	}
	return core.Date{}, fmt.Errorf("invalid date %q", cell)
}
