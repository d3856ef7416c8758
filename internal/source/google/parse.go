package google

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"liftreport/internal/core"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// parseSets converts a values matrix (as returned by the Sheets API) into
// sets. It expects a header row including Date, Exercise Name, Weight, Reps.
func parseSets(values [][]interface{}) ([]core.Set, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := toStrings(values[0])
	colDate := indexOf(headers, "Date")
	colExercise := indexOf(headers, "Exercise Name")
	colWeight := indexOf(headers, "Weight")
	colReps := indexOf(headers, "Reps")
	if colDate == -1 || colExercise == -1 || colWeight == -1 || colReps == -1 {
		missing := make([]string, 0, 4)
		if colDate == -1 {
			missing = append(missing, "Date")
		}
		if colExercise == -1 {
			missing = append(missing, "Exercise Name")
		}
		if colWeight == -1 {
			missing = append(missing, "Weight")
		}
		if colReps == -1 {
			missing = append(missing, "Reps")
		}
		return nil, &core.MalformedRowError{Line: 1, Reason: fmt.Sprintf("missing columns: %s; got headers=%v", strings.Join(missing, ", "), headers)}
	}

	var sets []core.Set
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		line := i + 1

		dateCell := safeGet(row, colDate)
		date, ok := parseDate(dateCell)
		if !ok {
			return nil, &core.MalformedRowError{Line: line, Reason: fmt.Sprintf("invalid date %q", dateCell)}
		}

		exercise := strings.TrimSpace(safeGet(row, colExercise))
		if exercise == "" {
			return nil, &core.MalformedRowError{Line: line, Reason: "empty exercise name"}
		}

		weight := 0.0
		if cell := strings.TrimSpace(safeGet(row, colWeight)); cell != "" {
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &core.MalformedRowError{Line: line, Reason: fmt.Sprintf("invalid weight %q", cell)}
			}
			weight = w
		}

		reps := 0
		if cell := strings.TrimSpace(safeGet(row, colReps)); cell != "" {
			n, err := strconv.Atoi(cell)
			if err != nil {
				return nil, &core.MalformedRowError{Line: line, Reason: fmt.Sprintf("invalid reps %q", cell)}
			}
			reps = n
		}

		set := core.Set{Date: date, Exercise: exercise, Weight: weight, Reps: reps}
		if err := set.Validate(); err != nil {
			return nil, &core.MalformedRowError{Line: line, Reason: err.Error()}
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func parseDate(cell string) (core.Date, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return core.Date{Time: t}, true
		}
	}
	return core.Date{}, false
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = t
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprintf("%v", t)
		}
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
