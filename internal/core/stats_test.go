package core

import (
	"math"
	"testing"
)

func squatGroup() ExerciseGroup {
	return ExerciseGroup{Name: "Squat (Barbell)", Aliases: []string{"Squat (Barbell)"}}
}

func TestAggregateReferenceExample(t *testing.T) {
	sets := []Set{
		{Date: NewDate(2024, 1, 1), Exercise: "Squat (Barbell)", Weight: 100, Reps: 5},
		{Date: NewDate(2024, 1, 1), Exercise: "Squat (Barbell)", Weight: 105, Reps: 3},
		{Date: NewDate(2024, 1, 8), Exercise: "Squat (Barbell)", Weight: 110, Reps: 5},
	}
	results, err := Aggregate(sets, []ExerciseGroup{squatGroup()}, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	s := results[0].Stats
	if s.TotalSets != 3 {
		t.Errorf("total sets: got %d, want 3", s.TotalSets)
	}
	if s.TotalReps != 13 {
		t.Errorf("total reps: got %d, want 13", s.TotalReps)
	}
	if s.TotalVolume != 1365 {
		t.Errorf("total volume: got %v, want 1365", s.TotalVolume)
	}
	if s.TrainingDays != 2 {
		t.Errorf("training days: got %d, want 2", s.TrainingDays)
	}
	if s.MaxWeight != 110 {
		t.Errorf("max weight: got %v, want 110", s.MaxWeight)
	}
	if math.Abs(s.AvgWeight-105.0) > 1e-9 {
		t.Errorf("avg weight: got %v, want 105", s.AvgWeight)
	}
	if got := s.SetsPerSession(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("sets per session: got %v, want 1.5", got)
	}
}

func TestAggregateMergesAliases(t *testing.T) {
	group := ExerciseGroup{
		Name:    "Deadlift (Barbell)",
		Aliases: []string{"Deadlift (Barbell)", "Deadlift Old Data"},
	}
	sets := []Set{
		{Date: NewDate(2024, 2, 1), Exercise: "Deadlift (Barbell)", Weight: 200, Reps: 3},
		{Date: NewDate(2024, 2, 8), Exercise: "Deadlift Old Data", Weight: 210, Reps: 2},
	}
	results, err := Aggregate(sets, []ExerciseGroup{group}, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	s := results[0].Stats
	if s.TotalSets != 2 || s.TotalReps != 5 || s.MaxWeight != 210 {
		t.Fatalf("alias merge stats wrong: %+v", s)
	}
}

func TestAggregateExcludesOtherYears(t *testing.T) {
	sets := []Set{
		{Date: NewDate(2023, 12, 31), Exercise: "Squat (Barbell)", Weight: 90, Reps: 5},
		{Date: NewDate(2024, 1, 1), Exercise: "Squat (Barbell)", Weight: 100, Reps: 5},
		{Date: NewDate(2025, 1, 1), Exercise: "Squat (Barbell)", Weight: 120, Reps: 5},
	}
	results, err := Aggregate(sets, []ExerciseGroup{squatGroup()}, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	s := results[0].Stats
	if s.TotalSets != 1 || s.MaxWeight != 100 {
		t.Fatalf("year filter wrong: %+v", s)
	}
}

func TestAggregateOmitsEmptyGroups(t *testing.T) {
	groups := []ExerciseGroup{
		squatGroup(),
		{Name: "Bench Press (Barbell)", Aliases: []string{"Bench Press (Barbell)"}},
	}
	sets := []Set{
		{Date: NewDate(2024, 1, 1), Exercise: "Squat (Barbell)", Weight: 100, Reps: 5},
	}
	results, err := Aggregate(sets, groups, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected only the squat group, got %d results", len(results))
	}
	if results[0].Group.Name != "Squat (Barbell)" {
		t.Fatalf("unexpected group %q", results[0].Group.Name)
	}
	// Omitted means absent, not present with zeros.
	for _, r := range results {
		if r.Stats.TrainingDays < 1 {
			t.Fatalf("group %q has zero training days", r.Group.Name)
		}
	}
}

func TestAggregateTrainingDaysBounds(t *testing.T) {
	sets := []Set{
		{Date: NewDate(2024, 3, 1), Exercise: "Squat (Barbell)", Weight: 100, Reps: 5},
		{Date: NewDate(2024, 3, 1), Exercise: "Squat (Barbell)", Weight: 100, Reps: 5},
		{Date: NewDate(2024, 3, 1), Exercise: "Squat (Barbell)", Weight: 105, Reps: 3},
	}
	results, err := Aggregate(sets, []ExerciseGroup{squatGroup()}, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	s := results[0].Stats
	if s.TrainingDays != 1 {
		t.Fatalf("same-day sets must collapse to one session, got %d", s.TrainingDays)
	}
	if s.TrainingDays > s.TotalSets {
		t.Fatalf("training days %d exceeds total sets %d", s.TrainingDays, s.TotalSets)
	}
}

func TestAggregateSeriesSorted(t *testing.T) {
	sets := []Set{
		{Date: NewDate(2024, 5, 20), Exercise: "Squat (Barbell)", Weight: 115, Reps: 5},
		{Date: NewDate(2024, 5, 6), Exercise: "Squat (Barbell)", Weight: 105, Reps: 5},
		{Date: NewDate(2024, 5, 13), Exercise: "Squat (Barbell)", Weight: 110, Reps: 5},
	}
	results, err := Aggregate(sets, []ExerciseGroup{squatGroup()}, 2024)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	series := results[0].Series
	if len(series) != 3 {
		t.Fatalf("series length: got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date.Before(series[i-1].Date.Time) {
			t.Fatalf("series not sorted at %d: %v after %v", i, series[i].Date, series[i-1].Date)
		}
	}
	if series[0].Weight != 105 || series[2].Weight != 115 {
		t.Fatalf("series order wrong: %+v", series)
	}
}

func TestAggregateRejectsOverlappingAliases(t *testing.T) {
	groups := []ExerciseGroup{
		{Name: "Squat", Aliases: []string{"Squat (Barbell)"}},
		{Name: "Back Squat", Aliases: []string{"Squat (Barbell)"}},
	}
	if _, err := Aggregate(nil, groups, 2024); err == nil {
		t.Fatal("expected error for overlapping aliases")
	}
}

func TestFitTrend(t *testing.T) {
	series := TimeSeries{
		{Date: NewDate(2024, 1, 1), Weight: 100},
		{Date: NewDate(2024, 1, 8), Weight: 110},
	}
	trend, ok := FitTrend(series)
	if !ok {
		t.Fatal("expected fit")
	}
	if got, want := trend.Slope, 10.0/7.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("slope: got %v, want %v", got, want)
	}
	// The line passes through both observations.
	if got := trend.At(NewDate(2024, 1, 1)); math.Abs(got-100) > 1e-9 {
		t.Fatalf("At(start): got %v, want 100", got)
	}
	if got := trend.At(NewDate(2024, 1, 8)); math.Abs(got-110) > 1e-9 {
		t.Fatalf("At(end): got %v, want 110", got)
	}
}

func TestFitTrendReferenceExample(t *testing.T) {
	series := TimeSeries{
		{Date: NewDate(2024, 1, 1), Weight: 100},
		{Date: NewDate(2024, 1, 1), Weight: 105},
		{Date: NewDate(2024, 1, 8), Weight: 110},
	}
	trend, ok := FitTrend(series)
	if !ok {
		t.Fatal("expected fit")
	}
	// Least squares over ordinals {0, 0, 7}: slope 15/14.
	if got, want := trend.Slope, 15.0/14.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("slope: got %v, want %v", got, want)
	}
}

func TestFitTrendSingleDay(t *testing.T) {
	series := TimeSeries{
		{Date: NewDate(2024, 1, 1), Weight: 100},
		{Date: NewDate(2024, 1, 1), Weight: 110},
	}
	trend, ok := FitTrend(series)
	if !ok {
		t.Fatal("expected fit")
	}
	if trend.Slope != 0 {
		t.Fatalf("slope: got %v, want 0", trend.Slope)
	}
	if got := trend.At(NewDate(2024, 1, 1)); math.Abs(got-105) > 1e-9 {
		t.Fatalf("flat line level: got %v, want 105", got)
	}
}

func TestFitTrendEmpty(t *testing.T) {
	if _, ok := FitTrend(nil); ok {
		t.Fatal("expected no fit for empty series")
	}
}
