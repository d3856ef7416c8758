package core

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// ExerciseStats is the per-group summary over one report year.
	// Immutable once computed; TrainingDays is at least 1 because groups with
	// an empty selection never produce stats.
	ExerciseStats struct {
		TotalVolume  float64
		TotalSets    int
		TotalReps    int
		AvgWeight    float64
		MaxWeight    float64
		TrainingDays int
	}

	// Point is one (date, weight) observation of a group's time series.
	Point struct {
		Date   Date
		Weight float64
	}

	// TimeSeries is a group's observations sorted ascending by date.
	TimeSeries []Point

	// GroupResult bundles a group's stats and time series for the reporter.
	GroupResult struct {
		Group  ExerciseGroup
		Stats  ExerciseStats
		Series TimeSeries
	}

	// TrendLine is a first-degree least-squares fit of weight over the date
	// ordinal. For annotation only.
	TrendLine struct {
		Slope     float64 // lbs per day
		Intercept float64
	}
)

// SetsPerSession is the average number of sets per training day.
func (s ExerciseStats) SetsPerSession() float64 {
	return float64(s.TotalSets) / float64(s.TrainingDays)
}

// At evaluates the fitted line at the given date.
func (t TrendLine) At(d Date) float64 {
	return t.Intercept + t.Slope*d.Ordinal()
}

// Aggregate computes per-group stats and time series over the sets whose
// exercise name is in the group's alias set and whose date falls in the
// target year. Groups with no matching sets are omitted from the result.
// Output order follows the configured group order.
func Aggregate(sets []Set, groups []ExerciseGroup, year int) ([]GroupResult, error) {
	if err := ValidateGroups(groups); err != nil {
		return nil, fmt.Errorf("exercise groups: %w", err)
	}

	aliasToGroup := map[string]string{}
	for _, g := range groups {
		for _, a := range g.Aliases {
			aliasToGroup[strings.TrimSpace(a)] = g.Name
		}
	}

	byGroup := map[string][]Set{}
	for _, s := range sets {
		if s.Date.Year() != year {
			continue
		}
		name, ok := aliasToGroup[strings.TrimSpace(s.Exercise)]
		if !ok {
			continue
		}
		byGroup[name] = append(byGroup[name], s)
	}

	var results []GroupResult
	for _, g := range groups {
		selection := byGroup[g.Name]
		if len(selection) == 0 {
			continue
		}
		results = append(results, GroupResult{
			Group:  g,
			Stats:  computeStats(selection),
			Series: buildSeries(selection),
		})
	}
	return results, nil
}

func computeStats(selection []Set) ExerciseStats {
	stats := ExerciseStats{TotalSets: len(selection)}
	days := map[string]struct{}{}
	var weightSum float64
	for _, s := range selection {
		stats.TotalVolume += s.Volume()
		stats.TotalReps += s.Reps
		weightSum += s.Weight
		if s.Weight > stats.MaxWeight {
			stats.MaxWeight = s.Weight
		}
		days[s.Date.DayKey()] = struct{}{}
	}
	stats.AvgWeight = weightSum / float64(len(selection))
	stats.TrainingDays = len(days)
	return stats
}

func buildSeries(selection []Set) TimeSeries {
	series := make(TimeSeries, len(selection))
	for i, s := range selection {
		series[i] = Point{Date: s.Date, Weight: s.Weight}
	}
	// Stable keeps input order for same-day sets.
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date.Time)
	})
	return series
}

// FitTrend fits an ordinary least squares line mapping the date ordinal to
// weight. A series whose dates all share one ordinal gets a flat line at the
// mean weight. Returns false for an empty series.
func FitTrend(series TimeSeries) (TrendLine, bool) {
	if len(series) == 0 {
		return TrendLine{}, false
	}
	var meanX, meanY float64
	for _, p := range series {
		meanX += p.Date.Ordinal()
		meanY += p.Weight
	}
	meanX /= float64(len(series))
	meanY /= float64(len(series))

	var covariance, varianceX float64
	for _, p := range series {
		dx := p.Date.Ordinal() - meanX
		dy := p.Weight - meanY
		covariance += dx * dy
		varianceX += dx * dx
	}
	if varianceX == 0 {
		return TrendLine{Slope: 0, Intercept: meanY}, true
	}
	slope := covariance / varianceX
	return TrendLine{Slope: slope, Intercept: meanY - slope*meanX}, true
}
