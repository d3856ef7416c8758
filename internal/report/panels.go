package report

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"liftreport/internal/core"
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func trendStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth:     2,
		StrokeColor:     col.WithAlpha(200),
		StrokeDashArray: []float64{6.0, 4.0},
	}
}

func trainingDaysPanel(results []core.GroupResult) (image.Image, error) {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d)", displayName(r.Group.Name), r.Stats.TrainingDays),
			Value: float64(r.Stats.TrainingDays),
		})
	}
	return renderBarChart("Training Days Comparison", "Number of Days", halfPanelWidth, panelHeight, bars)
}

func setsPerSessionPanel(results []core.GroupResult) (image.Image, error) {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%.1f)", displayName(r.Group.Name), r.Stats.SetsPerSession()),
			Value: r.Stats.SetsPerSession(),
		})
	}
	return renderBarChart("Average Sets per Session", "Sets", halfPanelWidth, panelHeight, bars)
}

func volumePanel(results []core.GroupResult) (image.Image, error) {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s)", displayName(r.Group.Name), formatCount(r.Stats.TotalVolume)),
			Value: r.Stats.TotalVolume,
		})
	}
	return renderBarChart("Total Volume Comparison", "Total Volume (lbs)", reportWidth, panelHeight, bars)
}

func renderBarChart(title, yAxisName string, width, height int, bars []chart.Value) (image.Image, error) {
	if len(bars) == 0 {
		return blankPanel(width, height, "No matching sets for this year"), nil
	}
	// go-chart rejects a zero-span y range.
	allZero := true
	for _, b := range bars {
		if b.Value != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return blankPanel(width, height, "No data to plot"), nil
	}
	barWidth := (width - 2*margin) / (2 * len(bars))
	ch := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: margin, Right: margin, Bottom: 30}},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		YAxis: chart.YAxis{
			Name: yAxisName,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	return png.Decode(&buf)
}

func progressionPanel(results []core.GroupResult) (image.Image, error) {
	if len(results) == 0 {
		return blankPanel(reportWidth, progressionHeight, "No matching sets for this year"), nil
	}

	var series []chart.Series
	for i, r := range results {
		col := chart.GetDefaultColor(i)
		times, weights := seriesValues(r.Series)
		series = append(series, chart.TimeSeries{
			Name:    displayName(r.Group.Name),
			XValues: times,
			YValues: weights,
			Style:   pointStyle(col),
		})

		trend, ok := core.FitTrend(r.Series)
		if !ok {
			continue
		}
		first := r.Series[0].Date
		last := r.Series[len(r.Series)-1].Date
		if !last.After(first.Time) {
			// Pad to at least two X values for go-chart
			last = core.Date{Time: first.Add(24 * time.Hour)}
		}
		series = append(series, chart.TimeSeries{
			XValues: []time.Time{first.Time, last.Time},
			YValues: []float64{trend.At(first), trend.At(last)},
			Style:   trendStyle(col),
		})
	}

	ch := chart.Chart{
		Title:      "Weight Progression Over Time",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: margin, Right: margin, Bottom: 48}},
		Width:      reportWidth,
		Height:     progressionHeight,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Weight (lbs)",
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render weight progression: %w", err)
	}
	return png.Decode(&buf)
}

func seriesValues(series core.TimeSeries) ([]time.Time, []float64) {
	times := make([]time.Time, len(series))
	weights := make([]float64, len(series))
	for i, p := range series {
		times[i] = p.Date.Time
		weights[i] = p.Weight
	}
	if len(series) == 1 {
		// Pad to at least two X values for go-chart
		times = append(times, times[0].Add(24*time.Hour))
		weights = append(weights, weights[0])
	}
	return times, weights
}

func blankPanel(width, height int, note string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	drawCenteredText(img, note, width/2, height/2)
	return img
}
