package report

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"liftreport/internal/core"
)

const (
	tableTitleBand  = 44
	tableHeaderRow  = 44
	tableRowHeight  = 36
	tableBottomPad  = 24
	exerciseColFrac = 0.20
)

var tableHeaders = []string{
	"Exercise",
	"Training Days",
	"Total Sets",
	"Sets per Session",
	"Total Reps",
	"Total Volume (lbs)",
	"Average Weight (lbs)",
	"Max Weight (lbs)",
}

// drawStatsTable renders the detailed statistics table. Height depends on the
// number of groups that produced stats; an empty result set still renders the
// header row.
func drawStatsTable(results []core.GroupResult) *image.RGBA {
	height := tableTitleBand + tableHeaderRow + tableRowHeight*len(results) + tableBottomPad
	img := image.NewRGBA(image.Rect(0, 0, reportWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	drawCenteredText(img, "Detailed Exercise Statistics", reportWidth/2, tableTitleBand/2)

	left := margin
	right := reportWidth - margin
	tableWidth := right - left
	top := tableTitleBand
	bottom := top + tableHeaderRow + tableRowHeight*len(results)

	colEdges := columnEdges(left, tableWidth)

	// Header background and labels
	draw.Draw(img, image.Rect(left, top, right, top+tableHeaderRow), image.NewUniform(headerBG), image.Point{}, draw.Src)
	for i, h := range tableHeaders {
		cx := (colEdges[i] + colEdges[i+1]) / 2
		drawCenteredText(img, h, cx, top+tableHeaderRow/2)
	}

	for i, r := range results {
		s := r.Stats
		cells := []string{
			displayName(r.Group.Name),
			fmt.Sprintf("%d", s.TrainingDays),
			fmt.Sprintf("%d", s.TotalSets),
			fmt.Sprintf("%.1f", s.SetsPerSession()),
			humanize.Comma(int64(s.TotalReps)),
			formatCount(s.TotalVolume),
			fmt.Sprintf("%.1f", s.AvgWeight),
			fmt.Sprintf("%.1f", s.MaxWeight),
		}
		cy := top + tableHeaderRow + tableRowHeight*i + tableRowHeight/2
		for j, cell := range cells {
			cx := (colEdges[j] + colEdges[j+1]) / 2
			drawCenteredText(img, cell, cx, cy)
		}
	}

	// Grid
	for _, x := range colEdges {
		fillRect(img, image.Rect(x, top, x+1, bottom))
	}
	fillRect(img, image.Rect(left, top, right, top+1))
	fillRect(img, image.Rect(left, top+tableHeaderRow, right, top+tableHeaderRow+1))
	for i := 1; i <= len(results); i++ {
		y := top + tableHeaderRow + tableRowHeight*i
		fillRect(img, image.Rect(left, y, right, y+1))
	}

	return img
}

// columnEdges returns the x coordinates of the table's column boundaries:
// a wider exercise column, the rest split evenly.
func columnEdges(left, tableWidth int) []int {
	n := len(tableHeaders)
	edges := make([]int, n+1)
	edges[0] = left
	exerciseWidth := int(float64(tableWidth) * exerciseColFrac)
	edges[1] = left + exerciseWidth
	rest := tableWidth - exerciseWidth
	for i := 2; i <= n; i++ {
		edges[i] = edges[1] + rest*(i-1)/(n-1)
	}
	return edges
}

func fillRect(img *image.RGBA, r image.Rectangle) {
	draw.Draw(img, r, image.NewUniform(gridColor), image.Point{}, draw.Src)
}

// drawCenteredText draws text centered on (cx, cy) using the basic 7x13 face.
func drawCenteredText(img *image.RGBA, text string, cx, cy int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(black),
		Face: face,
	}
	w := d.MeasureString(text).Ceil()
	x := cx - w/2
	y := cy + face.Metrics().Ascent.Ceil()/2 - 1
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(text)
}

// formatCount renders a float as a whole number with thousands separators.
func formatCount(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}
