// Package report renders the composite training report image: a stats table
// plus four chart panels over the aggregated exercise groups.
package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"liftreport/internal/core"
)

const (
	reportWidth = 1600
	margin      = 24

	titleHeight       = 90
	halfPanelWidth    = reportWidth / 2
	panelHeight       = 430
	progressionHeight = 760
)

var (
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	headerBG  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	gridColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}
)

// Render draws the full report for the given year. The layout is fixed:
// title, stats table, training-days and sets-per-session bars side by side,
// volume bars, then the weight progression scatter with trend lines.
func Render(results []core.GroupResult, year int) (image.Image, error) {
	tableImg := drawStatsTable(results)

	// The four chart panels are independent; render them in parallel.
	var (
		g      errgroup.Group
		panels [4]image.Image
	)
	g.Go(func() error {
		img, err := trainingDaysPanel(results)
		panels[0] = img
		return err
	})
	g.Go(func() error {
		img, err := setsPerSessionPanel(results)
		panels[1] = img
		return err
	})
	g.Go(func() error {
		img, err := volumePanel(results)
		panels[2] = img
		return err
	})
	g.Go(func() error {
		img, err := progressionPanel(results)
		panels[3] = img
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render panels: %w", err)
	}

	tableHeight := tableImg.Bounds().Dy()
	totalHeight := titleHeight + tableHeight + panelHeight + panelHeight + progressionHeight

	out := image.NewRGBA(image.Rect(0, 0, reportWidth, totalHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	drawCenteredText(out, fmt.Sprintf("Training Analysis Report - %d", year), reportWidth/2, titleHeight/2)

	y := titleHeight
	draw.Draw(out, image.Rect(0, y, reportWidth, y+tableHeight), tableImg, image.Point{}, draw.Over)
	y += tableHeight

	draw.Draw(out, image.Rect(0, y, halfPanelWidth, y+panelHeight), panels[0], image.Point{}, draw.Over)
	draw.Draw(out, image.Rect(halfPanelWidth, y, reportWidth, y+panelHeight), panels[1], image.Point{}, draw.Over)
	y += panelHeight

	draw.Draw(out, image.Rect(0, y, reportWidth, y+panelHeight), panels[2], image.Point{}, draw.Over)
	y += panelHeight

	draw.Draw(out, image.Rect(0, y, reportWidth, y+progressionHeight), panels[3], image.Point{}, draw.Over)

	return out, nil
}

// WriteFile encodes the report as PNG at path, creating the directory if
// absent.
func WriteFile(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// displayName strips the implement suffix used by the raw log names.
func displayName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, " (Barbell)", ""))
}
