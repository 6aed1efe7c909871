package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"skycast/models"
)

const (
	Width  = 4 * vg.Inch
	Height = 2 * vg.Inch
)

var (
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	gridColor = color.RGBA{R: 176, G: 176, B: 176, A: 255}
)

// Title returns the chart title for a city.
func Title(city string) string {
	return "5-Day Temp Trend - " + city
}

// Render draws points as a line chart with markers and a grid, titled for
// city, and returns it as a bitmap.
func Render(city string, points []models.TrendPoint) (image.Image, error) {
	if len(points) == 0 {
		return nil, errors.New("no trend points to plot")
	}

	p := plot.New()
	p.Title.Text = Title(city)
	p.Title.TextStyle.Font.Size = vg.Points(10)
	p.Y.Label.Text = "°C"

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	xys := make(plotter.XYs, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		xys[i].X = float64(i)
		xys[i].Y = float64(pt.Temperature)
		labels[i] = pt.Label
	}

	line, markers, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build trend line: %w", err)
	}
	line.Color = lineColor
	markers.Shape = draw.CircleGlyph{}
	markers.Color = lineColor
	p.Add(line, markers)
	p.NominalX(labels...)

	writer, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create chart writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered chart: %w", err)
	}
	return img, nil
}
