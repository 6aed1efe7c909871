package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ChartView is the region holding the trend chart. Every lookup throws the
// previous chart away and puts a new one in its place.
type ChartView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	holder *fyne.Container
}

// NewChartView creates an empty chart region.
func NewChartView(state *AppState) *ChartView {
	view := &ChartView{
		holder: container.NewCenter(),
	}
	view.Card = NewCard(state, view.holder)
	return view
}

// SetChart replaces the current chart with img. Must run on the UI thread.
func (v *ChartView) SetChart(img image.Image) {
	chartImage := canvas.NewImageFromImage(img)
	chartImage.FillMode = canvas.ImageFillContain
	chartImage.SetMinSize(fyne.NewSize(ChartDisplayWidth, ChartDisplayHeight))

	v.holder.RemoveAll()
	v.holder.Add(chartImage)
}
