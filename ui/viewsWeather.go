package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"skycast/presenter"
)

// WeatherView represents the weather card: the multi-line report and the condition icon.
type WeatherView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	reportLabel *widget.Label // Report text or a failure message
	icon        *canvas.Image // Condition icon, blank until the first successful lookup

	state *AppState
}

// NewWeatherView creates the weather card showing the initial prompt.
func NewWeatherView(state *AppState) *WeatherView {
	view := &WeatherView{state: state}

	view.reportLabel = widget.NewLabel(presenter.PromptMessage)
	view.reportLabel.Alignment = fyne.TextAlignCenter
	view.reportLabel.Wrapping = fyne.TextWrapWord

	view.icon = canvas.NewImageFromImage(nil)
	view.icon.FillMode = canvas.ImageFillContain
	view.icon.SetMinSize(fyne.NewSize(IconDisplaySize, IconDisplaySize))

	cardContent := container.NewVBox(
		view.reportLabel,
		container.NewCenter(view.icon),
	)

	view.Card = NewCard(state, cardContent)
	return view
}

// SetReport replaces the report text. Must run on the UI thread.
func (v *WeatherView) SetReport(text string) {
	v.reportLabel.SetText(text)
}

// SetIcon shows img, or blanks the icon area when img is nil. Must run on the UI thread.
func (v *WeatherView) SetIcon(img image.Image) {
	v.icon.Image = img
	v.icon.Refresh()
}
