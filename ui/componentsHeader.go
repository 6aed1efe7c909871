package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewHeader creates the application header: a bold, centered title.
func NewHeader() fyne.CanvasObject {
	titleText := canvas.NewText("🌤️ Weather App", TextColorDark)
	titleText.TextSize = TitleTextSize
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter

	return container.NewVBox(titleText)
}
