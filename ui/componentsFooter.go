package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// NewFooter creates the attribution footer required by the weather provider.
func NewFooter() fyne.CanvasObject {
	footerText := canvas.NewText("Weather data provided by OpenWeatherMap", TextColorDark)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	return footerText
}
