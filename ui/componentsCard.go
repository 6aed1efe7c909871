package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewCard wraps content in a card whose background follows the weather colour scheme.
// The background rectangle is registered with the state so ApplyScheme can recolour it.
//
// Parameters:
//   - state: The shared application state that owns the colour scheme
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with a tinted background and padded content
func NewCard(state *AppState, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(state.Background())
	bg.CornerRadius = 6
	state.RegisterBackground(bg)

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a bold title and a separator above the content.
//
// Example usage:
//
//	rows := container.NewVBox()
//	card := NewCardWithHeader(state, "Favorites", rows)
func NewCardWithHeader(state *AppState, title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
	)

	cardContent := container.NewBorder(
		header,  // Top border
		nil,     // Bottom border
		nil,     // Left border
		nil,     // Right border
		content, // Center content (fills remaining space)
	)

	return NewCard(state, cardContent)
}
