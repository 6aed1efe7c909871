package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"skycast/presenter"
)

// BuildMainLayout constructs the complete application UI and wires the presenter.
//
// The layout structure is:
// - Background: a rectangle recoloured by the weather colour scheme
// - Header: application title (top)
// - Content (scrollable, top to bottom): search area, weather card,
//   favorites card, trend chart
// - Footer: provider attribution (bottom)
//
// Parameters:
//   - state: The application state, already holding the window and favorites store
//   - source: Where weather readings and icons come from
//
// Returns:
//   - fyne.CanvasObject: The complete UI layout ready to be set as window content
func BuildMainLayout(state *AppState, source presenter.Source) fyne.CanvasObject {
	background := canvas.NewRectangle(state.Background())
	state.RegisterBackground(background)

	header := NewHeader()

	searchView := NewSearchView(state)
	weatherView := NewWeatherView(state)
	favoritesView := NewFavoritesView(state)
	chartView := NewChartView(state)

	// The presenter writes back into the weather and chart views
	state.Presenter = presenter.New(source, &presenterView{
		state:   state,
		weather: weatherView,
		chart:   chartView,
	})

	contentArea := container.NewVBox(
		searchView.Card,
		weatherView.Card,
		favoritesView.Card,
		chartView.Card,
	)

	footer := NewFooter()

	mainLayout := container.NewBorder(
		container.NewPadded(header), // Top: Header with padding
		container.NewPadded(footer), // Bottom: Footer with padding
		nil,                         // Left: None
		nil,                         // Right: None
		// Center: scrollable content fills remaining space
		container.NewVScroll(container.NewPadded(contentArea)),
	)

	// Stack the background behind all content
	return container.NewStack(background, mainLayout)
}
