package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FavoritesView represents the favorites card.
// Each favorite is a row with a button that looks the city up again and a
// delete button. Rows are rebuilt from scratch whenever the store changes.
type FavoritesView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// rows holds one HBox per favorite, in insertion order
	rows *fyne.Container

	state *AppState
}

// NewFavoritesView creates the favorites card and subscribes it to the store.
func NewFavoritesView(state *AppState) *FavoritesView {
	view := &FavoritesView{
		state: state,
		rows:  container.NewVBox(),
	}

	view.Card = NewCardWithHeader(state, "Favorites", view.rows)

	// Store callbacks run on the goroutine that mutated it, which for this
	// app is always the UI thread (button handlers).
	state.Favorites.OnChange(func(cities []string) {
		view.render(cities)
	})

	view.render(state.Favorites.List())
	return view
}

// render discards all rows and rebuilds them from cities.
func (v *FavoritesView) render(cities []string) {
	v.rows.RemoveAll()

	for _, city := range cities {
		city := city

		selectButton := widget.NewButton(city, func() {
			log.Printf("[UI] Favorite %q selected", city)
			v.state.Lookup(city)
		})

		deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			log.Printf("[UI] Favorite %q deleted", city)
			v.state.Favorites.Remove(city)
		})

		v.rows.Add(container.NewHBox(selectButton, deleteButton))
	}

	v.rows.Refresh()
}
