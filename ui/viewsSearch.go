package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"skycast/favorites"
)

// SearchView represents the search area: the city entry, the Search and
// Refresh buttons, the "Add to Favorites" button and a busy indicator.
type SearchView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	cityEntry     *widget.Entry
	searchButton  *widget.Button
	refreshButton *widget.Button
	addFavButton  *widget.Button
	progress      *widget.ProgressBarInfinite

	state *AppState
}

// NewSearchView creates the search area.
func NewSearchView(state *AppState) *SearchView {
	view := &SearchView{state: state}

	view.cityEntry = widget.NewEntry()
	view.cityEntry.SetPlaceHolder("City name")
	// Pressing Enter in the entry behaves like the Search button
	view.cityEntry.OnSubmitted = func(string) {
		view.onSearch()
	}

	view.searchButton = widget.NewButtonWithIcon("Search", theme.SearchIcon(), func() {
		view.onSearch()
	})

	view.refreshButton = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		view.onRefresh()
	})

	view.addFavButton = widget.NewButtonWithIcon("Add to Favorites", theme.ContentAddIcon(), func() {
		view.onAddFavorite()
	})

	view.progress = widget.NewProgressBarInfinite()
	view.progress.Hide()

	state.RegisterLookupStartedCallback(func(string) {
		view.progress.Show()
	})
	state.RegisterLookupFinishedCallback(func(string, error) {
		view.progress.Hide()
	})

	// The entry takes the remaining width next to the buttons
	entryRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(view.searchButton, view.refreshButton),
		view.cityEntry,
	)

	cardContent := container.NewVBox(
		entryRow,
		container.NewHBox(layout.NewSpacer(), view.addFavButton, layout.NewSpacer()),
		view.progress,
	)

	view.Card = NewCard(state, cardContent)
	return view
}

// onSearch validates the entry and starts a lookup.
// An empty entry shows a warning and sends nothing to the network.
func (v *SearchView) onSearch() {
	city, ok := ValidateCityWithDialog(v.state, v.cityEntry.Text)
	if !ok {
		return
	}
	v.state.Lookup(city)
}

// onRefresh re-runs the lookup for the entry text, or for the last
// successful city when the entry is empty.
func (v *SearchView) onRefresh() {
	city := strings.TrimSpace(v.cityEntry.Text)
	if city == "" {
		city = v.state.LastCity()
	}

	city, ok := ValidateCityWithDialog(v.state, city)
	if !ok {
		return
	}
	log.Printf("[UI] Refresh requested for %q", city)
	v.state.Lookup(city)
}

// onAddFavorite adds the entry text to the favorites. A blank entry is
// ignored; a duplicate only shows an informational notice.
func (v *SearchView) onAddFavorite() {
	city := strings.TrimSpace(v.cityEntry.Text)
	if city == "" {
		return
	}

	err := v.state.Favorites.Add(city)
	switch {
	case err == nil:
		return
	case errors.Is(err, favorites.ErrDuplicate):
		dialog.ShowInformation("Info", fmt.Sprintf("%s is already in favorites.", city), v.state.Window)
	default:
		dialog.ShowError(err, v.state.Window)
	}
}
