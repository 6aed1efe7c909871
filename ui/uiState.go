package ui

import (
	"context"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"skycast/favorites"
	"skycast/presenter"
)

// AppState holds the shared state for the entire application.
// It is created once at startup, owned by the window, and handed to every view.
//
// Views talk to each other through callbacks registered here, following an
// observer pattern, so they stay loosely coupled. All fields are touched only
// from the Fyne UI thread; lookups run in goroutines and come back via fyne.Do.
type AppState struct {
	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Favorites is the in-memory list of favorite cities
	Favorites *favorites.Store

	// Presenter runs lookups; it is wired by BuildMainLayout once the views exist
	Presenter *presenter.Presenter

	// background is the current colour scheme and backgrounds are every
	// rectangle that follows it (window background and cards)
	background  color.Color
	backgrounds []*canvas.Rectangle

	// report is the text currently shown in the weather region
	report string

	// lastCity is the last city whose lookup succeeded, used by Refresh
	lastCity string

	// lookupSeq identifies the newest lookup; cancelLookup aborts it
	lookupSeq    int
	cancelLookup context.CancelFunc

	// OnLookupStarted is called when a lookup for a city begins
	OnLookupStarted []func(city string)

	// OnLookupFinished is called when the newest lookup completes
	// (err is nil on success). Superseded lookups do not report.
	OnLookupFinished []func(city string, err error)
}

// NewAppState creates and initializes the application state.
//
// Parameters:
//   - window: The main application window
//   - store: The favorites store, empty at startup
func NewAppState(window fyne.Window, store *favorites.Store) *AppState {
	return &AppState{
		Window:           window,
		Favorites:        store,
		background:       InitialBackgroundColor,
		report:           presenter.PromptMessage,
		OnLookupStarted:  make([]func(string), 0),
		OnLookupFinished: make([]func(string, error), 0),
	}
}

// Lookup starts a weather lookup for city in the background.
// A lookup already in flight is cancelled; its results are dropped.
func (s *AppState) Lookup(city string) {
	if s.Presenter == nil {
		log.Printf("[UI] Lookup for %q ignored: presenter not wired", city)
		return
	}

	if s.cancelLookup != nil {
		s.cancelLookup()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelLookup = cancel
	s.lookupSeq++
	seq := s.lookupSeq

	log.Printf("[UI] Lookup requested for %q", city)
	for _, callback := range s.OnLookupStarted {
		callback(city)
	}

	go func() {
		_, err := s.Presenter.Lookup(ctx, city)

		fyne.Do(func() {
			if seq != s.lookupSeq {
				return
			}
			cancel()
			s.cancelLookup = nil
			if err == nil {
				s.lastCity = city
			}
			for _, callback := range s.OnLookupFinished {
				callback(city, err)
			}
		})
	}()
}

// CancelLookup aborts the lookup in flight, if any.
func (s *AppState) CancelLookup() {
	if s.cancelLookup != nil {
		s.cancelLookup()
		s.cancelLookup = nil
	}
}

// LastCity returns the last successfully looked-up city, or "".
func (s *AppState) LastCity() string {
	return s.lastCity
}

// Report returns the text currently shown in the weather region.
func (s *AppState) Report() string {
	return s.report
}

// Background returns the current background colour.
func (s *AppState) Background() color.Color {
	return s.background
}

// RegisterBackground adds a rectangle that follows the colour scheme.
func (s *AppState) RegisterBackground(rect *canvas.Rectangle) {
	rect.FillColor = s.background
	s.backgrounds = append(s.backgrounds, rect)
}

// ApplyScheme recolours the window background and every card.
func (s *AppState) ApplyScheme(c color.Color) {
	s.background = c
	for _, rect := range s.backgrounds {
		rect.FillColor = c
		rect.Refresh()
	}
}

// RegisterLookupStartedCallback registers a callback for the start of each lookup.
func (s *AppState) RegisterLookupStartedCallback(callback func(string)) {
	s.OnLookupStarted = append(s.OnLookupStarted, callback)
}

// RegisterLookupFinishedCallback registers a callback for the end of the newest lookup.
func (s *AppState) RegisterLookupFinishedCallback(callback func(string, error)) {
	s.OnLookupFinished = append(s.OnLookupFinished, callback)
}
