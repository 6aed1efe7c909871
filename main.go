package main

// main.go focuses on application initialization.
// Package structure:
// - config/     : Environment configuration, rotating log file, build version
// - models/     : Data structures (WeatherReading, TrendPoint)
// - weather/    : OpenWeatherMap client (current weather, icons, rate limiting)
// - presenter/  : Report text, colour scheme and lookup orchestration
// - favorites/  : In-memory favorite cities
// - chart/      : Simulated five-day trend chart
// - parser/     : Image decoding and text helpers
// - validation/ : City input validation
// - ui/         : Fyne views, state, dialogs and windows

import (
	"log"

	_ "embed" // required for go:embed

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"skycast/config"
	"skycast/favorites"
	"skycast/ui"
	"skycast/weather"
)

//go:embed packaging/skycast.svg
var iconBytes []byte

func main() {
	cfg := config.Load()

	if logDir, err := cfg.VerifyLogDirectory(); err != nil {
		log.Printf("[Config] File logging disabled: %v", err)
	} else if _, err := config.InitLogger(logDir); err != nil {
		log.Printf("[Config] File logging disabled: %v", err)
	}
	defer config.CloseLogger()

	client, err := weather.NewClient(cfg)
	if err != nil {
		log.Fatalf("[Weather] Failed to create weather client: %v", err)
	}

	// Create a new Fyne application instance
	weatherApp := app.NewWithID("com.skycast.weather")

	app.SetMetadata(fyne.AppMetadata{
		ID:      "com.skycast.weather",
		Name:    "Weather App",
		Version: config.Version,
	})

	myWindow := weatherApp.NewWindow("Weather App")
	myWindow.SetIcon(fyne.NewStaticResource("skycast.svg", iconBytes))

	// The favorites list lives for the lifetime of the window
	state := ui.NewAppState(myWindow, favorites.NewStore())

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Copy Report", func() {
			log.Println("[UI] Copy report triggered (File menu)")
			ui.CopyReport(state)
		}),
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Logs opened (File menu)")
			ui.ShowLogWindow(weatherApp)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(myWindow)
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		weatherApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Logs opened (ctrl + l)")
		ui.ShowLogWindow(weatherApp)
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application")
		state.CancelLookup()
		weatherApp.Quit()
	})

	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Build the complete UI layout and wire the presenter to the weather client
	myWindow.SetContent(ui.BuildMainLayout(state, client))

	if !cfg.HasAPIKey() {
		dialog.ShowInformation("Missing API key",
			"Set "+config.APIKeyEnv+" (or add it to a .env file) to fetch weather data.",
			myWindow)
	}

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}
