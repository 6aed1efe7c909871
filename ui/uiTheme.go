package ui

import (
	"image/color"

	"skycast/presenter"
)

// Theme constants define the visual appearance of the application.
// The background colour itself is dynamic (see presenter.SchemeFor); these
// are the fixed parts of the look.

// Color palette for the application
var (
	// InitialBackgroundColor is the neutral background shown before the first lookup
	InitialBackgroundColor color.Color = presenter.DefaultScheme

	// TextColorDark is used for the header and footer text on the light backgrounds
	TextColorDark = color.NRGBA{R: 47, G: 53, B: 66, A: 255}
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the main application title
	TitleTextSize = 22

	// FooterTextSize is used for the attribution footer
	FooterTextSize = 11
)

// Layout constants
const (
	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 520

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 700

	// IconDisplaySize is the edge length of the condition icon
	IconDisplaySize = 100

	// ChartDisplayWidth and ChartDisplayHeight size the trend chart (4x2 inch at 100 dpi)
	ChartDisplayWidth  = 400
	ChartDisplayHeight = 200
)
