package ui

import (
	"fyne.io/fyne/v2/dialog"

	"skycast/validation"
)

// ValidateCityWithDialog validates raw city input and shows the input-error
// notice when it is unusable. It returns the trimmed city and whether it is valid.
func ValidateCityWithDialog(state *AppState, raw string) (string, bool) {
	city, err := validation.ValidateCity(raw)
	if err != nil {
		if state != nil && state.Window != nil {
			dialog.ShowInformation("Input Error", "Please enter a city.", state.Window)
		}
		return "", false
	}
	return city, true
}
