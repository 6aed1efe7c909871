package validation

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyCity   = errors.New("please enter a city")
	ErrInvalidCity = errors.New("city name contains control characters")
)

// ValidateCity trims raw input and checks it can be sent as a city query.
// It only works with raw values, no Fyne types, so it can be shared freely.
func ValidateCity(raw string) (string, error) {
	city := strings.TrimSpace(raw)
	if city == "" {
		return "", ErrEmptyCity
	}

	for _, r := range city {
		if unicode.IsControl(r) {
			return "", ErrInvalidCity
		}
	}

	return city, nil
}
