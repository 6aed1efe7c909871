package presenter

import (
	"fmt"

	"skycast/models"
	"skycast/parser"
)

// User-visible texts for the weather region.
const (
	PromptMessage         = "Enter a city to get weather"
	RetrieveFailedMessage = "Could not retrieve data."
	ParseFailedMessage    = "Error parsing weather data."
)

// FormatReading renders the five-line weather report shown to the user.
func FormatReading(r *models.WeatherReading) string {
	return fmt.Sprintf(
		"%s\n%s\nTemperature: %s°C\nHumidity: %d%%\nWind Speed: %s m/s",
		r.City,
		parser.TitleCase(r.Description),
		parser.FormatNumber(r.Temperature),
		r.Humidity,
		parser.FormatNumber(r.WindSpeed),
	)
}
