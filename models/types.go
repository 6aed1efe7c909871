package models

import "time"

// WeatherReading is the current weather for one city as returned by a single lookup.
// A reading is created fresh per lookup and discarded on the next one.
type WeatherReading struct {
	City        string  // Display name reported by the provider (e.g., "London")
	Description string  // Raw provider description (e.g., "light rain")
	Temperature float64 // Degrees Celsius
	Humidity    int     // Relative humidity in percent
	WindSpeed   float64 // Metres per second
	Icon        string  // Provider icon code (e.g., "10d")
}

// TrendPoint is one entry of the simulated five-day temperature trend.
type TrendPoint struct {
	Date        time.Time // UTC calendar day the point belongs to
	Label       string    // Axis label, formatted "Jan 02"
	Temperature int       // Simulated temperature in degrees Celsius
}
