package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"

	"skycast/models"
)

// currentResponse is the subset of the OpenWeatherMap current-weather payload we read.
// Pointer fields let us tell a missing field from a zero value.
type currentResponse struct {
	Name    *string `json:"name"`
	Weather []struct {
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current weather for city in metric units.
// Failures are always *FetchError: KindRetrieve for transport and HTTP
// status problems, KindParse for bodies we cannot use.
func (c *Client) Current(ctx context.Context, city string) (*models.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, retrieveError(city, 0, errors.New("empty city name"))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, retrieveError(city, 0, err)
	}

	target := c.currentURL(city)
	body, status, err := c.get(ctx, target)
	if err != nil {
		log.Printf("[Weather] Error fetching weather data for %q: %v", city, err)
		return nil, retrieveError(city, status, err)
	}

	if !isSuccess(status) {
		log.Printf("[Weather] Provider returned status %d for %q", status, city)
		return nil, retrieveError(city, status, fmt.Errorf("API returned non-success status: %d", status))
	}

	reading, err := parseCurrent(body)
	if err != nil {
		log.Printf("[Weather] Parsing error for %q: %v", city, err)
		return nil, parseError(city, err)
	}

	return reading, nil
}

func (c *Client) currentURL(city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	sep := "?"
	if strings.Contains(c.weatherURL, "?") {
		sep = "&"
	}
	return c.weatherURL + sep + q.Encode()
}

// parseCurrent decodes a current-weather body and checks every field we display.
func parseCurrent(body []byte) (*models.WeatherReading, error) {
	var resp currentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	switch {
	case resp.Name == nil:
		return nil, errors.New("missing field: name")
	case len(resp.Weather) == 0:
		return nil, errors.New("missing field: weather[0]")
	case resp.Weather[0].Description == nil:
		return nil, errors.New("missing field: weather[0].description")
	case resp.Weather[0].Icon == nil:
		return nil, errors.New("missing field: weather[0].icon")
	case resp.Main == nil:
		return nil, errors.New("missing field: main")
	case resp.Main.Temp == nil:
		return nil, errors.New("missing field: main.temp")
	case resp.Main.Humidity == nil:
		return nil, errors.New("missing field: main.humidity")
	case resp.Wind == nil:
		return nil, errors.New("missing field: wind")
	case resp.Wind.Speed == nil:
		return nil, errors.New("missing field: wind.speed")
	}

	return &models.WeatherReading{
		City:        *resp.Name,
		Description: *resp.Weather[0].Description,
		Temperature: *resp.Main.Temp,
		Humidity:    int(math.Round(*resp.Main.Humidity)),
		WindSpeed:   *resp.Wind.Speed,
		Icon:        *resp.Weather[0].Icon,
	}, nil
}
