package presenter

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"skycast/chart"
	"skycast/models"
	"skycast/weather"
)

// Source is where readings and icons come from. *weather.Client implements it.
type Source interface {
	Current(ctx context.Context, city string) (*models.WeatherReading, error)
	Icon(ctx context.Context, code string) (image.Image, error)
}

// View receives the results of a lookup. Implementations are responsible for
// moving the update onto the UI thread, and must drop it if ctx (the lookup's
// context) is done by the time it gets there.
type View interface {
	// ShowText replaces the weather report text.
	ShowText(ctx context.Context, text string)
	// ShowIcon sets the condition icon; nil leaves the icon area blank.
	ShowIcon(ctx context.Context, img image.Image)
	// ApplyScheme recolours the window background and card backgrounds.
	ApplyScheme(ctx context.Context, c color.Color)
	// ShowChart replaces the trend chart.
	ShowChart(ctx context.Context, img image.Image)
}

// Presenter turns one lookup into view updates.
type Presenter struct {
	source Source
	view   View

	now    func() time.Time
	rng    *rand.Rand // nil uses the package-level generator
	render func(city string, points []models.TrendPoint) (image.Image, error)
}

// New creates a presenter reading from source and writing to view.
func New(source Source, view View) *Presenter {
	return &Presenter{
		source: source,
		view:   view,
		now:    time.Now,
		render: chart.Render,
	}
}

// Lookup fetches the weather for city and updates the view.
//
// On a failed fetch only the report text changes (to RetrieveFailedMessage or
// ParseFailedMessage) and the error is returned. On success the report, icon,
// colour scheme and trend chart are updated in that order. If ctx is cancelled
// mid-way the remaining updates are skipped and ctx.Err() is returned, so a
// superseded lookup never overwrites a newer one.
func (p *Presenter) Lookup(ctx context.Context, city string) (*models.WeatherReading, error) {
	lookupID := uuid.New().String()
	log.Printf("[Presenter] lookup %s started for %q", lookupID, city)

	reading, err := p.source.Current(ctx, city)
	if ctx.Err() != nil {
		log.Printf("[Presenter] lookup %s cancelled", lookupID)
		return nil, ctx.Err()
	}
	if err != nil {
		log.Printf("[Presenter] lookup %s failed: %v", lookupID, err)
		p.view.ShowText(ctx, MessageFor(err))
		return nil, err
	}

	p.view.ShowText(ctx, FormatReading(reading))

	// A reading without an icon code still clears the previous city's icon.
	var icon image.Image
	if reading.Icon != "" {
		icon, err = p.source.Icon(ctx, reading.Icon)
		if ctx.Err() != nil {
			log.Printf("[Presenter] lookup %s cancelled", lookupID)
			return nil, ctx.Err()
		}
		if err != nil {
			// Icon failures are never surfaced to the user.
			log.Printf("[Presenter] lookup %s: icon %s unavailable: %v", lookupID, reading.Icon, err)
			icon = nil
		}
	}
	p.view.ShowIcon(ctx, icon)

	scheme := SchemeFor(reading.Description)
	log.Printf("[Presenter] lookup %s: scheme %q for %q", lookupID, SchemeKeyword(reading.Description), reading.Description)
	p.view.ApplyScheme(ctx, scheme)

	points := chart.Points(p.now(), p.rng)
	img, err := p.render(city, points)
	if ctx.Err() != nil {
		log.Printf("[Presenter] lookup %s cancelled", lookupID)
		return nil, ctx.Err()
	}
	if err != nil {
		log.Printf("[Chart] lookup %s: failed to render trend for %q: %v", lookupID, city, err)
	} else {
		p.view.ShowChart(ctx, img)
	}

	log.Printf("[Presenter] lookup %s finished: %s, %.1f°C", lookupID, reading.City, reading.Temperature)
	return reading, nil
}

// MessageFor maps a lookup error to the text shown in the weather region.
func MessageFor(err error) string {
	if errors.Is(err, weather.ErrParse) {
		return ParseFailedMessage
	}
	return RetrieveFailedMessage
}
