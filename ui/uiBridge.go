package ui

import (
	"context"
	"image"
	"image/color"

	"fyne.io/fyne/v2"

	"skycast/presenter"
)

// presenterView adapts the views to presenter.View. The presenter runs in a
// lookup goroutine, so every update is handed to the UI thread with fyne.Do.
//
// AppState.Lookup cancels the previous lookup on the UI thread before starting
// a new one, so checking ctx inside the queued closure is enough to keep a
// superseded lookup from painting over a newer one.
type presenterView struct {
	state   *AppState
	weather *WeatherView
	chart   *ChartView
}

var _ presenter.View = (*presenterView)(nil)

// apply runs update on the UI thread unless the lookup is over by then.
func (v *presenterView) apply(ctx context.Context, update func()) {
	fyne.Do(func() {
		if ctx.Err() != nil {
			return
		}
		update()
	})
}

func (v *presenterView) ShowText(ctx context.Context, text string) {
	v.apply(ctx, func() {
		v.state.report = text
		v.weather.SetReport(text)
	})
}

func (v *presenterView) ShowIcon(ctx context.Context, img image.Image) {
	v.apply(ctx, func() {
		v.weather.SetIcon(img)
	})
}

func (v *presenterView) ApplyScheme(ctx context.Context, c color.Color) {
	v.apply(ctx, func() {
		v.state.ApplyScheme(c)
	})
}

func (v *presenterView) ShowChart(ctx context.Context, img image.Image) {
	v.apply(ctx, func() {
		v.chart.SetChart(img)
	})
}
