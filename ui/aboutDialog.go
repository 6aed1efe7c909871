package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"skycast/config"
)

const providerURL = "https://openweathermap.org"

// aboutMarkdown is rendered with the build metadata filled in.
const aboutMarkdown = `## Weather App

Current weather for any city from OpenWeatherMap, with the background
following the conditions.

- Favorites are kept until you quit
- The five-day chart shows sample data, not history

**Version** %s · **Commit** %s · **Built** %s
`

// ShowAboutDialog shows version information over parent.
func ShowAboutDialog(parent fyne.Window) {
	body := widget.NewRichTextFromMarkdown(
		fmt.Sprintf(aboutMarkdown, config.Version, config.GitCommit, config.BuildTime),
	)
	body.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(body)
	if link, err := url.Parse(providerURL); err == nil {
		content.Add(widget.NewHyperlink("openweathermap.org", link))
	}

	about := dialog.NewCustom("About", "Close", content, parent)
	about.Resize(fyne.NewSize(380, 300))
	about.Show()
}
