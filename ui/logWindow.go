package ui

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"skycast/config"
)

const (
	initialLinesToShow = 1000 // Keep the last 1000 lines in view
)

// ShowLogWindow opens a window that follows the application log file live.
func ShowLogWindow(weatherApp fyne.App) {
	logFilePath := config.LogFilePath()

	logWindow := weatherApp.NewWindow("Weather App Logs")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	// lines is only touched on the UI thread
	var lines []string
	var query string

	updateDisplay := func() {
		if query == "" {
			logLabel.SetText(strings.Join(lines, "\n"))
			return
		}

		var filtered []string
		queryLower := strings.ToLower(query)
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line), queryLower) {
				filtered = append(filtered, line)
			}
		}

		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s", query))
			return
		}
		logLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered)))
	}

	performSearch := func() {
		query = strings.TrimSpace(searchEntry.Text)
		updateDisplay()
	}
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)
	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		performSearch()
	})
	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(filepath.Dir(logFilePath), logWindow)
	})

	infoLabel := widget.NewLabel(fmt.Sprintf("Following %s (last %d lines)", logFilePath, initialLinesToShow))

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, openDirButton),
		searchEntry)

	scroll := container.NewScroll(logLabel)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)

	if logFilePath == "" {
		logLabel.SetText("File logging is disabled; logs are only written to stderr.")
		logWindow.Show()
		return
	}

	follower, err := tail.TailFile(logFilePath, tail.Config{
		Follow:    true,
		ReOpen:    true, // survive log rotation
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
		logWindow.Show()
		return
	}

	logWindow.SetOnClosed(func() {
		if err := follower.Stop(); err != nil {
			log.Printf("[UI] Error stopping log follower: %v", err)
		}
		follower.Cleanup()
	})
	logWindow.Show()

	go func() {
		for line := range follower.Lines {
			if line.Err != nil {
				continue
			}
			text := line.Text
			fyne.Do(func() {
				lines = append(lines, text)
				if len(lines) > initialLinesToShow {
					lines = lines[len(lines)-initialLinesToShow:]
				}
				updateDisplay()
				scroll.ScrollToBottom()
			})
		}
	}()
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
