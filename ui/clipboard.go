package ui

import (
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2/dialog"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyReport puts the current weather report on the system clipboard.
func CopyReport(state *AppState) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		log.Printf("[UI] Clipboard unavailable: %v", clipboardErr)
		dialog.ShowError(fmt.Errorf("clipboard unavailable: %w", clipboardErr), state.Window)
		return
	}

	report := state.Report()
	clipboard.Write(clipboard.FmtText, []byte(report))
	log.Printf("[UI] Copied report to clipboard (%d bytes)", len(report))
}
