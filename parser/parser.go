package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		// Path starts with ~/ so expand it
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	// Path doesn't start with ~/ so return it unchanged
	return path, nil
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest,
// e.g. "light RAIN" -> "Light Rain".
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// FormatNumber prints a float in its shortest form: 21 -> "21", 21.50 -> "21.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
