package utils

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ParseIntDefault converts string to int with default value for empty or
// invalid input. Negative values fall back to the default too.
func ParseIntDefault(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// SanitizeFileName strips path components and replaces every character
// outside [A-Za-z0-9.-] with an underscore.
func SanitizeFileName(name string) string {
	// Normalize Windows separators so Base strips them as well
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == string(filepath.Separator) {
		return "_"
	}
	return unsafeFileChars.ReplaceAllString(base, "_")
}
