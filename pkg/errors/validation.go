package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Seasons outside this range are rejected before any request is made.
const (
	MinSeason = 1901
	MaxSeason = 2100
)

// ValidateSeason validates a season year.
func ValidateSeason(year int) error {
	if year < MinSeason || year > MaxSeason {
		return New(ErrCodeInvalidSeason, "season %d out of range (%d-%d)", year, MinSeason, MaxSeason)
	}
	return nil
}

// imageNameRegex matches the file names produced by the compositor and any
// other simple artifact name a sink may be asked to store.
var imageNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateFileName validates an output file name for safety.
// It ensures the name is a simple basename without path components, so a
// sink rooted at a directory or bucket prefix can never escape it.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No path separators, control characters or traversal sequences
//   - No hidden files (leading dot)
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "file name too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "file name cannot contain path traversal sequences (..)")
	}
	if !imageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPath, "invalid file name: %q", name)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
