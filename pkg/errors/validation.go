package errors

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// maxIDLength bounds person IDs accepted from users.
const maxIDLength = 64

// ValidatePersonID validates a person ID taken from a URL or the command
// line. GEDCOM identifiers are short tokens without whitespace; the "@"
// markers may be included and are not part of the ID.
func ValidatePersonID(id string) error {
	id = strings.Trim(id, "@")
	if id == "" {
		return New(ErrCodeInvalidInput, "person id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "person id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '@' {
			return New(ErrCodeInvalidInput, "person id contains invalid characters: %q", id)
		}
	}
	return nil
}

// ParsePersonID validates a raw person ID and returns it without its "@"
// markers.
func ParsePersonID(raw string) (string, error) {
	if err := ValidatePersonID(raw); err != nil {
		return "", err
	}
	return strings.Trim(raw, "@"), nil
}

// sourceExtensions lists the accepted GEDCOM file extensions.
var sourceExtensions = []string{".ged", ".gedcom"}

// ValidateSourcePath validates the path of a GEDCOM source file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .ged or .gedcom (case-insensitive)
func ValidateSourcePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range sourceExtensions {
		if ext == want {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported source file %q (want .ged or .gedcom)", filepath.Base(path))
}

// ParseGenerationLevel parses a signed generation level such as "-2" or "1".
// Levels beyond ±maxLevel are rejected.
func ParseGenerationLevel(s string, maxLevel int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "generation level must be an integer: %q", s)
	}
	if n > maxLevel || n < -maxLevel {
		return 0, New(ErrCodeInvalidInput, "generation level %d out of range (max %d)", n, maxLevel)
	}
	return n, nil
}
