package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa color strings.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor validates a color string accepted by the chart package.
//
// Accepted forms:
//   - "none" (fully transparent, used to hide spines)
//   - #rgb, #rrggbb, #rrggbbaa hex strings
func ValidateColor(c string) error {
	if c == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if c == "none" {
		return nil
	}
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidColor, "invalid color %q (expected #rrggbb or \"none\")", c)
	}
	return nil
}

// ValidateOutputPath validates a file path that output will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Path cannot name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateShape checks that a matrix has at least one row and one column.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return New(ErrCodeInvalidShape, "matrix must be non-empty, got %dx%d", rows, cols)
	}
	return nil
}
