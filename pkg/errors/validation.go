package errors

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ValidateIntRange checks lo <= v <= hi.
func ValidateIntRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return InvalidParameter(field, fmt.Sprintf("in [%d, %d]", lo, hi), v)
	}
	return nil
}

// ValidateFloatRange checks lo <= v <= hi. NaN is always rejected.
func ValidateFloatRange(field string, v, lo, hi float64) error {
	if v != v || v < lo || v > hi {
		return InvalidParameter(field, fmt.Sprintf("in [%g, %g]", lo, hi), v)
	}
	return nil
}

// ValidatePositive checks v > 0.
func ValidatePositive(field string, v float64) error {
	if !(v > 0) {
		return InvalidParameter(field, "positive", v)
	}
	return nil
}

// ValidateOneOf checks that v is one of the allowed values.
func ValidateOneOf(field, v string, allowed []string) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return InvalidParameter(field, "one of "+strings.Join(allowed, ", "), fmt.Sprintf("%q", v))
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
