package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path before it is handed to
// the filesystem. The rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateColorSpec performs a cheap syntactic check on a scene color
// string before it is resolved against the palette. Accepted forms are a
// palette name, "none"/"transparent", or a #rrggbb literal.
func ValidateColorSpec(spec string) error {
	if spec == "" {
		return nil // empty means transparent
	}

	if strings.HasPrefix(spec, "#") {
		if len(spec) != 7 {
			return New(ErrCodeInvalidColor, "hex color %q must have the form #rrggbb", spec)
		}
		for _, r := range spec[1:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return New(ErrCodeInvalidColor, "hex color %q contains a non-hex digit", spec)
			}
		}
		return nil
	}

	for _, r := range spec {
		if !unicode.IsLetter(r) && r != '-' {
			return New(ErrCodeInvalidColor, "color name %q contains invalid characters", spec)
		}
	}
	return nil
}
