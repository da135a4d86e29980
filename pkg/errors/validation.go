package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentName validates a document name for safety and correctness.
// It rejects names that could be used for path traversal when documents are
// stored as files.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., /, backslash)
//   - Maximum length of 256 characters
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "document name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "document name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "document name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "document name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateHexColor validates a #rgb or #rrggbb color value.
func ValidateHexColor(color string) error {
	if !strings.HasPrefix(color, "#") || (len(color) != 4 && len(color) != 7) {
		return New(ErrCodeInvalidInput, "invalid hex color %q (want #rgb or #rrggbb)", color)
	}
	for _, r := range color[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return New(ErrCodeInvalidInput, "invalid hex color %q (want #rgb or #rrggbb)", color)
		}
	}
	return nil
}

// ValidateOutputPath validates an export output path for safety.
// It rejects empty paths, null bytes, and unreasonably long paths.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains null byte")
	}
	return nil
}
