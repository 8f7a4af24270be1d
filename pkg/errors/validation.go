package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultImageExt is the extension required of output paths by default.
const DefaultImageExt = ".png"

// ValidateQuote validates the required quote text.
// Leading and trailing whitespace is stripped; a quote that is empty after
// trimming is rejected with EMPTY_QUOTE. On success the trimmed text is
// returned, so callers always lay out the canonical form.
func ValidateQuote(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", New(ErrCodeEmptyQuote, "quote text cannot be empty")
	}
	return trimmed, nil
}

// ValidateOutputPath validates a destination path for the rendered image,
// requiring the default .png extension.
func ValidateOutputPath(path string) (string, error) {
	return ValidateOutputPathExt(path, DefaultImageExt)
}

// ValidateOutputPathExt validates a destination path against an explicit
// required extension. The SVG sink uses this with ".svg".
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Must end in the required extension (case-insensitive)
func ValidateOutputPathExt(path, ext string) (string, error) {
	if path == "" {
		return "", New(ErrCodeInvalidOutputPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return "", New(ErrCodeInvalidOutputPath, "output path contains invalid control characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ext) {
		return "", New(ErrCodeInvalidOutputPath, "output path must have the required extension %s", ext)
	}

	return path, nil
}
