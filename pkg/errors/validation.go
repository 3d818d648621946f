package errors

import (
	"strings"
	"unicode"
)

// MaxGridSide bounds each dimension of grids accepted from untrusted input
// (the HTTP API and generated grids). Path enumeration grows combinatorially
// with the cell count, so larger boards are rejected up front.
const MaxGridSide = 10

// ValidateDimensions validates the requested size of a grid.
//
// Validation rules:
//   - Both dimensions must be at least 1
//   - Neither dimension may exceed MaxGridSide
func ValidateDimensions(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return New(ErrCodeInvalidGrid, "grid must have at least one row and one column (got %dx%d)", rows, cols)
	}
	if rows > MaxGridSide || cols > MaxGridSide {
		return New(ErrCodeInvalidGrid, "grid too large (max %dx%d, got %dx%d)", MaxGridSide, MaxGridSide, rows, cols)
	}
	return nil
}

// ValidateRows checks that rows form a non-empty rectangle of non-blank cells.
func ValidateRows(rows [][]string) error {
	if len(rows) == 0 {
		return New(ErrCodeInvalidGrid, "grid has no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return New(ErrCodeInvalidGrid, "grid row 0 is empty")
	}
	for r, row := range rows {
		if len(row) != cols {
			return New(ErrCodeInvalidGrid, "grid is not rectangular: row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, cell := range row {
			if strings.TrimSpace(cell) == "" {
				return New(ErrCodeInvalidGrid, "grid cell (%d,%d) is blank", r, c)
			}
		}
	}
	return nil
}

// ValidatePath validates a local file path supplied on the command line or
// in a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
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

// IsURL reports whether s looks like an http(s) URL rather than a file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
