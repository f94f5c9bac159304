package errors

import (
	"regexp"
	"strings"
)

// hexColorRegex matches a six digit RGB colour without the leading '#'.
var hexColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ValidateColor validates an RGB colour in the "RRGGBB" form used by
// annotation calls. A leading '#' is accepted.
func ValidateColor(hex string) error {
	if hex == "" {
		return New(ErrCodeInvalidColor, "colour cannot be empty")
	}
	if !hexColorRegex.MatchString(strings.TrimPrefix(hex, "#")) {
		return New(ErrCodeInvalidColor, "invalid colour %q (want RRGGBB)", hex)
	}
	return nil
}

// ValidateExtent validates a canvas extent. Both sides must be positive.
func ValidateExtent(width, height int64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "canvas extent must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateTable validates tabular content: at least one row, at least one
// column, and every row the same length as the first.
func ValidateTable(rows [][]string) error {
	if len(rows) == 0 {
		return New(ErrCodeInvalidInput, "table has no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return New(ErrCodeInvalidInput, "table has no columns")
	}
	for i, row := range rows {
		if len(row) != cols {
			return New(ErrCodeInvalidInput, "table row %d has %d cells, want %d", i, len(row), cols)
		}
	}
	return nil
}
