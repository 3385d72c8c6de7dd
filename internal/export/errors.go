package export

import "errors"

// Domain-specific errors for the export package.
var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrNoEvents     = errors.New("no events loaded to export")
)
