package life

import (
	"errors"
	"fmt"
)

// Construction errors for grids built from caller data.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("life: grid must be at least 1x1")

	// ErrNotRectangular indicates rows of differing lengths.
	ErrNotRectangular = errors.New("life: rows must all have the same length")

	// ErrInvalidCell indicates a cell value other than 0 or 1.
	ErrInvalidCell = errors.New("life: cell values must be 0 or 1")

	// ErrUnknownPattern indicates a pattern name with no registered seed.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// CellError wraps a construction error with the offending position.
type CellError struct {
	Row     int
	Col     int
	Wrapped error
}

func (e *CellError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Wrapped)
	}
	return fmt.Sprintf("row %d col %d: %v", e.Row, e.Col, e.Wrapped)
}

func (e *CellError) Unwrap() error {
	return e.Wrapped
}
