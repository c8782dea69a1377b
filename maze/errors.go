package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is matched by every error returned from New.
	ErrInvalidGrid = errors.New("maze: invalid grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidCell indicates a marker that is neither a non-negative integer nor the wall marker.
	ErrInvalidCell = errors.New("maze: cell must be a non-negative integer or the wall marker")
	// ErrCostOverflow indicates the cell costs sum past the int range, so a
	// path cost could wrap around.
	ErrCostOverflow = errors.New("maze: total cell cost overflows int")
	// ErrInvalidSize indicates non-positive dimensions or a negative cost for Uniform.
	ErrInvalidSize = errors.New("maze: invalid size or cost")
)

// CellError reports the position and content of a rejected cell.
// It matches both ErrInvalidCell and ErrInvalidGrid with errors.Is.
type CellError struct {
	Row, Col int
	Value    string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%v: %q at row %d, column %d", ErrInvalidCell, e.Value, e.Row, e.Col)
}

// Is lets errors.Is see through to the two sentinels a bad cell belongs to.
func (e *CellError) Is(target error) bool {
	return target == ErrInvalidCell || target == ErrInvalidGrid
}

// invalid joins the umbrella sentinel with a specific one and a detail message.
func invalid(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidGrid, kind, fmt.Sprintf(format, args...))
}
