package grid

import "errors"

var (
	// ErrEmptyGrid indicates the requested board has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrSameEndpoints indicates start and finish share a cell.
	ErrSameEndpoints = errors.New("grid: start and finish must be different cells")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown character in a layout.
	ErrBadCell = errors.New("grid: unknown cell character")
	// ErrEndpointCount indicates a layout without exactly one start and one finish.
	ErrEndpointCount = errors.New("grid: layout needs exactly one start and one finish")
)
