package scenario

import "errors"

var (
	// ErrParse indicates HCL syntax errors.
	ErrParse = errors.New("scenario: parse error")

	// ErrDecode indicates a structurally invalid scenario body.
	ErrDecode = errors.New("scenario: decode error")

	// ErrMissingGrid indicates a scenario without a grid block.
	ErrMissingGrid = errors.New("scenario: missing grid block")

	// ErrBadCoordinate indicates a coordinate that is not a [row, col] pair of integers.
	ErrBadCoordinate = errors.New("scenario: bad coordinate")

	// ErrUnknownAlgorithm indicates an algorithm name other than dijkstra or astar.
	ErrUnknownAlgorithm = errors.New("scenario: unknown algorithm")
)
