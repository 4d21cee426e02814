package maze

import "errors"

var (
	// ErrInvalidSize indicates a board with a non-positive width or height.
	ErrInvalidSize = errors.New("maze: board width and height must be at least 1")
	// ErrInvalidWeightBound indicates a weight bound below 1.
	ErrInvalidWeightBound = errors.New("maze: weight bound must be at least 1")
	// ErrRangeOutOfBounds indicates a sort range that does not fit the slice.
	ErrRangeOutOfBounds = errors.New("maze: sort range out of bounds")
	// ErrInvalidEdge indicates an edge ID or endpoint that is not part of the grid.
	ErrInvalidEdge = errors.New("maze: edge does not belong to the grid")
	// ErrCellOutOfRange indicates a cell ID that is not part of the grid.
	ErrCellOutOfRange = errors.New("maze: cell out of range")
	// ErrNoPath indicates the goal cannot be reached from the start cell.
	ErrNoPath = errors.New("maze: no path between cells")
)
