package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is the umbrella error for any grid that cannot be searched.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrSymbolNotFound indicates a Locate lookup found no matching cell.
	ErrSymbolNotFound = errors.New("grid: symbol not found")
)
