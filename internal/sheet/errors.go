package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a sheet cannot be laid out with the
	// given page geometry and cards.
	ErrConfiguration = errors.New("invalid sheet configuration")

	// ErrLayout is returned when not even one card fits in the page.
	ErrLayout = fmt.Errorf("%w: card does not fit in page", ErrConfiguration)

	// ErrOutOfBounds is returned for grid coordinates or card numbers
	// outside the page grid.
	ErrOutOfBounds = errors.New("out of grid bounds")
)
