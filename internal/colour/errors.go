package colour

import (
	"fmt"

	"github.com/jmylchreest/colorcue/internal/errs"
)

var (
	// ErrOutOfRange is returned by the tuple codec for values it cannot represent.
	ErrOutOfRange = fmt.Errorf("%w: value out of range", errs.ErrInvalidInput)

	// ErrInvalidFormat is returned when rendering to an unknown colour mode.
	ErrInvalidFormat = fmt.Errorf("%w: invalid color format", errs.ErrInvalidInput)

	// ErrInvalidColor is returned when a colour is unset or outside the HSL ranges.
	ErrInvalidColor = fmt.Errorf("%w: invalid color or color mode", errs.ErrInvalidInput)

	// ErrUnknownMode is returned by ParseMode for unsupported mode names.
	ErrUnknownMode = fmt.Errorf("%w: unknown color mode", errs.ErrInvalidInput)
)
