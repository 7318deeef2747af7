package words

import (
	"fmt"

	"github.com/jmylchreest/colorcue/internal/errs"
)

var (
	// ErrTooFewWords is returned when a descriptor list cannot cover every hue.
	ErrTooFewWords = fmt.Errorf("%w: too few descriptor words", errs.ErrInvalidInput)

	// ErrReservedWord is returned when scoring a descriptor word.
	ErrReservedWord = fmt.Errorf("%w: reserved word", errs.ErrInvalidInput)

	// ErrInvalidRange is returned for score ranges that are empty or negative.
	ErrInvalidRange = fmt.Errorf("%w: invalid score range", errs.ErrInvalidInput)

	// ErrHueOutOfRange is returned when asking for a descriptor outside [0,360].
	ErrHueOutOfRange = fmt.Errorf("%w: hue out of range", errs.ErrInvalidInput)
)
