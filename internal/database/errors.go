package database

import (
	"fmt"

	"github.com/jmylchreest/colorcue/internal/errs"
)

var (
	// ErrNoWords is returned when no database word matches a required score.
	ErrNoWords = fmt.Errorf("%w: NOWORDS: no word matches the score", errs.ErrLookup)

	// ErrNotSetUp is returned when populating a database before SetUp.
	ErrNotSetUp = fmt.Errorf("%w: initializer must be set up before populating the database", errs.ErrSetup)

	// ErrMalformedRecord is returned for database lines that are not "score<sep>word".
	ErrMalformedRecord = fmt.Errorf("%w: malformed database record", errs.ErrInvalidInput)

	// ErrUnknownRule is returned when disabling a cleaning rule that does not exist.
	ErrUnknownRule = fmt.Errorf("%w: unknown cleaning rule", errs.ErrInvalidInput)
)
