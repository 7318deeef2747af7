package codec

import (
	"fmt"

	"github.com/jmylchreest/colorcue/internal/errs"
)

var (
	// ErrNotTuple is returned for input that is not two words without digits.
	ErrNotTuple = fmt.Errorf("%w: expected two words without digits", errs.ErrInvalidInput)

	// ErrNoDescriptor is returned when neither word is a descriptor.
	ErrNoDescriptor = fmt.Errorf("%w: no descriptor word", errs.ErrStructure)

	// ErrTwoDescriptors is returned when both words are descriptors.
	ErrTwoDescriptors = fmt.Errorf("%w: two descriptor words", errs.ErrStructure)

	// ErrUnknownDescriptor is returned when a descriptor has no index.
	ErrUnknownDescriptor = fmt.Errorf("%w: unknown descriptor word", errs.ErrLookup)

	// ErrNoGrayDescriptors is returned when encoding a gray with a
	// descriptor list that has no gray words.
	ErrNoGrayDescriptors = fmt.Errorf("%w: descriptor list has no gray words", errs.ErrSetup)
)
