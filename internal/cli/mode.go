package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colorcue/internal/colour"
)

// modeValue is a pflag.Value accepting colour mode names.
type modeValue struct {
	mode colour.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func newModeValue(def colour.Mode) *modeValue {
	return &modeValue{mode: def}
}

func (v *modeValue) String() string {
	return string(v.mode)
}

func (v *modeValue) Set(s string) error {
	m, err := colour.ParseMode(s)
	if err != nil {
		return err
	}
	v.mode = m
	return nil
}

func (v *modeValue) Type() string {
	return "mode"
}
