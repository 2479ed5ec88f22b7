package humandur

import (
	"time"

	"github.com/spf13/pflag"
)

// FlagValue is a pflag.Value storing into a time.Duration. Bare numbers on
// the command line are read in the flag's fallback unit, so "--timeout 30"
// and "--timeout 30s" mean the same thing for a Second flag.
type FlagValue struct {
	p    *time.Duration
	unit Unit
}

// NewFlagValue sets *p to value and returns a FlagValue writing to p.
func NewFlagValue(p *time.Duration, value time.Duration, unit Unit) *FlagValue {
	*p = value
	return &FlagValue{p: p, unit: unit}
}

func (v *FlagValue) Set(s string) error {
	d, err := Parse(s, v.unit)
	if err != nil {
		return err
	}
	std, err := stdOrErr(s, v.unit, d)
	if err != nil {
		return err
	}
	*v.p = std
	return nil
}

func (v *FlagValue) String() string {
	// pflag calls String on a zero FlagValue to detect default values
	if v == nil || v.p == nil {
		return time.Duration(0).String()
	}
	return v.p.String()
}

func (v *FlagValue) Type() string {
	return "duration"
}

// Unit returns the fallback unit used for bare numbers.
func (v *FlagValue) Unit() Unit { return v.unit }

// DurationVar defines a duration flag on fs, like pflag's DurationVar, whose
// bare numeric values are read in unit.
func DurationVar(fs *pflag.FlagSet, p *time.Duration, name string, value time.Duration, unit Unit, usage string) {
	fs.Var(NewFlagValue(p, value, unit), name, usage)
}

// DurationVarP is like DurationVar, but accepts a shorthand letter.
func DurationVarP(fs *pflag.FlagSet, p *time.Duration, name, shorthand string, value time.Duration, unit Unit, usage string) {
	fs.VarP(NewFlagValue(p, value, unit), name, shorthand, usage)
}
