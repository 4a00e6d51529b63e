package cmd

import (
	"strconv"

	"github.com/bnema/finger-cli/internal/application"
	"github.com/spf13/pflag"
)

// layoutState is shared by -l, -p and -s. pflag calls Set in command-line
// order, so the last layout flag wins.
type layoutState struct {
	format        application.Format
	personalFiles bool
}

func defaultLayout() layoutState {
	return layoutState{format: application.FormatLong, personalFiles: true}
}

type layoutFlag struct {
	state *layoutState
	apply func(*layoutState)
	set   bool
}

var _ pflag.Value = (*layoutFlag)(nil)

func (f *layoutFlag) String() string {
	return strconv.FormatBool(f.set)
}

func (f *layoutFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	if on {
		f.apply(f.state)
		f.set = true
	}

	return nil
}

func (f *layoutFlag) Type() string {
	return "bool"
}

func addLayoutFlag(flags *pflag.FlagSet, state *layoutState, name string, shorthand string, usage string, apply func(*layoutState)) {
	flag := flags.VarPF(&layoutFlag{state: state, apply: apply}, name, shorthand, usage)
	flag.NoOptDefVal = "true"
}

func useLong(s *layoutState) {
	s.format = application.FormatLong
}

func useLongWithoutPlan(s *layoutState) {
	s.format = application.FormatLong
	s.personalFiles = false
}

func useShort(s *layoutState) {
	s.format = application.FormatShort
}
