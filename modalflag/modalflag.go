// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes is the argument list and the modes found in it so far.
type Modes struct {
	// where to print help messages
	output io.Writer

	// the flags of the current mode. a new flagset is created on every call
	// to NewMode()
	flags *flag.FlagSet

	// arguments that have not been consumed by a previous mode
	args []string

	// arguments left after the most recent call to Parse()
	remaining []string

	// sub-modes of the current mode. the first is the default
	subModes []subMode

	// series of modes selected by successive calls to Parse()
	path []string

	additionalHelp string
	parsed         bool
}

type subMode struct {
	name string
	help string
}

// NewModes is the preferred method of initialisation for the Modes type. A
// nil output discards help messages.
func NewModes(output io.Writer, args []string) *Modes {
	if output == nil {
		output = io.Discard
	}
	md := &Modes{
		output: output,
		args:   args,
	}
	md.NewMode()
	return md
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewMode indicates that further arguments should be considered part of a new
// mode. Flags and sub-modes of the previous mode are forgotten.
func (md *Modes) NewMode() {
	if md.parsed {
		md.args = md.remaining
	}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.parsed = false
}

// AddSubMode adds a sub-mode for the next call to Parse(). The first sub-mode
// added is the default.
func (md *Modes) AddSubMode(name string, help string) {
	md.subModes = append(md.subModes, subMode{
		name: strings.ToUpper(name),
		help: help,
	})
}

// AdditionalHelp is printed after the flags and sub-modes in the help
// message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// the selected mode is returned by Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments of the current mode.
//
// If sub-modes have been added then parsing stops at the first flag that is
// not recognised. The default sub-mode is selected and the flag is left for
// the sub-mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	args := md.args
	var rest []string
	if len(md.subModes) > 0 {
		args, rest = md.split()
	}

	err := md.flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.remaining = slices.Concat(md.flags.Args(), rest)

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0].name
	if len(md.remaining) > 0 {
		arg := strings.ToUpper(md.remaining[0])
		for _, m := range md.subModes {
			if m.name == arg {
				mode = m.name
				md.remaining = md.remaining[1:]
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// split the arguments at the first flag that is not recognised
func (md *Modes) split() ([]string, []string) {
	for i := 0; i < len(md.args); i++ {
		a := md.args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			break // for loop
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name == "help" || name == "h" {
			continue // for loop
		}

		f := md.flags.Lookup(name)
		if f == nil {
			return md.args[:i], md.args[i:]
		}

		// skip the value of a non-boolean flag
		b, ok := f.Value.(interface{ IsBoolFlag() bool })
		if !hasValue && !(ok && b.IsBoolFlag()) {
			i++
		}
	}
	return md.args, nil
}

// RemainingArgs returns the arguments after a call to Parse() that are not
// flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the numbered argument that isn't a flag or sub-mode. Returns
// the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
