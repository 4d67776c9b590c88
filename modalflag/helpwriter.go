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
	"fmt"
	"io"
	"strings"
)

// help prints the help message for the current mode
func (md *Modes) help() {
	var flags strings.Builder
	md.flags.SetOutput(&flags)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if flags.Len() == 0 && len(md.subModes) == 0 {
		if md.Path() == "" {
			fmt.Fprintln(md.output, "No help available")
		} else {
			fmt.Fprintf(md.output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.output, "Usage:")
	} else {
		fmt.Fprintf(md.output, "Usage of %s mode:\n", md.Path())
	}

	fmt.Fprint(md.output, flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			fmt.Fprintln(md.output)
		}

		w := 0
		for _, m := range md.subModes {
			w = max(w, len(m.name))
		}

		fmt.Fprintln(md.output, "  sub-modes:")
		for i, m := range md.subModes {
			s := fmt.Sprintf("    %-*s  %s", w, m.name, m.help)
			if i == 0 {
				s = fmt.Sprintf("%s (default)", strings.TrimRight(s, " "))
			}
			fmt.Fprintln(md.output, strings.TrimRight(s, " "))
		}
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.output, "\n%s\n", md.additionalHelp)
	}
}
