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

package cheats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parse a code of the form AAAAAAAA:VV. a space can be used instead of the
// colon
func parseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)

	a, v, ok := strings.Cut(s, ":")
	if !ok {
		a, v, ok = strings.Cut(s, " ")
	}
	if !ok {
		return Code{}, fmt.Errorf("malformed code (%s)", s)
	}

	address, err := strconv.ParseUint(strings.TrimSpace(a), 16, 32)
	if err != nil {
		return Code{}, fmt.Errorf("malformed address (%s)", s)
	}

	value, err := strconv.ParseUint(strings.TrimSpace(v), 16, 8)
	if err != nil {
		return Code{}, fmt.Errorf("malformed value (%s)", s)
	}

	return Code{Address: uint32(address), Value: uint8(value)}, nil
}

func parseNative(data []byte) ([]Set, error) {
	var sets []Set

	// codes before the first description belong to a set with no description
	current := func() *Set {
		if len(sets) == 0 {
			sets = append(sets, Set{Enabled: true})
		}
		return &sets[len(sets)-1]
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for ln := 1; scanner.Scan(); ln++ {
		l := strings.TrimSpace(scanner.Text())

		switch {
		case l == "":
		case strings.HasPrefix(l, "#"):
			sets = append(sets, Set{
				Description: strings.TrimSpace(l[1:]),
				Enabled:     true,
			})
		case l == "!enabled":
			current().Enabled = true
		case l == "!disabled":
			current().Enabled = false
		case strings.HasPrefix(l, "!"):
			// unknown directives are ignored
		default:
			c, err := parseCode(l)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			s := current()
			s.Codes = append(s.Codes, c)
		}
	}

	return sets, scanner.Err()
}

// WriteNative writes the sets in the native dialect.
func WriteNative(w io.Writer, sets []Set) error {
	b := bufio.NewWriter(w)
	for _, s := range sets {
		fmt.Fprintf(b, "# %s\n", s.Description)
		if s.Enabled {
			fmt.Fprintln(b, "!enabled")
		} else {
			fmt.Fprintln(b, "!disabled")
		}
		for _, c := range s.Codes {
			fmt.Fprintln(b, c.String())
		}
	}
	return b.Flush()
}
