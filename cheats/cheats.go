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
	"strings"
)

// Dialect of a cheats file.
type Dialect int

// List of supported dialects.
const (
	DialectNative Dialect = iota
	DialectLibretro
	DialectEZFCht
)

func (d Dialect) String() string {
	switch d {
	case DialectNative:
		return "native"
	case DialectLibretro:
		return "libretro"
	case DialectEZFCht:
		return "EZFCht"
	}
	return "unknown"
}

// Code writes a single byte to an address.
type Code struct {
	Address uint32
	Value   uint8
}

func (c Code) String() string {
	return fmt.Sprintf("%08X:%02X", c.Address, c.Value)
}

// Set is a list of codes that are enabled and disabled together.
type Set struct {
	Description string
	Enabled     bool
	Codes       []Code
}

// Detect the dialect of the cheats file from its first non-blank line.
//
// A first line beginning with "cheats =" is the libretro dialect. A first line
// beginning with '[' is the EZFCht dialect. Anything else is the native
// dialect.
func Detect(data []byte) Dialect {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}

		if k, _, ok := strings.Cut(l, "="); ok && strings.TrimSpace(k) == "cheats" {
			return DialectLibretro
		}
		if strings.HasPrefix(l, "[") {
			return DialectEZFCht
		}
		break
	}
	return DialectNative
}

// Parse the cheats file. The dialect is detected automatically.
func Parse(r io.Reader) ([]Set, Dialect, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, DialectNative, fmt.Errorf("cheats: %w", err)
	}

	d := Detect(data)

	var sets []Set
	switch d {
	case DialectLibretro:
		sets, err = parseLibretro(data)
	case DialectEZFCht:
		sets, err = parseEZFCht(data)
	default:
		sets, err = parseNative(data)
	}
	if err != nil {
		return nil, d, fmt.Errorf("cheats: %s: %w", d, err)
	}

	return sets, d, nil
}
