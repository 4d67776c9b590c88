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
	"strconv"
	"strings"
)

// base addresses of EZFCht offsets
const (
	ezfchtEWRAM      = 0x02000000
	ezfchtIWRAM      = 0x03000000
	ezfchtIWRAMStart = 0x40000
)

// the section that describes the game rather than a cheat
const ezfchtGameInfo = "GameInfo"

func parseEZFCht(data []byte) ([]Set, error) {
	var sets []Set
	var current *Set
	var on *strings.Builder

	finish := func() error {
		if current == nil {
			return nil
		}
		if on != nil {
			codes, err := parseEZFChtCodes(on.String())
			if err != nil {
				return fmt.Errorf("[%s]: %w", current.Description, err)
			}
			current.Codes = codes
		}
		if len(current.Codes) > 0 {
			sets = append(sets, *current)
		}
		current = nil
		on = nil
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}

		if strings.HasPrefix(l, "[") && strings.HasSuffix(l, "]") {
			if err := finish(); err != nil {
				return nil, err
			}
			name := l[1 : len(l)-1]
			if name != ezfchtGameInfo {
				current = &Set{Description: name, Enabled: true}
			}
			continue
		}

		if current == nil {
			continue
		}

		k, v, ok := strings.Cut(l, "=")
		if ok {
			if strings.TrimSpace(k) == "ON" {
				on = &strings.Builder{}
				on.WriteString(v)
			} else {
				on = nil
			}
		} else if on != nil {
			// continuation of a long ON value
			on.WriteString(l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := finish(); err != nil {
		return nil, err
	}

	return sets, nil
}

func parseEZFChtCodes(s string) ([]Code, error) {
	var codes []Code

	for _, group := range strings.Split(s, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		f := strings.Split(group, ",")
		if len(f) < 2 {
			return nil, fmt.Errorf("malformed group (%s)", group)
		}

		offset, err := strconv.ParseUint(strings.TrimSpace(f[0]), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed offset (%s)", f[0])
		}

		address := uint32(ezfchtEWRAM + offset)
		if offset >= ezfchtIWRAMStart {
			address = uint32(ezfchtIWRAM + offset - ezfchtIWRAMStart)
		}

		for i, v := range f[1:] {
			value, err := strconv.ParseUint(strings.TrimSpace(v), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("malformed value (%s)", v)
			}
			codes = append(codes, Code{Address: address + uint32(i), Value: uint8(value)})
		}
	}

	return codes, nil
}
