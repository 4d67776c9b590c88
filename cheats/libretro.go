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

func parseLibretro(data []byte) ([]Set, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"`)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(values["cheats"])
	if err != nil {
		return nil, fmt.Errorf("malformed cheat count (%s)", values["cheats"])
	}
	if n < 0 || n > len(values) {
		return nil, fmt.Errorf("cheat count out of range (%d)", n)
	}

	var sets []Set
	for i := range n {
		key := func(s string) string {
			return fmt.Sprintf("cheat%d_%s", i, s)
		}

		code, ok := values[key("code")]
		if !ok {
			return nil, fmt.Errorf("missing %s", key("code"))
		}

		s := Set{
			Description: values[key("desc")],
			Enabled:     strings.ToLower(values[key("enable")]) == "true",
		}

		for _, c := range strings.Split(code, "+") {
			if strings.TrimSpace(c) == "" {
				continue
			}
			cd, err := parseCode(c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key("code"), err)
			}
			s.Codes = append(s.Codes, cd)
		}

		sets = append(sets, s)
	}

	return sets, nil
}
