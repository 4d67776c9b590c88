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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// CommandLineSeparator divides key and value in a command line preferences
// string. Pairs are divided by a semi-colon:
//
//	audio.volume::0.5; logging::true
const CommandLineSeparator = "::"

// groups of values given on the command line. the top of the stack is
// consulted by Disk.Load()
var commandLineStack []map[string]string

// ParseCommandLine divides a preferences string into key/value pairs. Empty
// pairs are ignored but a pair without a separator or without a key is an
// error.
func ParseCommandLine(prefs string) (map[string]string, error) {
	cl := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		k, v, ok := strings.Cut(p, CommandLineSeparator)
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("prefs: malformed command line preference (%s)", p)
		}
		cl[k] = strings.TrimSpace(v)
	}

	return cl, nil
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Nothing is pushed if the string is malformed.
func PushCommandLineStack(prefs string) error {
	cl, err := ParseCommandLine(prefs)
	if err != nil {
		return err
	}
	commandLineStack = append(commandLineStack, cl)
	return nil
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PopCommandLineStack forgets the most recent group. Returns the sorted keys
// of the group that were never retrieved with GetCommandLinePref().
func PopCommandLineStack() []string {
	if len(commandLineStack) == 0 {
		return nil
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	unused := make([]string, 0, len(popped))
	for k := range popped {
		unused = append(unused, k)
	}
	sort.Strings(unused)

	return unused
}

// GetCommandLinePref returns the value for key in the current group. The value
// is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	v, ok := cl[key]
	if ok {
		delete(cl, key)
	}
	return ok, v
}
