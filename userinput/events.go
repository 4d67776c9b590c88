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

package userinput

import (
	"fmt"
	"strings"
)

// KeyMod is a mask of modifier keys.
type KeyMod uint16

// list of key modifiers.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
	KeyModGUI
	KeyModNum
	KeyModCaps

	// any modifier the host knows about that has no bit of its own
	KeyModOther
)

// modifiers that can be active without the key event being ignored
const allowedMods = KeyModNum | KeyModCaps

var modNames = []struct {
	mod  KeyMod
	name string
}{
	{KeyModShift, "shift"},
	{KeyModCtrl, "ctrl"},
	{KeyModAlt, "alt"},
	{KeyModGUI, "gui"},
	{KeyModNum, "num"},
	{KeyModCaps, "caps"},
	{KeyModOther, "other"},
}

// ParseKeyMod is the inverse of KeyMod.String(). Names are joined with '+'
// and an empty string is the same as "none".
func ParseKeyMod(s string) (KeyMod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return KeyModNone, nil
	}

	var m KeyMod
	for _, n := range strings.Split(s, "+") {
		n = strings.TrimSpace(n)
		found := false
		for _, k := range modNames {
			if k.name == n {
				m |= k.mod
				found = true
				break
			}
		}
		if !found {
			return KeyModNone, fmt.Errorf("userinput: unknown key modifier (%s)", n)
		}
	}
	return m, nil
}

func (m KeyMod) String() string {
	if m == KeyModNone {
		return "none"
	}

	s := make([]string, 0, len(modNames))
	for _, k := range modNames {
		if m&k.mod == k.mod {
			s = append(s, k.name)
		}
	}
	return strings.Join(s, "+")
}

// EventKeyboard is a key press or release.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

// NormaliseKey returns the key name in the form used for lookups.
func NormaliseKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
