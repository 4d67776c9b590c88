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

// InputMap maps a normalised key name to a button number. Each key is bound
// to at most one button but a button can have more than one key.
type InputMap map[string]int

// NewInputMap creates an InputMap from a map of key names to button numbers.
// Key names are normalised.
func NewInputMap(defaults map[string]int) InputMap {
	m := make(InputMap, len(defaults))
	for k, b := range defaults {
		m.Bind(k, b)
	}
	return m
}

// Bind key to button. Any existing binding for the key is replaced.
func (m InputMap) Bind(key string, button int) {
	m[NormaliseKey(key)] = button
}

// Lookup the button bound to the key.
func (m InputMap) Lookup(key string) (int, bool) {
	b, ok := m[NormaliseKey(key)]
	return b, ok
}

// Keys returns the keys bound to the button.
func (m InputMap) Keys(button int) []string {
	var keys []string
	for k, b := range m {
		if b == button {
			keys = append(keys, k)
		}
	}
	return keys
}
