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

package terminal

import (
	"github.com/jetsetilly/framepace/userinput"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3
	keyEOF            = 4
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII codes that can follow keyEsc
const (
	escCursor = '['
	escSS3    = 'O'
)

// Key is a single key press decoded from terminal input.
type Key struct {
	Name string
	Mod  userinput.KeyMod

	// the interrupt or end-of-file key has been pressed
	Quit bool
}

var cursorKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// Decode converts raw terminal input into key presses. Unrecognised escape
// sequences are discarded.
func Decode(b []byte) []Key {
	var keys []Key

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyInterrupt || c == keyEOF:
			keys = append(keys, Key{Quit: true})

		case c == keyEsc:
			if i+2 < len(b) && (b[i+1] == escCursor || b[i+1] == escSS3) {
				if n, ok := cursorKeys[b[i+2]]; ok {
					keys = append(keys, Key{Name: n})
				}
				i += 2
			} else if i+1 == len(b) {
				keys = append(keys, Key{Name: "escape"})
			} else {
				// unknown sequence. skip the rest of the input
				return keys
			}

		case c == keyCarriageReturn || c == keyLineFeed:
			keys = append(keys, Key{Name: "return"})

		case c == keyBackspace || c == keyDelete:
			keys = append(keys, Key{Name: "backspace"})

		case c == keyTab:
			keys = append(keys, Key{Name: "tab"})

		case c == ' ':
			keys = append(keys, Key{Name: "space"})

		case c >= 'A' && c <= 'Z':
			keys = append(keys, Key{Name: string(c + ('a' - 'A')), Mod: userinput.KeyModShift})

		case c > ' ' && c < keyDelete:
			keys = append(keys, Key{Name: string(c)})

		case c < ' ':
			// control characters are the letter keys with the control
			// modifier
			keys = append(keys, Key{Name: string(c + 'a' - 1), Mod: userinput.KeyModCtrl})
		}
	}

	return keys
}
