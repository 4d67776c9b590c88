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
	"time"

	"github.com/jetsetilly/framepace/userinput"
)

// HoldTime is the time after the most recent report of a key before the key
// is released. It must be longer than the key repeat delay of the terminal.
const HoldTime = 600 * time.Millisecond

// Held tracks the keys that are currently held.
type Held struct {
	bridge *userinput.Bridge
	hold   time.Duration
	keys   map[string]heldKey
}

type heldKey struct {
	mod  userinput.KeyMod
	last time.Time
}

// NewHeld is the preferred method of initialisation for the Held type.
func NewHeld(bridge *userinput.Bridge, hold time.Duration) *Held {
	return &Held{
		bridge: bridge,
		hold:   hold,
		keys:   make(map[string]heldKey),
	}
}

// Press reports a key press. The first report of a key is forwarded to the
// bridge as a key down event.
func (h *Held) Press(k Key, now time.Time) {
	if k.Name == "" {
		return
	}
	if _, ok := h.keys[k.Name]; !ok {
		h.bridge.KeyEvent(userinput.EventKeyboard{Key: k.Name, Mod: k.Mod, Down: true})
	}
	h.keys[k.Name] = heldKey{mod: k.Mod, last: now}
}

// Expire releases the keys that have not been reported recently.
func (h *Held) Expire(now time.Time) {
	for n, k := range h.keys {
		if now.Sub(k.last) >= h.hold {
			h.bridge.KeyEvent(userinput.EventKeyboard{Key: n, Mod: k.mod, Down: false})
			delete(h.keys, n)
		}
	}
}

// ReleaseAll releases every held key.
func (h *Held) ReleaseAll() {
	for n, k := range h.keys {
		h.bridge.KeyEvent(userinput.EventKeyboard{Key: n, Mod: k.mod, Down: false})
		delete(h.keys, n)
	}
}

// Len returns the number of held keys.
func (h *Held) Len() int {
	return len(h.keys)
}
