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
	"github.com/jetsetilly/framepace/pacing"
)

// FastForwardKey is the key that fast-forwards the emulation while it is held.
const FastForwardKey = "f"

// Target receives button changes from the Bridge.
type Target interface {
	AddKeys(mask uint32)
	ClearKeys(mask uint32)

	// the binding table of the loaded session. nil if no session is loaded
	InputMap() InputMap
}

// KeyResolver converts a binding name into the key name used by the host. The
// host decides what names it accepts.
type KeyResolver interface {
	ResolveKey(name string) (string, bool)
}

// NameResolver is the simplest KeyResolver. Every name is accepted as is.
type NameResolver struct{}

// ResolveKey implements the KeyResolver interface.
func (NameResolver) ResolveKey(name string) (string, bool) {
	k := NormaliseKey(name)
	return k, k != ""
}

// Bridge translates key events into button changes and fast-forward
// changes.
type Bridge struct {
	fastForward *pacing.FastForward
	target      Target
	resolver    KeyResolver
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(target Target, ff *pacing.FastForward) *Bridge {
	return &Bridge{
		fastForward: ff,
		target:      target,
		resolver:    NameResolver{},
	}
}

// SetResolver changes how binding names are resolved. A nil value reverts to
// the NameResolver.
func (b *Bridge) SetResolver(r KeyResolver) {
	if r == nil {
		r = NameResolver{}
	}
	b.resolver = r
}

// KeyEvent handles a key event from the host. Returns true if the event
// changed the fast-forward state or a button.
func (b *Bridge) KeyEvent(ev EventKeyboard) bool {
	if ev.Mod&^allowedMods != 0 {
		return false
	}

	key := NormaliseKey(ev.Key)

	if key == FastForwardKey {
		b.fastForward.Hold(ev.Down)
		return true
	}

	button, ok := b.target.InputMap().Lookup(key)
	if !ok || button < 0 || button > 31 {
		return false
	}

	if ev.Down {
		b.target.AddKeys(1 << button)
	} else {
		b.target.ClearKeys(1 << button)
	}

	return true
}

// BindKey binds the host key resolved from name to the button. Returns false
// if there is no session or the name cannot be resolved.
func (b *Bridge) BindKey(name string, button int) bool {
	m := b.target.InputMap()
	if m == nil {
		return false
	}

	key, ok := b.resolver.ResolveKey(name)
	if !ok {
		return false
	}

	m.Bind(key, button)
	return true
}
