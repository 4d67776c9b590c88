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

package sdlplay

import (
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// keys that are never forwarded to the emulation. these keys are used to
// move focus between elements of the host's user interface
var filteredKeys = map[string]bool{
	"tab":   true,
	"space": true,
}

// the events affected by SetEventCapture()
var captureEvents = []uint32{
	sdl.TEXTINPUT,
	sdl.KEYDOWN,
	sdl.KEYUP,
	sdl.MOUSEMOTION,
	sdl.MOUSEBUTTONDOWN,
	sdl.MOUSEBUTTONUP,
}

// SetEventCapture implements the commands.EventCapture interface.
func (scr *SdlPlay) SetEventCapture(enabled bool) {
	state := sdl.DISABLE
	if enabled {
		state = sdl.ENABLE
	}
	for _, e := range captureEvents {
		sdl.EventState(e, state)
	}

	scr.capture = enabled
	logger.Logf(scr.env, logTag, "event capture: %v", enabled)
}

// ResolveKey implements the userinput.KeyResolver interface.
func (scr *SdlPlay) ResolveKey(name string) (string, bool) {
	code := sdl.GetKeyFromName(name)
	if code == sdl.K_UNKNOWN {
		return "", false
	}
	return userinput.NormaliseKey(sdl.GetKeyName(code)), true
}

// SDL modifiers with a userinput equivalent. AltGr (KMOD_MODE), scroll lock
// and anything else map to KeyModOther
const knownMods = sdl.KMOD_SHIFT | sdl.KMOD_CTRL | sdl.KMOD_ALT | sdl.KMOD_GUI | sdl.KMOD_NUM | sdl.KMOD_CAPS

func keyMod(mod uint16) userinput.KeyMod {
	m := uint32(mod)
	var km userinput.KeyMod
	if m&uint32(sdl.KMOD_SHIFT) != 0 {
		km |= userinput.KeyModShift
	}
	if m&uint32(sdl.KMOD_CTRL) != 0 {
		km |= userinput.KeyModCtrl
	}
	if m&uint32(sdl.KMOD_ALT) != 0 {
		km |= userinput.KeyModAlt
	}
	if m&uint32(sdl.KMOD_GUI) != 0 {
		km |= userinput.KeyModGUI
	}
	if m&uint32(sdl.KMOD_NUM) != 0 {
		km |= userinput.KeyModNum
	}
	if m&uint32(sdl.KMOD_CAPS) != 0 {
		km |= userinput.KeyModCaps
	}
	if m&^uint32(knownMods) != 0 {
		km |= userinput.KeyModOther
	}
	return km
}

// Service implements the driver.Host interface. All pending SDL events are
// handled. Returns false if the window has been closed.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			logger.Log(scr.env, logTag, "window closed")
			return false

		case *sdl.KeyboardEvent:
			if !scr.capture || scr.bridge == nil || ev.Repeat != 0 {
				continue
			}

			key := userinput.NormaliseKey(sdl.GetKeyName(ev.Keysym.Sym))
			if filteredKeys[key] {
				continue
			}

			scr.bridge.KeyEvent(userinput.EventKeyboard{
				Key:  key,
				Mod:  keyMod(ev.Keysym.Mod),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	return true
}
