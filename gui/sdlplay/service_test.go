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
	"testing"

	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyMod(t *testing.T) {
	test.ExpectEquality(t, keyMod(sdl.KMOD_NONE), userinput.KeyModNone)
	test.ExpectEquality(t, keyMod(sdl.KMOD_LSHIFT|sdl.KMOD_NUM), userinput.KeyModShift|userinput.KeyModNum)
	test.ExpectEquality(t, keyMod(sdl.KMOD_RCTRL|sdl.KMOD_CAPS), userinput.KeyModCtrl|userinput.KeyModCaps)

	// AltGr has no equivalent but is still a modifier
	test.ExpectEquality(t, keyMod(sdl.KMOD_MODE), userinput.KeyModOther)
	test.ExpectEquality(t, keyMod(sdl.KMOD_MODE|sdl.KMOD_CAPS), userinput.KeyModOther|userinput.KeyModCaps)
}

func TestEventCapture(t *testing.T) {
	if err := sdl.Init(sdl.INIT_EVENTS); err != nil {
		t.Skipf("sdl events unavailable: %v", err)
	}
	defer sdl.Quit()

	scr := &SdlPlay{}

	scr.SetEventCapture(false)
	for _, e := range captureEvents {
		test.ExpectEquality(t, sdl.EventState(e, sdl.QUERY), uint8(sdl.DISABLE), e)
	}

	scr.SetEventCapture(true)
	for _, e := range captureEvents {
		test.ExpectEquality(t, sdl.EventState(e, sdl.QUERY), uint8(sdl.ENABLE), e)
	}
	test.ExpectSuccess(t, scr.capture)
}
