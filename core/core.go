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

package core

import (
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/environment"
)

// Callbacks are called by the machine when something of interest happens. Any
// of the slots can be nil. The set of callbacks is always replaced as a whole
// and is never merged with a previous set.
type Callbacks struct {
	// an alarm has been raised by the machine (eg. a real-time clock alarm)
	Alarm func()

	// the machine has entered a state from which it cannot continue
	Crashed func()

	// the machine has read the state of the input buttons
	KeysRead func()

	// battery backed save data has changed
	SaveDataUpdated func()

	VideoFrameEnded   func()
	VideoFrameStarted func()
}

// InputInfo describes the buttons of the machine. The index of a button name
// in the Buttons slice is the bit number used in the key mask.
type InputInfo struct {
	Buttons []string

	// default key bindings. key symbols mapped to button number
	DefaultKeys map[string]int
}

// ButtonIndex returns the bit number of the named button. Returns -1 if the
// button does not exist.
func (info InputInfo) ButtonIndex(name string) int {
	for i, b := range info.Buttons {
		if b == name {
			return i
		}
	}
	return -1
}

// Memory is implemented by machines that allow their memory to be patched.
type Memory interface {
	Read8(address uint32) uint8
	Write8(address uint32, data uint8)
}

// Core is the interface to a loaded machine.
type Core interface {
	Memory

	// the ID of the factory that created the machine
	ID() string

	// release any resources held by the machine. the machine cannot be used
	// after a call to Deinit()
	Deinit()

	// the native resolution of the machine
	BaseVideoSize() (width int, height int)

	// the machine renders into the pixel slice. stride is in pixels. the
	// pixel format is always video.PixelFormatABGR8888
	SetVideoBuffer(pix []byte, stride int)

	// audio produced by the machine is sent to the output
	SetAudioOutput(out audio.Output)

	// reinitialise the machine to its entry point. battery backed save data
	// survives a reset
	Reset()

	// advance the machine by one frame
	RunFrame()

	// set or clear bits in the mask of pressed buttons
	AddKeys(mask uint32)
	ClearKeys(mask uint32)
	Keys() uint32

	SetCallbacks(cb Callbacks)

	// serialise and restore the state of the machine. this does not include
	// audio state or save data
	SaveState() ([]byte, error)
	LoadState(data []byte) error

	// serialise and restore the state of the audio generator
	AudioState() ([]byte, error)
	LoadAudioState(data []byte) error

	// battery backed save data. a machine without save data returns nil
	SaveData() []byte
	LoadSaveData(data []byte) error

	// the value of the option in the configuration has changed
	ReloadConfigOption(option string, cfg *Config)

	InputInfo() InputInfo
}

// Factory creates a machine for the content it recognises.
type Factory interface {
	ID() string

	// whether the factory can create a machine for the content. the content
	// has been loaded when Recognise() is called
	Recognise(cl contentloader.Loader) bool

	Create(env *environment.Environment, cl contentloader.Loader) (Core, error)
}
