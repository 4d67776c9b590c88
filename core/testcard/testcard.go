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

package testcard

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
)

// geometry of the display
const (
	Width  = 240
	Height = 160
)

// memory map
const (
	RAMOrigin = 0x02000000
	RAMSize   = 0x10000

	// battery backed save data is the first part of RAM
	SaveDataSize = 512

	// position of marker
	MarkerX = RAMOrigin + 0x200
	MarkerY = RAMOrigin + 0x201

	// little-endian copy of the frame counter, written every frame
	FrameCounter = RAMOrigin + 0x210

	// writing CrashValue to this address crashes the machine
	CrashTrigger = RAMOrigin + 0x2ff
	CrashValue   = 0xcc

	// content data after the magic bytes is copied here on reset
	ProgramOrigin = RAMOrigin + 0x400
)

// AlarmPeriod is the number of frames between alarms
const AlarmPeriod = 3600

// button bits
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
)

var buttons = []string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN", "R", "L"}

var defaultKeys = map[string]int{
	"x":         ButtonA,
	"z":         ButtonB,
	"backspace": ButtonSelect,
	"return":    ButtonStart,
	"right":     ButtonRight,
	"left":      ButtonLeft,
	"up":        ButtonUp,
	"down":      ButtonDown,
	"s":         ButtonR,
	"a":         ButtonL,
}

// audio
const (
	toneFreq      = 440.0
	toneAmplitude = 0x2000
)

// SamplesPerFrame is the number of stereo sample pairs produced per frame.
const SamplesPerFrame = audio.SampleFreq / 60

const logTag = "testcard"

// Testcard is an implementation of the core.Core interface.
type Testcard struct {
	env *environment.Environment

	program []byte

	ram     [RAMSize]byte
	frame   uint32
	keys    uint32
	prevKey uint32
	crashed bool

	// rendering is skipped for frameskip frames out of every frameskip+1
	frameskip int
	skipCt    int

	pix    []byte
	stride int

	out    audio.Output
	volume float64
	phase  float64
	buffer []int16

	cb core.Callbacks
}

// NewTestcard is the preferred method of initialisation for the Testcard
// type. The content data may begin with the Magic bytes. The remainder of the
// data is the program, which is copied into RAM on reset.
func NewTestcard(env *environment.Environment, data []byte) *Testcard {
	tc := &Testcard{
		env:    env,
		volume: 1.0,
		buffer: make([]int16, SamplesPerFrame*audio.Channels),
	}

	data = bytes.TrimPrefix(data, Magic)
	n := min(len(data), RAMSize-(ProgramOrigin-RAMOrigin))
	tc.program = append([]byte{}, data[:n]...)

	tc.Reset()

	return tc
}

// ID implements the core.Core interface.
func (tc *Testcard) ID() string {
	return ID
}

// Deinit implements the core.Core interface.
func (tc *Testcard) Deinit() {
	tc.pix = nil
	tc.out = nil
	tc.cb = core.Callbacks{}
}

// BaseVideoSize implements the core.Core interface.
func (tc *Testcard) BaseVideoSize() (int, int) {
	return Width, Height
}

// SetVideoBuffer implements the core.Core interface.
func (tc *Testcard) SetVideoBuffer(pix []byte, stride int) {
	tc.pix = pix
	tc.stride = stride
}

// SetAudioOutput implements the core.Core interface.
func (tc *Testcard) SetAudioOutput(out audio.Output) {
	tc.out = out
}

// Reset implements the core.Core interface.
func (tc *Testcard) Reset() {
	clear(tc.ram[SaveDataSize:])
	copy(tc.ram[ProgramOrigin-RAMOrigin:], tc.program)
	tc.ram[MarkerX-RAMOrigin] = Width / 2
	tc.ram[MarkerY-RAMOrigin] = Height / 2
	tc.frame = 0
	tc.keys = 0
	tc.prevKey = 0
	tc.crashed = false
	tc.skipCt = 0
	tc.phase = 0
}

// Frame returns the number of frames since the last reset.
func (tc *Testcard) Frame() uint32 {
	return tc.frame
}

// RunFrame implements the core.Core interface.
func (tc *Testcard) RunFrame() {
	if tc.crashed {
		return
	}

	if tc.cb.VideoFrameStarted != nil {
		tc.cb.VideoFrameStarted()
	}

	tc.input()

	if tc.ram[CrashTrigger-RAMOrigin] == CrashValue {
		tc.crashed = true
		logger.Logf(tc.env, logTag, "crashed on frame %d", tc.frame)
		if tc.cb.Crashed != nil {
			tc.cb.Crashed()
		}
		return
	}

	tc.frame++
	binary.LittleEndian.PutUint32(tc.ram[FrameCounter-RAMOrigin:], tc.frame)

	if tc.frame%AlarmPeriod == 0 && tc.cb.Alarm != nil {
		tc.cb.Alarm()
	}

	if tc.skipCt == 0 {
		tc.render()
	}
	tc.skipCt++
	if tc.skipCt > tc.frameskip {
		tc.skipCt = 0
	}

	tc.tone()

	if tc.cb.VideoFrameEnded != nil {
		tc.cb.VideoFrameEnded()
	}
}

func (tc *Testcard) input() {
	if tc.cb.KeysRead != nil {
		tc.cb.KeysRead()
	}

	pressed := func(b int) bool {
		return tc.keys&(1<<b) != 0
	}

	x := &tc.ram[MarkerX-RAMOrigin]
	y := &tc.ram[MarkerY-RAMOrigin]
	if pressed(ButtonRight) && *x < Width-1 {
		*x++
	}
	if pressed(ButtonLeft) && *x > 0 {
		*x--
	}
	if pressed(ButtonDown) && *y < Height-1 {
		*y++
	}
	if pressed(ButtonUp) && *y > 0 {
		*y--
	}

	// save data is written on the leading edge of the START button
	if pressed(ButtonStart) && tc.prevKey&(1<<ButtonStart) == 0 {
		binary.LittleEndian.PutUint32(tc.ram[0:], tc.frame)
		tc.ram[4] = *x
		tc.ram[5] = *y
		if tc.cb.SaveDataUpdated != nil {
			tc.cb.SaveDataUpdated()
		}
	}

	tc.prevKey = tc.keys
}

// colour bars in ABGR8888 memory order
var bars = [][4]byte{
	{0xc0, 0xc0, 0xc0, 0xff},
	{0xc0, 0xc0, 0x00, 0xff},
	{0x00, 0xc0, 0xc0, 0xff},
	{0x00, 0xc0, 0x00, 0xff},
	{0xc0, 0x00, 0xc0, 0xff},
	{0xc0, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xc0, 0xff},
	{0x00, 0x00, 0x00, 0xff},
}

const markerSize = 8

func (tc *Testcard) render() {
	if tc.pix == nil {
		return
	}

	mx := int(tc.ram[MarkerX-RAMOrigin])
	my := int(tc.ram[MarkerY-RAMOrigin])

	for y := range Height {
		row := tc.pix[y*tc.stride*4:]
		for x := range Width {
			c := bars[x*len(bars)/Width]

			// the bottom row shows the frame counter in binary
			if y == Height-1 {
				if x < 32 && tc.frame&(1<<x) != 0 {
					c = [4]byte{0xff, 0xff, 0xff, 0xff}
				} else {
					c = [4]byte{0x00, 0x00, 0x00, 0xff}
				}
			}

			if x >= mx && x < mx+markerSize && y >= my && y < my+markerSize {
				c = [4]byte{0xff, 0xff, 0xff, 0xff}
			}

			copy(row[x*4:], c[:])
		}
	}
}

func (tc *Testcard) tone() {
	if tc.out == nil {
		return
	}

	step := 2 * math.Pi * toneFreq / audio.SampleFreq
	for i := 0; i < len(tc.buffer); i += audio.Channels {
		v := int16(math.Sin(tc.phase) * toneAmplitude * tc.volume)
		tc.buffer[i] = v
		tc.buffer[i+1] = v
		tc.phase += step
		if tc.phase > 2*math.Pi {
			tc.phase -= 2 * math.Pi
		}
	}

	err := tc.out.SetAudio(tc.buffer)
	if err != nil {
		logger.Log(tc.env, logTag, err)
	}
}

// AddKeys implements the core.Core interface.
func (tc *Testcard) AddKeys(mask uint32) {
	tc.keys |= mask
}

// ClearKeys implements the core.Core interface.
func (tc *Testcard) ClearKeys(mask uint32) {
	tc.keys &^= mask
}

// Keys implements the core.Core interface.
func (tc *Testcard) Keys() uint32 {
	return tc.keys
}

// SetCallbacks implements the core.Core interface.
func (tc *Testcard) SetCallbacks(cb core.Callbacks) {
	tc.cb = cb
}

// Read8 implements the core.Memory interface.
func (tc *Testcard) Read8(address uint32) uint8 {
	if address < RAMOrigin || address >= RAMOrigin+RAMSize {
		return 0
	}
	return tc.ram[address-RAMOrigin]
}

// Write8 implements the core.Memory interface.
func (tc *Testcard) Write8(address uint32, data uint8) {
	if address < RAMOrigin || address >= RAMOrigin+RAMSize {
		return
	}
	tc.ram[address-RAMOrigin] = data
}

type state struct {
	RAM     []byte `cbor:"ram"`
	Frame   uint32 `cbor:"frame"`
	Keys    uint32 `cbor:"keys"`
	PrevKey uint32 `cbor:"prevKey"`
	Crashed bool   `cbor:"crashed"`
}

// SaveState implements the core.Core interface.
func (tc *Testcard) SaveState() ([]byte, error) {
	s := state{
		RAM:     tc.ram[:],
		Frame:   tc.frame,
		Keys:    tc.keys,
		PrevKey: tc.prevKey,
		Crashed: tc.crashed,
	}
	return cbor.Marshal(s)
}

// LoadState implements the core.Core interface.
func (tc *Testcard) LoadState(data []byte) error {
	var s state
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("testcard: %w", err)
	}
	if len(s.RAM) != RAMSize {
		return fmt.Errorf("testcard: state has wrong RAM size (%d)", len(s.RAM))
	}

	copy(tc.ram[:], s.RAM)
	tc.frame = s.Frame
	tc.keys = s.Keys
	tc.prevKey = s.PrevKey
	tc.crashed = s.Crashed

	return nil
}

// AudioState implements the core.Core interface.
func (tc *Testcard) AudioState() ([]byte, error) {
	return cbor.Marshal(tc.phase)
}

// LoadAudioState implements the core.Core interface.
func (tc *Testcard) LoadAudioState(data []byte) error {
	var phase float64
	if err := cbor.Unmarshal(data, &phase); err != nil {
		return fmt.Errorf("testcard: %w", err)
	}
	tc.phase = phase
	return nil
}

// SaveData implements the core.Core interface.
func (tc *Testcard) SaveData() []byte {
	return append([]byte{}, tc.ram[:SaveDataSize]...)
}

// LoadSaveData implements the core.Core interface.
func (tc *Testcard) LoadSaveData(data []byte) error {
	if len(data) > SaveDataSize {
		return fmt.Errorf("testcard: save data too large (%d bytes)", len(data))
	}
	copy(tc.ram[:], data)
	return nil
}

// ReloadConfigOption implements the core.Core interface.
func (tc *Testcard) ReloadConfigOption(option string, cfg *core.Config) {
	switch option {
	case core.OptionVolume:
		tc.volume = cfg.VolumeLevel()
	case core.OptionFrameskip:
		tc.frameskip = cfg.Frameskip.Get().(int)
		tc.skipCt = 0
	case core.OptionIdleOptimization:
		// the testcard never idles
	}
	logger.Logf(tc.env, logTag, "%s: %s", option, optionValue(option, cfg))
}

func optionValue(option string, cfg *core.Config) string {
	switch option {
	case core.OptionVolume:
		return cfg.Volume.String()
	case core.OptionFrameskip:
		return cfg.Frameskip.String()
	case core.OptionIdleOptimization:
		return cfg.IdleOptimization.String()
	}
	return ""
}

// Volume returns the current volume level as a fraction of full volume.
func (tc *Testcard) Volume() float64 {
	return tc.volume
}

// InputInfo implements the core.Core interface.
func (tc *Testcard) InputInfo() core.InputInfo {
	keys := make(map[string]int, len(defaultKeys))
	for k, v := range defaultKeys {
		keys[k] = v
	}
	return core.InputInfo{
		Buttons:     buttons,
		DefaultKeys: keys,
	}
}
