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

package pcmplayer

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
)

const logTag = "pcmplayer"

// geometry of the level meter display
const (
	Width  = 256
	Height = 64
)

// SamplesPerFrame is the number of stereo sample pairs played per frame.
const SamplesPerFrame = audio.SampleFreq / 60

// button bits
const (
	ButtonPlay = iota
	ButtonRestart
)

var buttons = []string{"PLAY", "RESTART"}

var defaultKeys = map[string]int{
	"p": ButtonPlay,
	"r": ButtonRestart,
}

// registers visible through the core.Memory interface
const (
	// non-zero while playing. writing zero pauses playback
	RegPlaying = 0x00

	// little-endian playback position in sample pairs. read only
	RegPosition = 0x04

	registersSize = 0x10
)

// Player is an implementation of the core.Core interface.
type Player struct {
	env *environment.Environment
	pcm PCM

	pos     int
	frame   uint32
	keys    uint32
	prevKey uint32
	playing bool

	frameskip int
	skipCt    int

	pix    []byte
	stride int

	out    audio.Output
	volume float64
	buffer []int16

	// peak levels of the most recent frame in the range 0.0 to 1.0
	peak [audio.Channels]float64

	cb core.Callbacks
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(env *environment.Environment, pcm PCM) *Player {
	return &Player{
		env:    env,
		pcm:    pcm,
		volume: 1.0,
		buffer: make([]int16, 0, SamplesPerFrame*audio.Channels),
	}
}

// ID implements the core.Core interface.
func (p *Player) ID() string {
	return ID
}

// Deinit implements the core.Core interface.
func (p *Player) Deinit() {
	p.pix = nil
	p.out = nil
	p.cb = core.Callbacks{}
}

// BaseVideoSize implements the core.Core interface.
func (p *Player) BaseVideoSize() (int, int) {
	return Width, Height
}

// SetVideoBuffer implements the core.Core interface.
func (p *Player) SetVideoBuffer(pix []byte, stride int) {
	p.pix = pix
	p.stride = stride
}

// SetAudioOutput implements the core.Core interface.
func (p *Player) SetAudioOutput(out audio.Output) {
	p.out = out
}

// Reset implements the core.Core interface. Playback starts from the
// beginning.
func (p *Player) Reset() {
	p.pos = 0
	p.frame = 0
	p.keys = 0
	p.prevKey = 0
	p.playing = true
	p.skipCt = 0
	p.peak = [audio.Channels]float64{}
}

// Position returns the playback position in sample pairs.
func (p *Player) Position() int {
	return p.pos
}

// Playing returns true if the player is playing.
func (p *Player) Playing() bool {
	return p.playing
}

// Peak returns the peak level of the channel for the most recent frame.
func (p *Player) Peak(channel int) float64 {
	if channel < 0 || channel >= audio.Channels {
		return 0
	}
	return p.peak[channel]
}

// RunFrame implements the core.Core interface.
func (p *Player) RunFrame() {
	if p.cb.VideoFrameStarted != nil {
		p.cb.VideoFrameStarted()
	}

	p.input()
	p.frame++
	p.play()

	if p.skipCt == 0 {
		p.render()
	}
	p.skipCt++
	if p.skipCt > p.frameskip {
		p.skipCt = 0
	}

	if p.cb.VideoFrameEnded != nil {
		p.cb.VideoFrameEnded()
	}
}

func (p *Player) input() {
	if p.cb.KeysRead != nil {
		p.cb.KeysRead()
	}

	edge := func(b int) bool {
		return p.keys&(1<<b) != 0 && p.prevKey&(1<<b) == 0
	}

	if edge(ButtonPlay) {
		p.playing = !p.playing
	}
	if edge(ButtonRestart) {
		p.pos = 0
		p.playing = true
	}

	p.prevKey = p.keys
}

func (p *Player) play() {
	p.buffer = p.buffer[:0]
	p.peak = [audio.Channels]float64{}

	if !p.playing {
		return
	}

	end := min(p.pos+SamplesPerFrame, p.pcm.Frames())
	for i := p.pos; i < end; i++ {
		for c := range audio.Channels {
			v := float64(p.pcm.Data[i*audio.Channels+c]) * p.volume
			v = max(min(v, 32767), -32768)
			p.buffer = append(p.buffer, int16(v))

			l := v / 32768
			if l < 0 {
				l = -l
			}
			p.peak[c] = max(p.peak[c], l)
		}
	}
	p.pos = end

	if p.out != nil && len(p.buffer) > 0 {
		if err := p.out.SetAudio(p.buffer); err != nil {
			logger.Log(p.env, logTag, err)
		}
	}

	// the end of the content raises the alarm and stops playback
	if p.pos >= p.pcm.Frames() {
		p.playing = false
		logger.Logf(p.env, logTag, "end of content after %d frames", p.frame)
		if p.cb.Alarm != nil {
			p.cb.Alarm()
		}
	}
}

// meter colours in ABGR8888 memory order
var (
	meterBackground = [4]byte{0x10, 0x10, 0x10, 0xff}
	meterLow        = [4]byte{0x00, 0xc0, 0x00, 0xff}
	meterHigh       = [4]byte{0xc0, 0x00, 0x00, 0xff}
)

// the level above which the meter changes colour
const meterThreshold = 0.8

func (p *Player) render() {
	if p.pix == nil {
		return
	}

	rowBytes := p.stride * 4
	barHeight := Height / audio.Channels

	for y := range Height {
		c := min(y/barHeight, audio.Channels-1)
		level := int(p.peak[c] * Width)
		row := p.pix[y*rowBytes:]
		for x := range Width {
			col := meterBackground
			if x < level {
				col = meterLow
				if float64(x) >= meterThreshold*Width {
					col = meterHigh
				}
			}
			copy(row[x*4:], col[:])
		}
	}
}

// AddKeys implements the core.Core interface.
func (p *Player) AddKeys(mask uint32) {
	p.keys |= mask
}

// ClearKeys implements the core.Core interface.
func (p *Player) ClearKeys(mask uint32) {
	p.keys &^= mask
}

// Keys implements the core.Core interface.
func (p *Player) Keys() uint32 {
	return p.keys
}

// SetCallbacks implements the core.Core interface.
func (p *Player) SetCallbacks(cb core.Callbacks) {
	p.cb = cb
}

// Read8 implements the core.Memory interface.
func (p *Player) Read8(address uint32) uint8 {
	switch {
	case address == RegPlaying:
		if p.playing {
			return 1
		}
		return 0
	case address >= RegPosition && address < RegPosition+4:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(p.pos))
		return b[address-RegPosition]
	}
	return 0
}

// Write8 implements the core.Memory interface.
func (p *Player) Write8(address uint32, data uint8) {
	if address == RegPlaying {
		p.playing = data != 0
	}
}

type state struct {
	Frame   uint32 `cbor:"frame"`
	Keys    uint32 `cbor:"keys"`
	PrevKey uint32 `cbor:"prevKey"`
	Playing bool   `cbor:"playing"`
}

// SaveState implements the core.Core interface.
func (p *Player) SaveState() ([]byte, error) {
	return cbor.Marshal(state{
		Frame:   p.frame,
		Keys:    p.keys,
		PrevKey: p.prevKey,
		Playing: p.playing,
	})
}

// LoadState implements the core.Core interface.
func (p *Player) LoadState(data []byte) error {
	var s state
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("pcmplayer: %w", err)
	}
	p.frame = s.Frame
	p.keys = s.Keys
	p.prevKey = s.PrevKey
	p.playing = s.Playing
	return nil
}

// AudioState implements the core.Core interface. The audio state is the
// playback position.
func (p *Player) AudioState() ([]byte, error) {
	return cbor.Marshal(p.pos)
}

// LoadAudioState implements the core.Core interface.
func (p *Player) LoadAudioState(data []byte) error {
	var pos int
	if err := cbor.Unmarshal(data, &pos); err != nil {
		return fmt.Errorf("pcmplayer: %w", err)
	}
	if pos < 0 || pos > p.pcm.Frames() {
		return fmt.Errorf("pcmplayer: position out of range (%d)", pos)
	}
	p.pos = pos
	return nil
}

// SaveData implements the core.Core interface. The player has no save data.
func (p *Player) SaveData() []byte {
	return nil
}

// LoadSaveData implements the core.Core interface.
func (p *Player) LoadSaveData(data []byte) error {
	if len(data) > 0 {
		return fmt.Errorf("pcmplayer: no save data supported")
	}
	return nil
}

// ReloadConfigOption implements the core.Core interface.
func (p *Player) ReloadConfigOption(option string, cfg *core.Config) {
	switch option {
	case core.OptionVolume:
		p.volume = cfg.VolumeLevel()
	case core.OptionFrameskip:
		p.frameskip = cfg.Frameskip.Get().(int)
		p.skipCt = 0
	}
}

// InputInfo implements the core.Core interface.
func (p *Player) InputInfo() core.InputInfo {
	keys := make(map[string]int, len(defaultKeys))
	for k, v := range defaultKeys {
		keys[k] = v
	}
	return core.InputInfo{
		Buttons:     buttons,
		DefaultKeys: keys,
	}
}
