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
	"encoding/binary"

	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/pacing"
	"github.com/veandco/go-sdl2/sdl"
)

// number of sample frames requested from the device per callback. the value
// is the same as the one used by browser hosts
const bufferLength = 4096

// the maximum amount of audio queued, measured in frames of emulation. if the
// queue is longer than this then new samples are dropped. this stops the
// audio drifting away from the video
const maxQueuedFrames = 6

const bytesPerSample = 2

// Audio outputs sound using SDL.
type Audio struct {
	env  *environment.Environment
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the queue limit in bytes. changes with the FPS target
	limit uint32

	muted  bool
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(env *environment.Environment) (*Audio, error) {
	aud := &Audio{
		env:   env,
		muted: true,
	}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: audio.Channels,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}

	aud.SetFPSTarget(pacing.NativeFPS)

	logger.Logf(env, logTag, "audio: %dHz %d channels", aud.spec.Freq, aud.spec.Channels)

	// the device starts paused. it is unpaused by SetMute(false)
	return aud, nil
}

// SetAudio implements the audio.Output interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if aud.muted {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > aud.limit {
		return nil
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(s))
	}

	return sdl.QueueAudio(aud.id, aud.buffer)
}

// SetFPSTarget implements the audio.Output interface. A higher FPS target
// produces more samples per second of real time so the queue limit is
// raised to match.
func (aud *Audio) SetFPSTarget(fps float64) {
	if fps < pacing.NativeFPS {
		fps = pacing.NativeFPS
	}
	perFrame := float64(audio.SampleFreq*audio.Channels*bytesPerSample) / pacing.NativeFPS
	aud.limit = uint32(perFrame * maxQueuedFrames * fps / pacing.NativeFPS)
}

// SetMute implements the audio.Output interface. The device is paused while
// muted and any queued audio is discarded.
func (aud *Audio) SetMute(muted bool) {
	if muted == aud.muted {
		return
	}
	aud.muted = muted
	if muted {
		sdl.ClearQueuedAudio(aud.id)
	}
	sdl.PauseAudioDevice(aud.id, muted)
}

// EndMixing implements the audio.Output interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
