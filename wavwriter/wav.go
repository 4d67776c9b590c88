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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore only suitable for short
// recordings.
package wavwriter

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
)

const logTag = "wavwriter"

// bit depth of the recording
const bitDepth = 16

// PCM format code for the WAV header
const pcmFormat = 1

// WavWriter implements the audio.Output interface.
type WavWriter struct {
	env      *environment.Environment
	filename string
	buffer   []int
	muted    bool
	ended    bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(env *environment.Environment, filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	aw := &WavWriter{
		env:      env,
		filename: filename,
		buffer:   make([]int, 0, audio.SampleFreq*audio.Channels),
	}
	return aw, nil
}

// Filename returns the name of the file the recording will be written to.
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// SetAudio implements the audio.Output interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	if aw.muted || aw.ended {
		return nil
	}
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// SetFPSTarget implements the audio.Output interface.
func (aw *WavWriter) SetFPSTarget(_ float64) {
}

// SetMute implements the audio.Output interface. Samples are not recorded
// while muted.
func (aw *WavWriter) SetMute(muted bool) {
	aw.muted = muted
}

// EndMixing implements the audio.Output interface. The recording is written to
// disk. Subsequent calls do nothing.
func (aw *WavWriter) EndMixing() (rerr error) {
	if aw.ended {
		return nil
	}
	aw.ended = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, audio.SampleFreq, bitDepth, audio.Channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: audio.Channels,
			SampleRate:  audio.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.env, logTag, "writing %d samples to %s", len(aw.buffer)/audio.Channels, aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

func (aw *WavWriter) String() string {
	return fmt.Sprintf("wav recording to %s", aw.filename)
}
