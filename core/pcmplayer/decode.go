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
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
)

// PCM is interleaved 16 bit stereo data at audio.SampleFreq.
type PCM struct {
	Data []int16

	// the sample rate of the source data
	SourceRate int
}

// Frames returns the number of stereo sample pairs.
func (p PCM) Frames() int {
	return len(p.Data) / audio.Channels
}

func decode(env *environment.Environment, cl contentloader.Loader) (PCM, error) {
	switch cl.Extension() {
	case ".wav":
		return decodeWAV(env, cl.Data)
	case ".mp3":
		return decodeMP3(env, cl.Data)
	}
	return PCM{}, fmt.Errorf("pcmplayer: unsupported file type (%s)", cl.Extension())
}

// DecodeWAV decodes WAV data.
func DecodeWAV(data []byte) (PCM, error) {
	return decodeWAV(nil, data)
}

func decodeWAV(env *environment.Environment, data []byte) (PCM, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if dec == nil {
		return PCM{}, fmt.Errorf("pcmplayer: wav: error decoding")
	}
	if !dec.IsValidFile() {
		return PCM{}, fmt.Errorf("pcmplayer: wav: not a valid wav file")
	}

	logger.Log(env, logTag, "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, fmt.Errorf("pcmplayer: wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return PCM{}, fmt.Errorf("pcmplayer: wav: no channels")
	}
	depth := int(dec.BitDepth)

	// reduce sample to 16 bits. 8 bit wav data is unsigned
	conv := func(v int) int16 {
		switch {
		case depth == 8:
			return int16((v - 128) << 8)
		case depth > 16:
			return int16(v >> (depth - 16))
		case depth < 16:
			return int16(v << (16 - depth))
		}
		return int16(v)
	}

	src := make([]int16, 0, len(buf.Data)/chans*audio.Channels)
	for i := 0; i+chans <= len(buf.Data); i += chans {
		l := conv(buf.Data[i])
		r := l
		if chans > 1 {
			r = conv(buf.Data[i+1])
		}
		src = append(src, l, r)
	}

	rate := int(dec.SampleRate)
	logger.Logf(env, logTag, "sample rate: %dHz", rate)

	return PCM{
		Data:       resample(src, rate),
		SourceRate: rate,
	}, nil
}

// DecodeMP3 decodes MP3 data.
func DecodeMP3(data []byte) (PCM, error) {
	return decodeMP3(nil, data)
}

func decodeMP3(env *environment.Environment, data []byte) (PCM, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return PCM{}, fmt.Errorf("pcmplayer: mp3: %w", err)
	}

	logger.Log(env, logTag, "loading from mp3 file")

	// the decoded stream is always 16 bit little endian stereo, even if the
	// source is single channel
	raw, err := io.ReadAll(dec)
	if err != nil {
		return PCM{}, fmt.Errorf("pcmplayer: mp3: %w", err)
	}

	src := make([]int16, len(raw)/2)
	for i := range src {
		src[i] = int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
	}

	rate := dec.SampleRate()
	logger.Logf(env, logTag, "sample rate: %dHz", rate)

	return PCM{
		Data:       resample(src, rate),
		SourceRate: rate,
	}, nil
}

// nearest neighbour conversion of stereo data to audio.SampleFreq
func resample(src []int16, rate int) []int16 {
	if rate == audio.SampleFreq || rate <= 0 {
		return src
	}

	frames := len(src) / audio.Channels
	n := int(int64(frames) * audio.SampleFreq / int64(rate))

	dst := make([]int16, 0, n*audio.Channels)
	for i := range n {
		j := int(int64(i)*int64(rate)/audio.SampleFreq) * audio.Channels
		dst = append(dst, src[j], src[j+1])
	}
	return dst
}
