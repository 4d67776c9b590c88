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

package audio

import (
	"errors"
)

// SampleFreq is the sample frequency of all audio passed to an Output.
const SampleFreq = 48000

// Channels is the number of interleaved channels.
const Channels = 2

// Output implementations receive the audio produced by the machine.
type Output interface {
	// samples are interleaved stereo
	SetAudio(samples []int16) error

	// the number of frames per second the machine is being stepped at. an
	// output that paces playback can use this to adjust its buffering when
	// fast-forwarding
	SetFPSTarget(fps float64)

	// a muted output discards all samples
	SetMute(muted bool)

	// the output is no longer required
	EndMixing() error
}

// Discard is an Output that throws samples away. It keeps a count of the
// samples it has been given and the most recent mute and FPS values.
type Discard struct {
	Samples   int
	Muted     bool
	FPSTarget float64
	Ended     bool
}

// SetAudio implements the Output interface.
func (d *Discard) SetAudio(samples []int16) error {
	if !d.Muted {
		d.Samples += len(samples)
	}
	return nil
}

// SetFPSTarget implements the Output interface.
func (d *Discard) SetFPSTarget(fps float64) {
	d.FPSTarget = fps
}

// SetMute implements the Output interface.
func (d *Discard) SetMute(muted bool) {
	d.Muted = muted
}

// EndMixing implements the Output interface.
func (d *Discard) EndMixing() error {
	d.Ended = true
	return nil
}

// Multi sends audio to more than one Output.
type Multi struct {
	outputs []Output
}

// NewMulti is the preferred method of initialisation for the Multi type. Nil
// outputs are ignored.
func NewMulti(outputs ...Output) *Multi {
	m := &Multi{}
	for _, o := range outputs {
		if o != nil {
			m.outputs = append(m.outputs, o)
		}
	}
	return m
}

// SetAudio implements the Output interface.
func (m *Multi) SetAudio(samples []int16) error {
	var errs []error
	for _, o := range m.outputs {
		errs = append(errs, o.SetAudio(samples))
	}
	return errors.Join(errs...)
}

// SetFPSTarget implements the Output interface.
func (m *Multi) SetFPSTarget(fps float64) {
	for _, o := range m.outputs {
		o.SetFPSTarget(fps)
	}
}

// SetMute implements the Output interface.
func (m *Multi) SetMute(muted bool) {
	for _, o := range m.outputs {
		o.SetMute(muted)
	}
}

// EndMixing implements the Output interface.
func (m *Multi) EndMixing() error {
	var errs []error
	for _, o := range m.outputs {
		errs = append(errs, o.EndMixing())
	}
	return errors.Join(errs...)
}
