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

package video

import (
	"fmt"
)

// Target is the machine that writes into the bound buffer. The stride is
// given in pixels.
type Target interface {
	SetVideoBuffer(pix []byte, stride int)
}

// Presenter receives the presented buffer after every swap. The presenter
// must not retain the buffer beyond the next call to Present().
type Presenter interface {
	Present(buf *Buffer)
}

// Sink owns the double buffer shared by the machine and the presenter.
type Sink struct {
	buffers [2]Buffer

	// index of the buffer bound to the machine. the other buffer is the
	// presented buffer
	bound int

	target    Target
	presenter Presenter

	// number of swaps since the last resize
	frames int
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink() *Sink {
	return &Sink{}
}

// SetPresenter sets the presenter that receives every completed frame. Can be
// nil.
func (s *Sink) SetPresenter(p Presenter) {
	s.presenter = p
}

// Resize allocates both buffers with the new geometry and binds one of them to
// the target. The existing content of the buffers is lost.
func (s *Sink) Resize(width, height int, target Target) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("video: illegal buffer size (%dx%d)", width, height)
	}

	s.buffers[0] = NewBuffer(width, height, PixelFormatABGR8888)
	s.buffers[1] = NewBuffer(width, height, PixelFormatABGR8888)
	s.bound = 0
	s.frames = 0
	s.target = target
	s.bind()

	return nil
}

// Release unbinds the target. Swap() does nothing until the next Resize().
// The buffers are retained so that the last presented frame is still
// available.
func (s *Sink) Release() {
	s.target = nil
}

func (s *Sink) bind() {
	if s.target == nil {
		return
	}
	b := &s.buffers[s.bound]
	s.target.SetVideoBuffer(b.Pix, b.StridePixels())
}

// Swap releases the bound buffer to the presenter and binds the other buffer
// to the target. Swap does nothing if there is no target.
func (s *Sink) Swap() {
	if s.target == nil {
		return
	}

	s.bound ^= 1
	s.bind()
	s.frames++

	if s.presenter != nil {
		s.presenter.Present(s.Presented())
	}
}

// Bound returns the buffer currently bound to the target.
func (s *Sink) Bound() *Buffer {
	return &s.buffers[s.bound]
}

// Presented returns the most recently completed frame.
func (s *Sink) Presented() *Buffer {
	return &s.buffers[s.bound^1]
}

// Frames returns the number of swaps since the last resize.
func (s *Sink) Frames() int {
	return s.frames
}

// Restore copies pixel data into the presented buffer and presents it again.
// The data must be of the same size as the buffer.
func (s *Sink) Restore(pix []byte) error {
	p := s.Presented()
	if len(pix) != len(p.Pix) {
		return fmt.Errorf("video: restored frame has wrong size (%d bytes, expected %d)", len(pix), len(p.Pix))
	}
	copy(p.Pix, pix)

	if s.presenter != nil && s.target != nil {
		s.presenter.Present(p)
	}
	return nil
}
