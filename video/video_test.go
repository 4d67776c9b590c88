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

package video_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/video"
)

type target struct {
	pix    []byte
	stride int
	binds  int
}

func (t *target) SetVideoBuffer(pix []byte, stride int) {
	t.pix = pix
	t.stride = stride
	t.binds++
}

type presenter struct {
	last     *video.Buffer
	presents int
}

func (p *presenter) Present(buf *video.Buffer) {
	p.last = buf
	p.presents++
}

// reports whether two slices share the same backing array
func same(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestResize(t *testing.T) {
	s := video.NewSink()
	tg := &target{}

	test.ExpectFailure(t, s.Resize(0, 10, tg))
	test.DemandSuccess(t, s.Resize(240, 160, tg))

	test.ExpectEquality(t, tg.binds, 1)
	test.ExpectEquality(t, tg.stride, 240)
	test.ExpectEquality(t, len(tg.pix), 240*160*4)
	test.ExpectEquality(t, s.Bound().Stride, 240*4)
	test.ExpectSuccess(t, same(tg.pix, s.Bound().Pix))
}

func TestSwap(t *testing.T) {
	s := video.NewSink()
	tg := &target{}
	p := &presenter{}
	s.SetPresenter(p)

	// swap before resize does nothing
	s.Swap()
	test.ExpectEquality(t, p.presents, 0)

	test.DemandSuccess(t, s.Resize(4, 4, tg))

	for i := range 5 {
		written := tg.pix
		written[0] = byte(i)

		s.Swap()

		// the buffer just written is presented
		test.ExpectSuccess(t, same(p.last.Pix, written))
		test.ExpectEquality(t, p.last.Pix[0], byte(i))

		// the presenter never has the bound buffer
		test.ExpectFailure(t, same(p.last.Pix, tg.pix))
		test.ExpectSuccess(t, same(tg.pix, s.Bound().Pix))
		test.ExpectSuccess(t, same(p.last.Pix, s.Presented().Pix))
	}

	test.ExpectEquality(t, s.Frames(), 5)
	test.ExpectEquality(t, p.presents, 5)
}

func TestRelease(t *testing.T) {
	s := video.NewSink()
	tg := &target{}
	p := &presenter{}
	s.SetPresenter(p)

	test.DemandSuccess(t, s.Resize(4, 4, tg))
	s.Release()
	s.Swap()
	test.ExpectEquality(t, p.presents, 0)
	test.ExpectEquality(t, tg.binds, 1)
}

func TestRestore(t *testing.T) {
	s := video.NewSink()
	tg := &target{}
	test.DemandSuccess(t, s.Resize(2, 2, tg))

	pix := make([]byte, 2*2*4)
	pix[3] = 0xff
	test.ExpectSuccess(t, s.Restore(pix))
	test.ExpectEquality(t, s.Presented().Pix[3], byte(0xff))

	test.ExpectFailure(t, s.Restore(make([]byte, 3)))
}

func TestPNG(t *testing.T) {
	buf := video.NewBuffer(3, 2, video.PixelFormatABGR8888)
	buf.Pix[0] = 0xff
	buf.Pix[3] = 0xff

	fn := filepath.Join(t.TempDir(), "test.png")
	test.DemandSuccess(t, video.WritePNG(fn, &buf))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 3)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)

	r, g, b, a := img.At(0, 0).RGBA()
	test.ExpectEquality(t, r, uint32(0xffff))
	test.ExpectEquality(t, g, uint32(0))
	test.ExpectEquality(t, b, uint32(0))
	test.ExpectEquality(t, a, uint32(0xffff))
}
