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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/digest"
	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/video"
)

type presenter struct {
	presents int
}

func (p *presenter) Present(_ *video.Buffer) {
	p.presents++
}

var _ digest.Digest = (*digest.Video)(nil)
var _ digest.Digest = (*digest.Audio)(nil)
var _ audio.Output = (*digest.Audio)(nil)

func TestVideo(t *testing.T) {
	next := &presenter{}
	a := digest.NewVideo(next)
	b := digest.NewVideo(nil)

	zero := a.Hash()

	buf := video.NewBuffer(16, 8, video.PixelFormatABGR8888)
	a.Present(&buf)
	b.Present(&buf)
	test.ExpectEquality(t, next.presents, 1)
	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the same frame presented again produces a new hash because the hash is
	// chained
	h := a.Hash()
	a.Present(&buf)
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	// a different frame produces a different hash
	buf.Pix[0] = 0xff
	b.Present(&buf)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// row padding is not hashed
	a.ResetDigest()
	b.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Frames(), 0)

	padded := video.Buffer{
		Pix:    make([]byte, 20*4*8),
		Width:  16,
		Height: 8,
		Stride: 20 * 4,
	}
	for i := range padded.Pix {
		padded.Pix[i] = 0xaa
	}
	unpadded := video.NewBuffer(16, 8, video.PixelFormatABGR8888)
	for i := range unpadded.Pix {
		unpadded.Pix[i] = 0xaa
	}
	a.Present(&padded)
	b.Present(&unpadded)
	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	zero := a.Hash()

	samples := []int16{1, -1, 2, -2}
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, b.SetAudio(samples))
	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// muted samples are ignored
	h := a.Hash()
	a.SetMute(true)
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectEquality(t, a.Hash(), h)

	a.SetMute(false)
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.String(), a.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
}
