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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/framepace/video"
)

// Video is an implementation of the video.Presenter interface with an
// embedded hash that is updated with every presented frame.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	next   video.Presenter
	digest [sha1.Size]byte
	frames int
}

// NewVideo initialises a new instance of Video. Frames are passed to the next
// presenter after they are hashed. The next presenter can be nil.
func NewVideo(next video.Presenter) *Video {
	return &Video{next: next}
}

// Hash implements digest.Digest interface
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames hashed since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements the video.Presenter interface. The padding at the end of
// each row is not included in the hash.
func (dig *Video) Present(buf *video.Buffer) {
	h := sha1.New()
	h.Write(dig.digest[:])

	rowLen := buf.Width * buf.Format.BytesPerPixel()
	for y := range buf.Height {
		i := y * buf.Stride
		h.Write(buf.Pix[i : i+rowLen])
	}
	h.Sum(dig.digest[:0])
	dig.frames++

	if dig.next != nil {
		dig.next.Present(buf)
	}
}
