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
	"encoding/binary"
	"fmt"
)

// Audio is an implementation of the audio.Output interface with an embedded
// hash that is updated with every block of samples. Samples received while
// muted are not included.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
	muted  bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]byte, sha1.Size),
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements digest.Digest interface
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
}

// SetAudio implements the audio.Output interface
func (dig *Audio) SetAudio(samples []int16) error {
	if dig.muted || len(samples) == 0 {
		return nil
	}

	// the previous digest is at the head of the buffer
	dig.buffer = dig.buffer[:sha1.Size]
	copy(dig.buffer, dig.digest[:])
	for _, s := range samples {
		dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, uint16(s))
	}
	dig.digest = sha1.Sum(dig.buffer)

	return nil
}

// SetFPSTarget implements the audio.Output interface
func (dig *Audio) SetFPSTarget(_ float64) {
}

// SetMute implements the audio.Output interface
func (dig *Audio) SetMute(muted bool) {
	dig.muted = muted
}

// EndMixing implements the audio.Output interface
func (dig *Audio) EndMixing() error {
	return nil
}
