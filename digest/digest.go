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

// Package digest contains implementations of the video.Presenter and
// audio.Output interfaces that produce a cryptographic hash of everything they
// receive. The hash can be used to compare the output of subsequent runs of
// the emulation. If a new hash differs from a previously recorded value then
// something has changed.
//
// Each hash is chained: the hash of a frame, or of a block of audio, includes
// the hash of the previous frame or block.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request.
type Digest interface {
	Hash() string
	ResetDigest()
}
