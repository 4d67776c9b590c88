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

// Package video manages the pixel buffers written by the machine and read by
// the presenter.
//
// The Sink type owns two buffers of identical geometry. At any instant one
// buffer is bound to the machine as its render target and the other is the
// presented buffer, which is the most recently completed frame. A call to
// Swap() exchanges the two: the buffer the machine has just finished writing
// becomes the presented buffer and is passed to the Presenter, and the other
// buffer is bound to the machine before Swap() returns.
//
// The machine never writes into the presented buffer and the presenter is
// never given the bound buffer. This is guaranteed by ordering, not by
// locking, and so the Sink must only be used from a single goroutine.
package video
