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

// Package sdlplay is the SDL host for the emulation. It presents completed
// frames in a window, forwards keyboard events to the input bridge and plays
// audio through a queued SDL audio device.
//
// SDL requires that most functions are called from the main thread. The
// SdlPlay type must therefore be created and serviced from the goroutine that
// runs the driver, which should be the main thread.
package sdlplay
