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

// Package terminal is a host that reads key presses from a terminal in raw
// mode. Terminals report key presses, and repeated presses while a key is
// held, but never key releases. A key is therefore released when it has not
// been reported for HoldTime.
//
// Frames are not drawn. Instead a status line with the frame rate is written
// to the output once a second.
package terminal
