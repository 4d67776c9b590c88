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

// Package testcard implements a simple deterministic machine. It is used to
// exercise a session without the need for real content and is the machine
// used by the tests of most other packages.
//
// The machine displays colour bars with a movable marker. The marker is moved
// with the direction buttons and its position is stored in work RAM, which
// means that it can be changed by cheats and is preserved by save states. A
// sine tone is produced whose amplitude follows the volume option.
//
// Work RAM is 64KiB and starts at address 0x02000000. The first 512 bytes of
// work RAM is battery backed save data. The save data is written when the
// START button is pressed.
//
// Content for the machine is any file with the ".tcd" extension or any file
// beginning with the bytes "TESTCARD".
package testcard
