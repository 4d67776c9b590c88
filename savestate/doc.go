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

// Package savestate stores snapshots of a session on disk.
//
// A State is encoded as CBOR. The machine state is always part of a State.
// Other categories of state (the presented video frame, battery save data,
// cheats and audio) are included according to the Flags the State was
// created with.
//
// The Store type keeps one file for each content ID and slot number. Files
// are replaced atomically: a State is written to a temporary file in the same
// directory, which is then renamed over the existing file. A failed save
// never leaves a partially written state file.
package savestate
