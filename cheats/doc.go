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

// Package cheats reads cheat files and applies cheats to machine memory.
//
// Three on-disk dialects are supported and the dialect of a file is detected
// from its first line. See the Detect() function for details.
//
// Native files are a list of cheat sets. A line beginning with '#' starts a
// new set and the rest of the line is the description. The directives
// "!enabled" and "!disabled" set the state of the current set. Every other
// line is a code of the form "AAAAAAAA:VV" (hexadecimal address and value):
//
//	# Marker to top left
//	!enabled
//	02000200:00
//	02000201:00
//
// Libretro files are key/value pairs. The first line gives the number of
// cheats and each cheat has a description, a code and an enable flag. More
// than one code can be joined with '+':
//
//	cheats = 1
//	cheat0_desc = "Marker to top left"
//	cheat0_code = "02000200:00+02000201:00"
//	cheat0_enable = true
//
// EZFCht files are divided into sections. Every section other than GameInfo
// is a cheat set with the section name as the description. The ON key lists
// groups separated by ';'. A group is a hexadecimal offset followed by one or
// more byte values written to consecutive addresses. Offsets below 0x40000
// are in external work RAM (0x02000000) and the remainder are in internal
// work RAM (0x03000000):
//
//	[Marker to top left]
//	ON=200,00,00;
package cheats
