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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// The arguments are given once, with NewModes(). Each call to Parse()
// consumes the flags of the current mode and, if sub-modes have been added
// with AddSubMode(), the name of the selected sub-mode. A call to NewMode()
// prepares for the flags of the selected sub-mode. For example:
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddSubMode("PLAY", "play content in a window")
//	md.AddSubMode("HEADLESS", "run without a display")
//	verbose := md.AddBool("log", false, "echo log to terminal")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 3.0, "window scaling")
//		...
//	}
//
// Which would accept command lines of the form:
//
//	program -log PLAY -scale 2 game.tcd
//	program -log game.tcd
//
// The first sub-mode is the default and is selected when the next argument
// is not the name of a sub-mode. Sub-mode names are not case sensitive.
//
// Help is printed to the output when the -help flag is found. The help
// message lists the flags of the current mode and the available sub-modes.
// Additional help can be specified with AdditionalHelp().
package modalflag
