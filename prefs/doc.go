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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are declared as one of the types in this package (Bool,
// String, Int, Float) and are registered with a Disk instance under a key.
// The Disk instance saves and loads every registered value to and from a
// single file:
//
//	var volume prefs.Float
//	dsk, _ := prefs.NewDisk(fn)
//	dsk.Add("audio.volume", &volume)
//	dsk.Load(true)
//
// The file format is a simple "key :: value" list, one entry per line,
// preceded by the WarningBoilerPlate text. Entries in the file that are not
// registered with the Disk instance are preserved when the file is saved.
// This means that more than one Disk instance can share the same file.
//
// Values can also be set from the command line with PushCommandLineStack().
// Command line values override the values loaded from disk for the duration
// of the group.
//
// Each value type supports a pre and post hook, called whenever the value is
// set. A pre hook returning an error prevents the value from changing.
package prefs
