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

// Package paths contains functions to prepare paths to framepace resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the save states directory:
//
//	d, err := paths.ResourcePath("states", "")
//
// For release builds (built with the "release" tag) the base path is in the
// user's config directory as returned by os.UserConfigDir(). On a modern Linux
// system this will be:
//
//	/home/user/.config/framepace/states
//
// For non-release builds the base path is ".framepace" in the current working
// directory.
//
// In both cases the directory, including the sub-directory, is created if
// it does not already exist.
package paths
