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

// Package contentloader is used to specify the content that is to be loaded
// into a session.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest use of the package:
//
//	cl := contentloader.NewLoader("roms/testcard.tcd")
//	err := cl.Load()
//
// After a successful Load() the Data field contains the content and the Hash
// field contains the SHA1 hash of the data. The ContentID() function returns
// the identifier used to name the files associated with the content (save
// data, save states, cheats and screenshots).
package contentloader
