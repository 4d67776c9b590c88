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

package session

import "github.com/jetsetilly/framepace/core"

// Sentinel error patterns.
const (
	NotLoaded           = "session: no content loaded"
	ResourceUnavailable = "session: resource unavailable: %v"
	LoadFailure         = "session: load failure: %v"
	ConfigInvalid       = core.ConfigInvalid
)
