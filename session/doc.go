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

// Package session controls the lifecycle of emulated content. A Controller
// is either Unloaded or Loaded. While Loaded it owns exactly one machine
// created by a core.Factory, together with the per-session configuration,
// key bindings and cheat device.
//
// The Controller is the target for the pacing.Scheduler and the
// userinput.Bridge. It is not safe for concurrent use. All calls should be
// made from the goroutine that drives the scheduler.
//
// Files belonging to a session are named after the content ID, which is the
// base name of the content file without the extension:
//
//	<saves>/<contentID>.sav
//	<states>/<contentID>.ss<slot>
//	<cheats>/<contentID>.cheats
//	<screenshots>/<contentID>-<N>.png
package session
