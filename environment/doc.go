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

// Package environment collates the preferences and host facilities that give
// context to a session. An Environment instance is passed to every package
// that needs to log, read preferences or notify the host.
//
// The Environment type implements the logger.Permission interface. Logging is
// denied unless the Logging preference has been set, which means that by
// default every log entry made through the environment is discarded.
package environment
