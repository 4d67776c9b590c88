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

// Package commands is the surface through which a host controls the
// emulation. Every operation reports failure with a boolean or a zero value
// and never panics. The reason for a failure is written to the log.
//
// Surface methods must be called from the driver goroutine. Hosts running
// on other goroutines should wrap calls with driver.Driver.Do() or
// driver.Driver.Post().
package commands
