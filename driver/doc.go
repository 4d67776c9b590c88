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

// Package driver is the timing source for the pacing.Scheduler. The Driver
// runs in a single goroutine: it drains the queue of posted functions,
// services the host, and ticks the scheduler, then waits for the next
// iteration according to the timing mode.
//
// Functions that change the state of the session from other goroutines must
// be posted to the Driver with Post() or Do(). This guarantees that they
// complete before the next tick.
package driver
