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

// Package pacing converts wall clock time into a number of machine steps.
//
// The FrameClock type accumulates elapsed time and drains it in whole frame
// periods. The FastForward type holds the multiplier applied to the number of
// steps. The Scheduler type composes the two and drives a Target once per
// tick of the host's timing source:
//
//	sch := pacing.NewScheduler(session, sink, ff)
//	res := sch.Tick(elapsedMs)
//
// The number of steps run by a single tick is bounded by MaxStepsPerTick. This
// limits the amount of catch-up work after the host stalls for a long time
// (eg. when the application is in the background).
//
// Nothing in this package reads the clock itself. The TickAt() function is
// provided for drivers that want the FrameClock to measure the elapsed time
// from a timestamp.
package pacing
