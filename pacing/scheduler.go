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

package pacing

import "time"

// MaxStepsPerTick is the maximum number of steps run by a single tick.
const MaxStepsPerTick = 20

// Target is the machine driven by the Scheduler.
type Target interface {
	// whether the target is loaded. an unloaded target is never stepped
	Loaded() bool

	// returns true if the next tick should run exactly one step. the flag is
	// cleared by the call
	ConsumeRenderFirstFrame() bool

	// run the number of steps consecutively
	RunSteps(n int)
}

// Swapper releases the buffer written by the most recent steps for
// presentation and binds a fresh one for the next steps.
type Swapper interface {
	Swap()
}

// Result of a single tick.
type Result struct {
	StepsRun       int
	FramePresented bool
}

// Scheduler decides how many steps to run for each tick of the host's timing
// source.
type Scheduler struct {
	Clock       *FrameClock
	FastForward *FastForward

	target Target
	sink   Swapper
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. If ff is nil a new FastForward instance is created.
func NewScheduler(target Target, sink Swapper, ff *FastForward) *Scheduler {
	if ff == nil {
		ff = &FastForward{}
	}
	return &Scheduler{
		Clock:       NewFrameClock(NativeFPS),
		FastForward: ff,
		target:      target,
		sink:        sink,
	}
}

// Tick is called once per invocation of the host's timing source with the
// number of milliseconds since the previous invocation. The elapsed value
// must not be negative or NaN.
//
// If the target is not loaded then nothing happens and the accumulator is
// untouched.
func (s *Scheduler) Tick(elapsed float64) Result {
	if !s.target.Loaded() {
		return Result{}
	}

	n := s.Clock.Advance(elapsed)
	steps := min(n*s.FastForward.Multiplier(), MaxStepsPerTick)

	// the first frame after a load, reset or resume is rendered immediately
	// whatever the state of the clock
	if s.target.ConsumeRenderFirstFrame() {
		steps = 1
	} else if n < 1 {
		return Result{}
	}

	s.target.RunSteps(steps)
	s.sink.Swap()

	return Result{
		StepsRun:       steps,
		FramePresented: true,
	}
}

// TickAt is like Tick() but the elapsed time is measured by the FrameClock
// from the time of the previous call to TickAt().
func (s *Scheduler) TickAt(now time.Time) Result {
	return s.Tick(s.Clock.Since(now))
}
