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

package pacing_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jetsetilly/framepace/pacing"
	"github.com/jetsetilly/framepace/test"
)

type target struct {
	loaded           bool
	renderFirstFrame bool
	steps            int
	calls            int
}

func (t *target) Loaded() bool {
	return t.loaded
}

func (t *target) ConsumeRenderFirstFrame() bool {
	r := t.renderFirstFrame
	t.renderFirstFrame = false
	return r
}

func (t *target) RunSteps(n int) {
	t.steps += n
	t.calls++
}

type sink struct {
	swaps int
}

func (s *sink) Swap() {
	s.swaps++
}

func TestFrameClock(t *testing.T) {
	c := pacing.NewFrameClock(pacing.NativeFPS)
	test.ExpectApproximate(t, c.Period(), 16.6667, 0.0001)

	test.ExpectEquality(t, c.Advance(10.0), 0)
	test.ExpectApproximate(t, c.Accumulator(), 10.0, 0.0001)

	test.ExpectEquality(t, c.Advance(10.0), 1)
	test.ExpectApproximate(t, c.Accumulator(), 20.0-c.Period(), 0.0001)

	// stall of one second
	test.ExpectEquality(t, c.Advance(1000.0), 60)

	c.Reset()
	test.ExpectEquality(t, c.Accumulator(), 0.0)
}

func TestFrameClockBias(t *testing.T) {
	c := pacing.NewFrameClock(pacing.NativeFPS)

	// a frame that is due in less than the bias is run now and the
	// accumulator is clamped at zero
	test.ExpectEquality(t, c.Advance(c.Period()-0.1), 1)
	test.ExpectEquality(t, c.Accumulator(), 0.0)
}

func TestFrameClockSince(t *testing.T) {
	c := pacing.NewFrameClock(pacing.NativeFPS)
	now := time.Now()

	// first call is always zero
	test.ExpectEquality(t, c.Since(now), 0.0)

	now = now.Add(20 * time.Millisecond)
	test.ExpectApproximate(t, c.Since(now), 20.0, 0.0001)

	// time going backwards is sanitised
	now = now.Add(-5 * time.Millisecond)
	test.ExpectEquality(t, c.Since(now), 0.0)
}

func TestFastForward(t *testing.T) {
	var ff pacing.FastForward
	test.ExpectEquality(t, ff.Multiplier(), 1)

	test.ExpectSuccess(t, ff.Set(3))
	test.ExpectEquality(t, ff.Multiplier(), 3)

	test.ExpectFailure(t, ff.Set(0))
	test.ExpectFailure(t, ff.Set(-1))
	test.ExpectEquality(t, ff.Multiplier(), 3)

	ff.Hold(true)
	test.ExpectEquality(t, ff.Multiplier(), pacing.HoldMultiplier)
	ff.Hold(false)
	test.ExpectEquality(t, ff.Multiplier(), 1)
}

func TestConcreteTick(t *testing.T) {
	tg := &target{loaded: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	res := sch.Tick(16.9)
	test.ExpectEquality(t, res.StepsRun, 1)
	test.ExpectSuccess(t, res.FramePresented)
	test.ExpectApproximate(t, sch.Clock.Accumulator(), 0.2333, 0.01)
	test.ExpectEquality(t, sk.swaps, 1)
}

func TestFastForwardTick(t *testing.T) {
	tg := &target{loaded: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	sch.FastForward.Set(3)
	res := sch.Tick(2 * sch.Clock.Period())
	test.ExpectEquality(t, res.StepsRun, 6)

	// all steps are run in one go with a single swap
	test.ExpectEquality(t, tg.calls, 1)
	test.ExpectEquality(t, sk.swaps, 1)
}

func TestMaxSteps(t *testing.T) {
	tg := &target{loaded: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	res := sch.Tick(10000.0)
	test.ExpectEquality(t, res.StepsRun, pacing.MaxStepsPerTick)
	test.ExpectSuccess(t, sch.Clock.Accumulator() < sch.Clock.Period())
}

func TestNoSteps(t *testing.T) {
	tg := &target{loaded: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	res := sch.Tick(5.0)
	test.ExpectEquality(t, res.StepsRun, 0)
	test.ExpectFailure(t, res.FramePresented)
	test.ExpectEquality(t, sk.swaps, 0)
	test.ExpectApproximate(t, sch.Clock.Accumulator(), 5.0, 0.0001)
}

func TestUnloaded(t *testing.T) {
	tg := &target{loaded: false, renderFirstFrame: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	res := sch.Tick(100.0)
	test.ExpectEquality(t, res, pacing.Result{})
	test.ExpectEquality(t, sch.Clock.Accumulator(), 0.0)
	test.ExpectEquality(t, tg.steps, 0)
	test.ExpectEquality(t, sk.swaps, 0)

	// flag is not consumed while unloaded
	test.ExpectSuccess(t, tg.renderFirstFrame)
}

func TestRenderFirstFrame(t *testing.T) {
	tg := &target{loaded: true, renderFirstFrame: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)
	sch.FastForward.Set(4)

	// no time has elapsed but one step is run
	res := sch.Tick(0)
	test.ExpectEquality(t, res.StepsRun, 1)
	test.ExpectSuccess(t, res.FramePresented)
	test.ExpectFailure(t, tg.renderFirstFrame)

	// a large elapsed time is ignored too, apart from being drained
	tg.renderFirstFrame = true
	res = sch.Tick(1000.0)
	test.ExpectEquality(t, res.StepsRun, 1)
	test.ExpectSuccess(t, sch.Clock.Accumulator() < sch.Clock.Period())

	// normal behaviour resumes
	res = sch.Tick(sch.Clock.Period())
	test.ExpectEquality(t, res.StepsRun, 4)
}

// for all elapsed values and multipliers the number of steps is the number of
// whole periods multiplied and capped, and the accumulator is less than one
// period afterwards
func TestStepsProperty(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for multiplier := 1; multiplier <= 8; multiplier++ {
		tg := &target{loaded: true}
		sk := &sink{}
		sch := pacing.NewScheduler(tg, sk, nil)
		sch.FastForward.Set(multiplier)

		for range 1000 {
			elapsed := rnd.Float64() * 100.0
			if rnd.IntN(10) == 0 {
				elapsed *= 10
			}

			acc := sch.Clock.Accumulator()
			n := int(math.Floor((acc + elapsed + pacing.Bias) / sch.Clock.Period()))
			expected := min(pacing.MaxStepsPerTick, n*multiplier)

			res := sch.Tick(elapsed)
			test.DemandEquality(t, res.StepsRun, expected, multiplier, elapsed)
			test.DemandEquality(t, res.FramePresented, expected > 0)

			a := sch.Clock.Accumulator()
			if a < 0 || a >= sch.Clock.Period() {
				t.Fatalf("accumulator out of range: %f", a)
			}
		}
	}
}

func TestTickAt(t *testing.T) {
	tg := &target{loaded: true}
	sk := &sink{}
	sch := pacing.NewScheduler(tg, sk, nil)

	now := time.Now()
	res := sch.TickAt(now)
	test.ExpectEquality(t, res.StepsRun, 0)

	now = now.Add(34 * time.Millisecond)
	res = sch.TickAt(now)
	test.ExpectEquality(t, res.StepsRun, 2)
}
