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

import (
	"math"
	"time"
)

// NativeFPS is the rate at which the machine expects to be stepped
const NativeFPS = 60.0

// Bias is added to the accumulator when calculating the number of whole
// periods that have elapsed. A frame that is due almost exactly now is run
// now rather than on the next tick.
const Bias = 0.2

// Period returns the length of a frame in milliseconds for the frame rate.
func Period(fps float64) float64 {
	return 1000.0 / fps
}

// FrameClock accumulates elapsed time in milliseconds and converts it into a
// number of whole frame periods.
type FrameClock struct {
	period      float64
	accumulator float64

	// the time of the most recent call to Since(). the zero value means that
	// there has been no call yet
	lastTickTime time.Time
}

// NewFrameClock is the preferred method of initialisation for the FrameClock
// type.
func NewFrameClock(fps float64) *FrameClock {
	return &FrameClock{
		period: Period(fps),
	}
}

// Period returns the length of a frame in milliseconds.
func (c *FrameClock) Period() float64 {
	return c.period
}

// Accumulator returns the amount of time, in milliseconds, that has been
// accumulated but not yet drained.
func (c *FrameClock) Accumulator() float64 {
	return c.accumulator
}

// Reset the accumulator and forget the time of the last tick.
func (c *FrameClock) Reset() {
	c.accumulator = 0
	c.lastTickTime = time.Time{}
}

// Since returns the number of milliseconds since the previous call to Since()
// and records now as the time of the most recent tick. The first call returns
// zero. The returned value is never negative and never NaN.
func (c *FrameClock) Since(now time.Time) float64 {
	if c.lastTickTime.IsZero() {
		c.lastTickTime = now
		return 0
	}

	elapsed := float64(now.Sub(c.lastTickTime)) / float64(time.Millisecond)
	c.lastTickTime = now

	if elapsed < 0 || math.IsNaN(elapsed) {
		return 0
	}
	return elapsed
}

// Advance adds the elapsed time to the accumulator and drains the number of
// whole periods that have passed. The number of whole periods is returned.
//
// The accumulator is never negative after Advance() returns and is less than
// one period if one or more periods were drained.
func (c *FrameClock) Advance(elapsed float64) int {
	c.accumulator += elapsed

	n := int(math.Floor((c.accumulator + Bias) / c.period))
	if n < 1 {
		return 0
	}

	c.accumulator = max(c.accumulator-float64(n)*c.period, 0)

	return n
}
