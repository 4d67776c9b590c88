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

package driver

import (
	"context"
	"sync"
	"time"

	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/pacing"
)

const logTag = "driver"

// size of the queue of posted functions
const queueSize = 4096

// Host is serviced once per iteration before the scheduler is ticked. The
// host should poll for input events and forward them without blocking.
// Returning false stops the driver.
type Host interface {
	Service() bool
}

// Driver calls the scheduler repeatedly.
type Driver struct {
	env       *environment.Environment
	scheduler *pacing.Scheduler

	queue chan func()
	wake  chan struct{}

	// the fields below are only accessed by the driver goroutine, or before
	// Run() is called
	running bool
	timing  Timing

	stopOnce sync.Once
	stopped  chan struct{}

	// the result of the most recent tick
	last pacing.Result
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The driver starts paused.
func NewDriver(env *environment.Environment, scheduler *pacing.Scheduler) *Driver {
	return &Driver{
		env:       env,
		scheduler: scheduler,
		queue:     make(chan func(), queueSize),
		wake:      make(chan struct{}, 1),
		timing:    DefaultTiming,
		stopped:   make(chan struct{}),
	}
}

// Scheduler returns the scheduler ticked by the driver.
func (d *Driver) Scheduler() *pacing.Scheduler {
	return d.scheduler
}

// Post a function to be run by the driver goroutine before the next tick.
// Returns false if the queue is full or the driver has stopped.
func (d *Driver) Post(f func()) bool {
	if d.Stopped() {
		return false
	}
	select {
	case d.queue <- f:
	default:
		logger.Log(d.env, logTag, "dropped posted function")
		return false
	}
	d.alert()
	return true
}

// Do posts the function and waits for it to complete. Returns false if the
// function could not be posted or if the driver stopped before running it.
//
// Do must not be called from the driver goroutine.
func (d *Driver) Do(f func()) bool {
	done := make(chan struct{})
	if !d.Post(func() {
		f()
		close(done)
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-d.stopped:
		return false
	}
}

func (d *Driver) alert() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Driver) drain() {
	for {
		select {
		case f := <-d.queue:
			f()
		default:
			return
		}
	}
}

// Pause stops the scheduler from being ticked. Posted functions are still
// run.
func (d *Driver) Pause() {
	d.running = false
}

// Resume ticking the scheduler.
func (d *Driver) Resume() {
	d.running = true
	d.alert()
}

// Running returns true if the scheduler is being ticked.
func (d *Driver) Running() bool {
	return d.running
}

// Timing returns the current timing of the driver.
func (d *Driver) Timing() Timing {
	return d.timing
}

// SetTiming changes the timing of the driver. The timing is unchanged if the
// new timing is invalid.
func (d *Driver) SetTiming(t Timing) error {
	if err := t.Validate(); err != nil {
		return err
	}
	d.timing = t
	logger.Logf(d.env, logTag, "timing: %s", t)
	return nil
}

// Stop the driver. Run() returns at the end of the current iteration. Stop
// can be called from any goroutine.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopped)
	})
}

// Stopped returns true if Stop() has been called.
func (d *Driver) Stopped() bool {
	select {
	case <-d.stopped:
		return true
	default:
		return false
	}
}

// Last returns the result of the most recent tick.
func (d *Driver) Last() pacing.Result {
	return d.last
}

// Iterate performs one iteration of the driver loop: posted functions are
// run and then, if the driver is running, the scheduler is ticked. Run()
// calls Iterate() repeatedly. It is exported for hosts that own the loop.
func (d *Driver) Iterate(now time.Time) pacing.Result {
	d.drain()
	if !d.running {
		d.last = pacing.Result{}
		return d.last
	}
	d.last = d.scheduler.TickAt(now)
	return d.last
}

// Run the driver until the context is cancelled, Stop() is called, or the
// host asks to stop. The host can be nil.
func (d *Driver) Run(ctx context.Context, host Host) error {
	logger.Logf(d.env, logTag, "running (%s)", d.timing)
	defer logger.Log(d.env, logTag, "stopped")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stopped:
			return nil
		default:
		}

		if host != nil && !host.Service() {
			d.Stop()
			return nil
		}

		d.Iterate(time.Now())

		// while paused the loop only wakes for posted functions or to
		// service the host
		interval := d.timing.Interval()
		if !d.running && interval < idleInterval {
			interval = idleInterval
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stopped:
			return nil
		case <-d.wake:
		case <-timer.C:
		}
	}
}

// the longest wait between iterations while paused
const idleInterval = 50 * time.Millisecond
