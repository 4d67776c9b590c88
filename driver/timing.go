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
	"fmt"
	"time"

	"github.com/jetsetilly/framepace/pacing"
)

// TimingMode selects how the interval between iterations is measured. The
// numbering matches the main loop timing modes of browser hosts.
type TimingMode int

// List of timing modes.
const (
	// the timing value is the number of milliseconds between iterations
	TimingSetTimeout TimingMode = iota

	// the timing value is the number of display refreshes between iterations
	TimingRefresh

	// iterations follow each other as soon as possible. the timing value is
	// ignored
	TimingImmediate
)

func (m TimingMode) String() string {
	switch m {
	case TimingSetTimeout:
		return "timeout"
	case TimingRefresh:
		return "refresh"
	case TimingImmediate:
		return "immediate"
	}
	return "unknown timing mode"
}

// Timing of the driver loop.
type Timing struct {
	Mode  TimingMode
	Value int
}

// DefaultTiming is one iteration per display refresh.
var DefaultTiming = Timing{Mode: TimingRefresh, Value: 1}

// Validate returns an error if the timing cannot be used.
func (t Timing) Validate() error {
	switch t.Mode {
	case TimingSetTimeout:
		if t.Value < 0 {
			return fmt.Errorf("driver: timeout value must not be negative (%d)", t.Value)
		}
	case TimingRefresh:
		if t.Value < 1 {
			return fmt.Errorf("driver: refresh value must be positive (%d)", t.Value)
		}
	case TimingImmediate:
	default:
		return fmt.Errorf("driver: %s (%d)", t.Mode, int(t.Mode))
	}
	return nil
}

// Interval returns the time between iterations.
func (t Timing) Interval() time.Duration {
	switch t.Mode {
	case TimingSetTimeout:
		return time.Duration(t.Value) * time.Millisecond
	case TimingRefresh:
		return time.Duration(float64(t.Value) * pacing.Period(pacing.NativeFPS) * float64(time.Millisecond))
	}
	return 0
}

func (t Timing) String() string {
	return fmt.Sprintf("%s %d", t.Mode, t.Value)
}
