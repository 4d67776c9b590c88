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

package terminal

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/video"
	"github.com/pkg/term"
)

const logTag = "terminal"

// Sentinel error returned when the terminal cannot be opened.
const (
	Unavailable = "terminal: unavailable: %v"
)

// Terminal reads key presses from a terminal in raw mode and posts them to
// the driver. It implements the driver.Host and video.Presenter interfaces.
type Terminal struct {
	env    *environment.Environment
	driver *driver.Driver
	held   *Held

	tty    *term.Term
	output io.Writer

	// set by the reader goroutine when the interrupt key is pressed or the
	// input is closed
	quit atomic.Bool

	// frame count for the status line
	frames     int
	statusTime time.Time
}

// NewTerminal opens the named terminal device in raw mode. The device is
// normally "/dev/tty". Status lines are written to output.
func NewTerminal(env *environment.Environment, drv *driver.Driver, bridge *userinput.Bridge, device string, output io.Writer) (*Terminal, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(Unavailable, err)
	}

	trm := &Terminal{
		env:        env,
		driver:     drv,
		held:       NewHeld(bridge, HoldTime),
		tty:        tty,
		output:     output,
		statusTime: time.Now(),
	}

	go trm.read()

	return trm, nil
}

// CleanUp restores the terminal to the state it was in before NewTerminal().
func (trm *Terminal) CleanUp() {
	if trm.tty == nil {
		return
	}
	_ = trm.tty.Restore()
	_ = trm.tty.Close()
	trm.tty = nil
}

func (trm *Terminal) read() {
	b := make([]byte, 16)
	for {
		n, err := trm.tty.Read(b)
		if err != nil {
			if err != io.EOF {
				logger.Log(trm.env, logTag, err)
			}
			trm.quit.Store(true)
			return
		}

		keys := Decode(b[:n])
		if len(keys) == 0 {
			continue
		}

		now := time.Now()
		ok := trm.driver.Post(func() {
			for _, k := range keys {
				trm.held.Press(k, now)
			}
		})
		if !ok {
			logger.Logf(trm.env, logTag, "dropped %d keys", len(keys))
		}

		for _, k := range keys {
			if k.Quit {
				trm.quit.Store(true)
				return
			}
		}
	}
}

// Service implements the driver.Host interface. Held keys that have not been
// reported recently are released.
func (trm *Terminal) Service() bool {
	if trm.quit.Load() {
		trm.held.ReleaseAll()
		return false
	}
	trm.held.Expire(time.Now())
	return true
}

// Present implements the video.Presenter interface.
func (trm *Terminal) Present(buf *video.Buffer) {
	trm.frames++

	now := time.Now()
	d := now.Sub(trm.statusTime)
	if d < time.Second {
		return
	}

	// raw mode needs an explicit carriage return
	fmt.Fprintf(trm.output, "\r%dx%d %.1f fps\x1b[K", buf.Width, buf.Height, float64(trm.frames)/d.Seconds())

	trm.frames = 0
	trm.statusTime = now
}
