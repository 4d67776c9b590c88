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

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/digest"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/modalflag"
	"github.com/jetsetilly/framepace/pacing"
)

func headless(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	opts := addOptions(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	screenshot := md.AddBool("screenshot", false, "save a screenshot after the last frame")
	saveState := md.AddInt("savestate", -1, "save state to slot after the last frame")
	printDigest := md.AddBool("digest", false, "print digest of video and audio output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := content(md, true)
	if err != nil {
		return err
	}

	var vdig *digest.Video
	var adig *digest.Audio
	var out audio.Output
	if *printDigest {
		adig = digest.NewAudio()
		out = adig
	}

	emu, err := newEmulation(env, opts, out)
	if err != nil {
		return err
	}

	if *printDigest {
		vdig = digest.NewVideo(nil)
		emu.setPresenter(vdig)
	}

	err = emu.start(filename)
	if err != nil {
		return errors.Join(err, emu.end())
	}

	startTime := time.Now()
	steps, ticks := runFrames(emu.driver, *frames)
	fmt.Fprintf(output, "%d frames in %d ticks (%.1f fps)\n", steps, ticks, float64(steps)/time.Since(startTime).Seconds())

	if *printDigest {
		fmt.Fprintf(output, "video digest: %s\n", vdig.Hash())
		fmt.Fprintf(output, "audio digest: %s\n", adig.Hash())
	}

	if *screenshot && !emu.cmds.Screenshot("") {
		err = fmt.Errorf("screenshot failed")
	} else if *saveState >= 0 && !emu.cmds.SaveState(*saveState) {
		err = fmt.Errorf("cannot save state to slot %d", *saveState)
	}

	return errors.Join(err, emu.end())
}

// runFrames iterates the driver with a clock that advances by exactly one
// frame period on every iteration. Returns the number of steps run and the
// number of iterations.
func runFrames(drv *driver.Driver, frames int) (int, int) {
	period := time.Duration(pacing.Period(pacing.NativeFPS) * float64(time.Millisecond))
	now := time.Now()

	var steps, ticks int
	for steps < frames && drv.Running() && !drv.Stopped() {
		now = now.Add(period)
		steps += drv.Iterate(now).StepsRun
		ticks++
	}

	return steps, ticks
}
