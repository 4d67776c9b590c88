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

package commands_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/commands"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/core/testcard"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/pacing"
	"github.com/jetsetilly/framepace/savestate"
	"github.com/jetsetilly/framepace/session"
	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/video"
)

type fixture struct {
	dir    string
	game   string
	out    *audio.Discard
	ctrl   *session.Controller
	driver *driver.Driver
	cmds   *commands.Surface
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	p, err := environment.NewPreferences(dir)
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	f := &fixture{
		dir:  dir,
		game: filepath.Join(dir, "game"+testcard.Extension),
		out:  &audio.Discard{},
		now:  time.Now(),
	}
	test.DemandSuccess(t, os.WriteFile(f.game, []byte("TESTCARD"), 0o600))

	sink := video.NewSink()
	f.ctrl = session.NewController(env, core.NewRegistry(testcard.Factory{}), sink, f.out)
	sched := pacing.NewScheduler(f.ctrl, sink, nil)
	f.driver = driver.NewDriver(env, sched)
	f.cmds = commands.NewSurface(f.ctrl, f.driver, userinput.NewBridge(f.ctrl, sched.FastForward))

	return f
}

// advance the fixture's clock by the number of frame periods and iterate the
// driver
func (f *fixture) iterate(periods float64) pacing.Result {
	f.now = f.now.Add(time.Duration(periods * pacing.Period(pacing.NativeFPS) * float64(time.Millisecond)))
	return f.driver.Iterate(f.now)
}

func (f *fixture) machine() *testcard.Testcard {
	return f.ctrl.Session().Core().(*testcard.Testcard)
}

func TestLoadQuit(t *testing.T) {
	f := newFixture(t)

	test.ExpectFailure(t, f.cmds.Load(filepath.Join(f.dir, "missing.tcd")))
	test.ExpectFailure(t, f.driver.Running())

	test.ExpectSuccess(t, f.cmds.Load(f.game))
	test.ExpectSuccess(t, f.driver.Running())

	// the first tick runs exactly one frame
	r := f.iterate(0)
	test.ExpectEquality(t, r, pacing.Result{StepsRun: 1, FramePresented: true})

	r = f.iterate(1)
	test.ExpectEquality(t, r.StepsRun, 1)
	test.ExpectEquality(t, f.machine().Frame(), uint32(2))

	f.cmds.Quit()
	test.ExpectFailure(t, f.driver.Running())
	test.ExpectEquality(t, f.ctrl.State(), session.Unloaded)
	test.ExpectEquality(t, f.iterate(1), pacing.Result{})

	// quit is idempotent
	f.cmds.Quit()
	test.ExpectEquality(t, f.ctrl.State(), session.Unloaded)
}

func TestUnloaded(t *testing.T) {
	f := newFixture(t)

	test.ExpectFailure(t, f.cmds.Reset())
	test.ExpectFailure(t, f.cmds.SaveState(0))
	test.ExpectFailure(t, f.cmds.LoadState(0))
	test.ExpectFailure(t, f.cmds.Screenshot(""))
	test.ExpectFailure(t, f.cmds.AutoLoadCheats())
	test.ExpectFailure(t, f.cmds.BindKey("q", testcard.ButtonA))
	test.ExpectFailure(t, f.cmds.RegisterCallbacks(core.Callbacks{}))
	test.ExpectFailure(t, f.cmds.SetVolume(1.0))
	test.ExpectEquality(t, f.cmds.GetVolume(), 0.0)

	// these are silently ignored
	f.cmds.ButtonDown(0)
	f.cmds.ButtonUp(0)
	f.cmds.Resume()
	test.ExpectFailure(t, f.driver.Running())
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	f.iterate(0)

	f.cmds.Pause()
	test.ExpectFailure(t, f.driver.Running())
	test.ExpectSuccess(t, f.out.Muted)
	test.ExpectEquality(t, f.iterate(10), pacing.Result{})

	f.cmds.Resume()
	test.ExpectSuccess(t, f.driver.Running())
	test.ExpectFailure(t, f.out.Muted)

	// a single frame is rendered after a resume whatever the time elapsed
	test.ExpectEquality(t, f.iterate(0).StepsRun, 1)
}

func TestFastForward(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	f.iterate(0)

	test.ExpectFailure(t, f.cmds.SetFastForward(0))
	test.ExpectFailure(t, f.cmds.SetFastForward(-1))
	test.ExpectEquality(t, f.cmds.GetFastForward(), 1)

	test.ExpectSuccess(t, f.cmds.SetFastForward(3))
	test.ExpectEquality(t, f.cmds.GetFastForward(), 3)
	test.ExpectEquality(t, f.out.FPSTarget, 180.0)
	test.ExpectEquality(t, f.ctrl.Session().Config.Frameskip.Get().(int), 2)

	test.ExpectEquality(t, f.iterate(1).StepsRun, 3)
	test.ExpectEquality(t, f.iterate(2).StepsRun, 6)

	// steps are capped however far behind the clock is
	test.ExpectEquality(t, f.iterate(100).StepsRun, pacing.MaxStepsPerTick)

	// the frameskip follows the multiplier into a new session
	test.DemandSuccess(t, f.cmds.Load(f.game))
	test.ExpectEquality(t, f.ctrl.Session().Config.Frameskip.Get().(int), 2)

	test.ExpectSuccess(t, f.cmds.SetFastForward(1))
	test.ExpectEquality(t, f.ctrl.Session().Config.Frameskip.Get().(int), 0)
	test.ExpectEquality(t, f.out.FPSTarget, 60.0)
}

func TestFastForwardKey(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	f.iterate(0)

	b := f.cmds.Bridge()
	b.KeyEvent(userinput.EventKeyboard{Key: "f", Down: true})
	test.ExpectEquality(t, f.cmds.GetFastForward(), 2)
	test.ExpectEquality(t, f.iterate(1).StepsRun, 2)

	b.KeyEvent(userinput.EventKeyboard{Key: "f", Down: false})
	test.ExpectEquality(t, f.cmds.GetFastForward(), 1)
	test.ExpectEquality(t, f.iterate(1).StepsRun, 1)
}

func TestButtons(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	tc := f.machine()

	f.cmds.ButtonDown(testcard.ButtonRight)
	test.ExpectEquality(t, tc.Keys(), uint32(1<<testcard.ButtonRight))
	f.iterate(0)
	test.ExpectEquality(t, tc.Read8(testcard.MarkerX), uint8(testcard.Width/2+1))

	f.cmds.ButtonUp(testcard.ButtonRight)
	test.ExpectEquality(t, tc.Keys(), uint32(0))

	// out of range buttons are ignored
	f.cmds.ButtonDown(32)
	f.cmds.ButtonDown(-1)
	test.ExpectEquality(t, tc.Keys(), uint32(0))
}

func TestBindKey(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	tc := f.machine()

	test.ExpectSuccess(t, f.cmds.BindKey("Q", testcard.ButtonB))
	f.cmds.Bridge().KeyEvent(userinput.EventKeyboard{Key: "q", Down: true})
	test.ExpectEquality(t, tc.Keys(), uint32(1<<testcard.ButtonB))

	// bindings do not survive a load
	test.DemandSuccess(t, f.cmds.Load(f.game))
	_, ok := f.ctrl.InputMap().Lookup("q")
	test.ExpectFailure(t, ok)
}

func TestStates(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	f.iterate(0)
	f.iterate(4)
	test.ExpectEquality(t, f.machine().Frame(), uint32(5))

	test.ExpectSuccess(t, f.cmds.SaveState(2))
	f.iterate(3)
	test.ExpectSuccess(t, f.cmds.LoadState(2))
	test.ExpectEquality(t, f.machine().Frame(), uint32(5))

	test.ExpectSuccess(t, f.cmds.SaveStateSlot(3, savestate.FlagSaveData))
	test.ExpectSuccess(t, f.cmds.LoadStateSlot(3, savestate.FlagVideo))
	test.ExpectFailure(t, f.cmds.LoadState(4))
}

func TestVolume(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))

	test.ExpectSuccess(t, f.cmds.SetVolume(0.25))
	test.ExpectEquality(t, f.cmds.GetVolume(), 0.25)
	test.ExpectFailure(t, f.cmds.SetVolume(3.0))
	test.ExpectEquality(t, f.cmds.GetVolume(), 0.25)
}

func TestScreenshotAndCheats(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))
	f.iterate(0)

	test.ExpectSuccess(t, f.cmds.Screenshot(""))
	_, err := os.Stat(filepath.Join(f.dir, environment.ScreenshotsDir, "game-0.png"))
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, f.cmds.AutoLoadCheats())

	dir := filepath.Join(f.dir, environment.CheatsDir)
	test.DemandSuccess(t, os.MkdirAll(dir, 0o700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "game.cheats"),
		[]byte("cheats = 1\ncheat0_desc = \"x\"\ncheat0_enable = true\ncheat0_code = \"02000200:05\"\n"), 0o600))
	test.ExpectSuccess(t, f.cmds.AutoLoadCheats())
}

func TestCallbacks(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))

	var frames int
	test.ExpectSuccess(t, f.cmds.RegisterCallbacks(core.Callbacks{
		VideoFrameEnded: func() { frames++ },
	}))
	f.iterate(0)
	f.iterate(2)
	test.ExpectEquality(t, frames, 3)

	test.ExpectSuccess(t, f.cmds.RegisterCallbacks(core.Callbacks{}))
	f.iterate(1)
	test.ExpectEquality(t, frames, 3)
}

type capture struct {
	enabled []bool
}

func (c *capture) SetEventCapture(enabled bool) {
	c.enabled = append(c.enabled, enabled)
}

func TestEventCapture(t *testing.T) {
	f := newFixture(t)

	// no capture host
	f.cmds.SetEventCapture(false)

	c := &capture{}
	f.cmds.SetCaptureHost(c)
	f.cmds.SetEventCapture(false)
	f.cmds.SetEventCapture(true)
	test.ExpectEquality(t, len(c.enabled), 2)
	test.ExpectFailure(t, c.enabled[0])
	test.ExpectSuccess(t, c.enabled[1])
}

func TestMainLoopTiming(t *testing.T) {
	f := newFixture(t)

	mode, value := f.cmds.MainLoopTiming()
	test.ExpectEquality(t, mode, int(driver.TimingRefresh))
	test.ExpectEquality(t, value, 1)

	test.ExpectSuccess(t, f.cmds.SetMainLoopTiming(int(driver.TimingSetTimeout), 10))
	mode, value = f.cmds.MainLoopTiming()
	test.ExpectEquality(t, mode, int(driver.TimingSetTimeout))
	test.ExpectEquality(t, value, 10)

	test.ExpectFailure(t, f.cmds.SetMainLoopTiming(int(driver.TimingRefresh), 0))
	mode, _ = f.cmds.MainLoopTiming()
	test.ExpectEquality(t, mode, int(driver.TimingSetTimeout))
}

func TestShutdown(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.cmds.Load(f.game))

	f.cmds.Shutdown()
	test.ExpectEquality(t, f.ctrl.State(), session.Unloaded)
	test.ExpectSuccess(t, f.driver.Stopped())
	test.ExpectInequality(t, f.cmds.Version(), "")
}
