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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/commands"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/core/pcmplayer"
	"github.com/jetsetilly/framepace/core/testcard"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/gui/sdlplay"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/modalflag"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/pacing"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/session"
	"github.com/jetsetilly/framepace/statsview"
	"github.com/jetsetilly/framepace/terminal"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/video"
	"github.com/jetsetilly/framepace/wavwriter"
)

func init() {
	// SDL must only be used from the main thread. in PLAY mode the driver
	// loop runs on the main goroutine
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := modalflag.NewModes(output, args)
	md.AddSubMode("PLAY", "play content in a window")
	md.AddSubMode("TERM", "play content with key presses from the terminal")
	md.AddSubMode("HEADLESS", "run content for a fixed number of frames")
	md.AddSubMode("RPC", "serve the command surface over HTTP and websockets")

	log := md.AddBool("log", false, "echo log to stdout")
	prefsDir := md.AddString("prefs", "", "base directory for preferences and session files")
	setPrefs := md.AddString("setprefs", "", "preference values for this run only (key::value; ...)")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output, "")
	}

	env, err := newEnvironment(*prefsDir, *setPrefs, *log)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md, env)

	case "TERM":
		err = term(ctx, md, env, output)

	case "HEADLESS":
		err = headless(md, env, output)

	case "RPC":
		err = serve(ctx, md, env, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func newEnvironment(prefsDir string, setPrefs string, log bool) (*environment.Environment, error) {
	p, err := environment.NewPreferences(prefsDir)
	if err != nil {
		return nil, err
	}

	err = prefs.PushCommandLineStack(setPrefs)
	if err != nil {
		return nil, err
	}
	err = p.Load()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if len(unused) > 0 {
		return nil, fmt.Errorf("unrecognised preferences: %s", strings.Join(unused, ", "))
	}
	if log {
		err = p.Logging.Set(true)
		if err != nil {
			return nil, err
		}
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}
	env.Notifications = notices{env: env}

	return env, nil
}

// notices are written to the log
type notices struct {
	env *environment.Environment
}

func (n notices) Notify(notice notifications.Notice) error {
	logger.Log(n.env, "notice", notice)
	return nil
}

// options common to all modes
type options struct {
	wav         *string
	record      *string
	profile     *string
	timingMode  *int
	timingValue *int
	fastForward *int
	volume      *float64
	cheats      *bool
	state       *int
	memviz      *string
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		wav:         md.AddString("wav", "", "record audio to wav file"),
		record:      md.AddString("record", "", "record video to file with ffmpeg"),
		profile:     md.AddString("profile", string(video.ProfileFast), "video recording profile: FAST, 1080"),
		timingMode:  md.AddInt("timing", int(driver.DefaultTiming.Mode), "main loop timing mode: 0 timeout, 1 refresh, 2 immediate"),
		timingValue: md.AddInt("timingvalue", driver.DefaultTiming.Value, "main loop timing value"),
		fastForward: md.AddInt("ff", 1, "fast-forward multiplier"),
		volume:      md.AddFloat64("volume", -1, "volume in the range 0.0 to 2.0 (default from preferences)"),
		cheats:      md.AddBool("cheats", false, "enable cheats found for the content"),
		state:       md.AddInt("state", -1, "load state from slot after loading the content"),
		memviz:      md.AddString("memviz", "", "write graphviz dump of the loaded session to file"),
	}
}

// content returns the content argument. An error is returned if there are too
// many arguments or if the content is required and missing.
func content(md *modalflag.Modes, required bool) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if required {
			return "", fmt.Errorf("content required for %s mode", md)
		}
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// emulation collates the components used by every mode.
type emulation struct {
	env  *environment.Environment
	opts *options
	sink *video.Sink

	// nil if video is not being recorded
	recorder *video.Recorder

	ctrl   *session.Controller
	driver *driver.Driver
	bridge *userinput.Bridge
	cmds   *commands.Surface
}

// newEmulation creates the components of the emulation. The out argument can
// be nil.
func newEmulation(env *environment.Environment, opts *options, out audio.Output) (*emulation, error) {
	if *opts.wav != "" {
		ww, err := wavwriter.New(env, *opts.wav)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = ww
		} else {
			out = audio.NewMulti(out, ww)
		}
	}

	emu := &emulation{
		env:  env,
		opts: opts,
		sink: video.NewSink(),
	}

	if *opts.record != "" {
		var err error
		profile := video.Profile(strings.ToUpper(*opts.profile))
		emu.recorder, err = video.NewRecorder(env, *opts.record, profile, pacing.NativeFPS)
		if err != nil {
			return nil, err
		}
		out = audio.NewMulti(out, emu.recorder.Audio())
		emu.sink.SetPresenter(emu.recorder)
	}

	registry := core.NewRegistry(testcard.Factory{}, pcmplayer.Factory{})
	emu.ctrl = session.NewController(env, registry, emu.sink, out)

	sched := pacing.NewScheduler(emu.ctrl, emu.sink, nil)
	emu.driver = driver.NewDriver(env, sched)
	emu.bridge = userinput.NewBridge(emu.ctrl, sched.FastForward)
	emu.cmds = commands.NewSurface(emu.ctrl, emu.driver, emu.bridge)

	if !emu.cmds.SetMainLoopTiming(*opts.timingMode, *opts.timingValue) {
		return nil, fmt.Errorf("invalid main loop timing: %d %d", *opts.timingMode, *opts.timingValue)
	}
	if !emu.cmds.SetFastForward(*opts.fastForward) {
		return nil, fmt.Errorf("invalid fast-forward multiplier: %d", *opts.fastForward)
	}

	return emu, nil
}

// setPresenter sets the presenter for the emulation. Frames are passed to the
// presenter after being recorded.
func (emu *emulation) setPresenter(p video.Presenter) {
	if emu.recorder != nil {
		emu.recorder.SetNext(p)
		return
	}
	emu.sink.SetPresenter(p)
}

// start the emulation with the content. An empty filename leaves the
// emulation unloaded.
func (emu *emulation) start(filename string) error {
	if filename == "" {
		return nil
	}

	if !emu.cmds.Load(filename) {
		return fmt.Errorf("cannot load %s", filename)
	}

	if *emu.opts.volume >= 0 && !emu.cmds.SetVolume(*emu.opts.volume) {
		return fmt.Errorf("invalid volume: %v", *emu.opts.volume)
	}

	if *emu.opts.cheats && !emu.cmds.AutoLoadCheats() {
		fmt.Fprintf(os.Stderr, "* no cheats enabled for %s\n", filename)
	}

	if *emu.opts.state >= 0 && !emu.cmds.LoadState(*emu.opts.state) {
		return fmt.Errorf("cannot load state from slot %d", *emu.opts.state)
	}

	if *emu.opts.memviz != "" {
		f, err := os.Create(*emu.opts.memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, emu.ctrl.Session())
	}

	return nil
}

// run the driver until the context is cancelled or the driver is stopped
func (emu *emulation) run(ctx context.Context, host driver.Host) error {
	err := emu.driver.Run(ctx, host)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// end the emulation. The driver must not be running.
func (emu *emulation) end() error {
	emu.cmds.Quit()

	// the recorder needs the audio to have been written
	err := emu.ctrl.Audio().EndMixing()
	if emu.recorder != nil {
		err = errors.Join(err, emu.recorder.End())
	}

	return errors.Join(err, emu.env.Prefs.Save())
}

func play(ctx context.Context, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()

	opts := addOptions(md)
	scale := md.AddFloat64("scale", 3.0, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := content(md, true)
	if err != nil {
		return err
	}

	// the audio device can only be opened once SDL is initialised
	scr, err := sdlplay.NewSdlPlay(env, nil, float32(*scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	aud, err := sdlplay.NewAudio(env)
	if err != nil {
		return err
	}

	emu, err := newEmulation(env, opts, aud)
	if err != nil {
		return err
	}

	scr.SetBridge(emu.bridge)
	emu.setPresenter(scr)
	emu.cmds.SetCaptureHost(scr)

	err = emu.start(filename)
	if err != nil {
		return errors.Join(err, emu.end())
	}

	return errors.Join(emu.run(ctx, scr), emu.end())
}

func term(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	opts := addOptions(md)
	device := md.AddString("device", "/dev/tty", "terminal device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := content(md, true)
	if err != nil {
		return err
	}

	emu, err := newEmulation(env, opts, nil)
	if err != nil {
		return err
	}

	trm, err := terminal.NewTerminal(env, emu.driver, emu.bridge, *device, output)
	if err != nil {
		return err
	}
	defer trm.CleanUp()

	emu.setPresenter(trm)

	err = emu.start(filename)
	if err != nil {
		return errors.Join(err, emu.end())
	}

	return errors.Join(emu.run(ctx, trm), emu.end())
}
