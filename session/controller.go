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

package session

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/cheats"
	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/video"
)

const logTag = "session"

// Controller owns the session lifecycle.
type Controller struct {
	env      *environment.Environment
	registry *core.Registry
	sink     *video.Sink
	audio    audio.Output

	// used when applying the key binding profile
	resolver userinput.KeyResolver

	state   State
	session *Session

	// audio stays muted while paused, even if the volume changes
	paused bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The audio output can be nil, in which case audio is discarded.
func NewController(env *environment.Environment, registry *core.Registry, sink *video.Sink, out audio.Output) *Controller {
	if out == nil {
		out = &audio.Discard{}
	}
	return &Controller{
		env:      env,
		registry: registry,
		sink:     sink,
		audio:    out,
		resolver: userinput.NameResolver{},
		state:    Unloaded,
	}
}

// SetKeyResolver sets the resolver used to apply the key binding profile on
// the next Load(). A nil value reverts to userinput.NameResolver.
func (c *Controller) SetKeyResolver(r userinput.KeyResolver) {
	if r == nil {
		r = userinput.NameResolver{}
	}
	c.resolver = r
}

// State returns the current state of the controller.
func (c *Controller) State() State {
	return c.state
}

// Session returns the loaded session. Returns nil if the controller is
// Unloaded.
func (c *Controller) Session() *Session {
	return c.session
}

// Sink returns the video sink shared with the host.
func (c *Controller) Sink() *video.Sink {
	return c.sink
}

// Audio returns the audio output given to every machine.
func (c *Controller) Audio() audio.Output {
	return c.audio
}

// Environment returns the environment the controller was created with.
func (c *Controller) Environment() *environment.Environment {
	return c.env
}

func (c *Controller) notify(notice notifications.Notice) {
	if err := c.env.Notify(notice); err != nil {
		logger.Log(c.env, logTag, err)
	}
}

func (c *Controller) loaded() (*Session, error) {
	if c.state != Loaded || c.session == nil {
		return nil, curated.Errorf(NotLoaded)
	}
	return c.session, nil
}

// Load content into a new session. Any existing session is quit first, even
// if the new content cannot be loaded.
func (c *Controller) Load(name string) error {
	c.Quit()

	cl := contentloader.NewLoader(name)
	if err := cl.Load(); err != nil {
		return curated.Errorf(LoadFailure, err)
	}

	f, ok := c.registry.Find(cl)
	if !ok {
		return curated.Errorf(LoadFailure, fmt.Sprintf("unrecognised content (%s)", name))
	}

	m, err := f.Create(c.env, cl)
	if err != nil {
		return curated.Errorf(LoadFailure, err)
	}

	s := &Session{
		ID:        uuid.New(),
		Filename:  cl.Filename,
		ContentID: cl.ContentID(),
		Dirs:      newDirs(c.env.Prefs),
		Config:    core.NewConfig(),
		Cheats:    &cheats.Device{},
		core:      m,
	}

	vol := int(c.env.Prefs.Volume.Get().(float64) * core.DefaultVolume)
	if err := s.Config.Volume.Set(vol); err != nil {
		logger.Log(c.env, logTag, err)
	}
	for _, opt := range []string{core.OptionIdleOptimization, core.OptionVolume, core.OptionFrameskip} {
		m.ReloadConfigOption(opt, s.Config)
	}

	info := m.InputInfo()
	s.InputMap = userinput.NewInputMap(info.DefaultKeys)
	profile, err := userinput.LoadProfile(c.env.Prefs.Profile.Get().(string))
	if err != nil {
		logger.Log(c.env, logTag, err)
	} else if err := profile.Apply(f.ID(), info.Buttons, s.InputMap, c.resolver); err != nil {
		logger.Log(c.env, logTag, err)
	}

	if err := c.loadSaveData(s); err != nil {
		logger.Log(c.env, logTag, err)
	}

	if _, err := c.loadCheats(s); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log(c.env, logTag, err)
	}

	w, h := m.BaseVideoSize()
	if err := c.sink.Resize(w, h, m); err != nil {
		m.Deinit()
		return curated.Errorf(LoadFailure, err)
	}

	m.SetAudioOutput(c.audio)
	m.SetCallbacks(c.coreCallbacks(s))
	m.Reset()

	s.renderFirstFrame = true
	c.session = s
	c.state = Loaded
	c.paused = false
	c.updateMute()

	logger.Logf(c.env, logTag, "%s: loaded %s with %s", s.ID, s.ContentID, f.ID())
	c.notify(notifications.NotifyLoaded)

	return nil
}

// Quit the current session. Does nothing if the controller is Unloaded.
func (c *Controller) Quit() {
	if c.state != Loaded {
		return
	}

	s := c.session
	c.audio.SetMute(true)
	s.core.Deinit()
	c.sink.Release()

	c.session = nil
	c.state = Unloaded

	logger.Logf(c.env, logTag, "%s: quit", s.ID)
	c.notify(notifications.NotifyUnloaded)
}

// Reset the machine in place. Save data survives the reset.
func (c *Controller) Reset() error {
	s, err := c.loaded()
	if err != nil {
		return err
	}
	s.core.Reset()
	s.renderFirstFrame = true
	c.notify(notifications.NotifyReset)
	return nil
}

// Pause mutes audio. The caller is responsible for not ticking the scheduler
// while paused.
func (c *Controller) Pause() {
	c.paused = true
	c.audio.SetMute(true)
	if c.session != nil {
		c.session.renderFirstFrame = true
	}
	c.notify(notifications.NotifyPause)
}

// Resume unmutes audio if the volume is above zero.
func (c *Controller) Resume() {
	c.paused = false
	c.updateMute()
	if c.session != nil {
		c.session.renderFirstFrame = true
	}
	c.notify(notifications.NotifyResume)
}

// Paused returns true if Pause() has been called more recently than Resume()
// or Load().
func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) updateMute() {
	if c.session == nil {
		c.audio.SetMute(true)
		return
	}
	c.audio.SetMute(c.paused || c.session.Config.Volume.Get().(int) == 0)
}

// RegisterCallbacks replaces every callback of the session. Slots that are
// nil in cb are cleared.
func (c *Controller) RegisterCallbacks(cb core.Callbacks) error {
	s, err := c.loaded()
	if err != nil {
		return err
	}
	s.callbacks = cb
	s.core.SetCallbacks(c.coreCallbacks(s))
	return nil
}

// the callbacks given to the machine. save data is written before the host
// callback is called
func (c *Controller) coreCallbacks(s *Session) core.Callbacks {
	cb := s.callbacks

	cb.SaveDataUpdated = func() {
		if err := c.writeSaveData(s); err != nil {
			logger.Log(c.env, logTag, err)
		}
		if s.callbacks.SaveDataUpdated != nil {
			s.callbacks.SaveDataUpdated()
		}
	}

	cb.Crashed = func() {
		logger.Logf(c.env, logTag, "%s: machine has crashed", s.ID)
		if s.callbacks.Crashed != nil {
			s.callbacks.Crashed()
		}
	}

	return cb
}

// SetOption changes a configuration option and pushes it to the machine.
func (c *Controller) SetOption(option string, value prefs.Value) error {
	s, err := c.loaded()
	if err != nil {
		return err
	}
	if err := s.Config.Set(option, value); err != nil {
		return err
	}
	s.core.ReloadConfigOption(option, s.Config)
	return nil
}

// SetVolume sets the volume as a fraction of full volume. The value must be
// between 0.0 and 2.0 inclusive. Audio is muted while the volume is zero.
func (c *Controller) SetVolume(v float64) error {
	if _, err := c.loaded(); err != nil {
		return err
	}
	if v < 0.0 || v > 2.0 || v != v {
		return curated.Errorf(ConfigInvalid, fmt.Sprintf("%s (%v)", core.OptionVolume, v))
	}
	if err := c.SetOption(core.OptionVolume, int(v*core.DefaultVolume)); err != nil {
		return err
	}
	c.updateMute()
	return nil
}

// Volume returns the configured volume as a fraction of full volume. Returns
// zero if the controller is Unloaded.
func (c *Controller) Volume() float64 {
	if c.session == nil {
		return 0.0
	}
	return c.session.Config.VolumeLevel()
}

// SetFrameskip sets the number of frames that are not rendered for every
// frame that is.
func (c *Controller) SetFrameskip(n int) error {
	return c.SetOption(core.OptionFrameskip, n)
}

// Loaded implements the pacing.Target interface.
func (c *Controller) Loaded() bool {
	return c.state == Loaded
}

// ConsumeRenderFirstFrame implements the pacing.Target interface.
func (c *Controller) ConsumeRenderFirstFrame() bool {
	if c.session == nil || !c.session.renderFirstFrame {
		return false
	}
	c.session.renderFirstFrame = false
	return true
}

// RunSteps implements the pacing.Target interface. Enabled cheats are applied
// after every step.
func (c *Controller) RunSteps(n int) {
	for range n {
		s := c.session
		if s == nil {
			return
		}
		s.core.RunFrame()

		// a callback may have quit or replaced the session
		if c.session != s {
			return
		}
		s.Cheats.Apply(s.core)
	}
}

// AddKeys implements the userinput.Target interface.
func (c *Controller) AddKeys(mask uint32) {
	if c.session != nil {
		c.session.core.AddKeys(mask)
	}
}

// ClearKeys implements the userinput.Target interface.
func (c *Controller) ClearKeys(mask uint32) {
	if c.session != nil {
		c.session.core.ClearKeys(mask)
	}
}

// InputMap implements the userinput.Target interface.
func (c *Controller) InputMap() userinput.InputMap {
	if c.session == nil {
		return nil
	}
	return c.session.InputMap
}
