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

package commands

import (
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/pacing"
	"github.com/jetsetilly/framepace/savestate"
	"github.com/jetsetilly/framepace/session"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/version"
)

const logTag = "commands"

// EventCapture is implemented by hosts that can stop delivering input events
// to the emulation. For example, while a text field outside of the emulation
// has focus.
type EventCapture interface {
	SetEventCapture(enabled bool)
}

// Surface collates the components controlled by the host.
type Surface struct {
	env     *environment.Environment
	ctrl    *session.Controller
	driver  *driver.Driver
	bridge  *userinput.Bridge
	capture EventCapture
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(ctrl *session.Controller, drv *driver.Driver, bridge *userinput.Bridge) *Surface {
	return &Surface{
		env:    ctrl.Environment(),
		ctrl:   ctrl,
		driver: drv,
		bridge: bridge,
	}
}

// SetCaptureHost sets the host that receives SetEventCapture() requests. Can
// be nil.
func (s *Surface) SetCaptureHost(c EventCapture) {
	s.capture = c
}

// Controller returns the session controller.
func (s *Surface) Controller() *session.Controller {
	return s.ctrl
}

// Bridge returns the input bridge.
func (s *Surface) Bridge() *userinput.Bridge {
	return s.bridge
}

func (s *Surface) fastForward() *pacing.FastForward {
	return s.driver.Scheduler().FastForward
}

// logs the error and returns true if the error is nil
func (s *Surface) check(err error) bool {
	if err != nil {
		logger.Log(s.env, logTag, err)
		return false
	}
	return true
}

// Load the content and start the driver. Returns false if the content cannot
// be loaded, in which case there is no loaded content and the driver is
// paused.
func (s *Surface) Load(name string) bool {
	if !s.check(s.ctrl.Load(name)) {
		s.driver.Pause()
		return false
	}

	// the fast-forward multiplier survives the load. the frameskip of the new
	// session must follow it
	if m := s.fastForward().Multiplier(); m > 1 {
		s.check(s.ctrl.SetFrameskip(m - 1))
	}

	s.driver.Scheduler().Clock.Reset()
	s.driver.Resume()
	return true
}

// Quit the loaded content and pause the driver.
func (s *Surface) Quit() {
	s.ctrl.Quit()
	s.driver.Pause()
}

// Reset the loaded content.
func (s *Surface) Reset() bool {
	return s.check(s.ctrl.Reset())
}

// Pause the driver and mute audio.
func (s *Surface) Pause() {
	s.ctrl.Pause()
	s.driver.Pause()
}

// Resume the driver. Does nothing if there is no loaded content.
func (s *Surface) Resume() {
	if !s.ctrl.Loaded() {
		return
	}
	s.ctrl.Resume()
	s.driver.Resume()
}

// ButtonDown presses the button. Button IDs are the bit numbers of the
// machine's button mask.
func (s *Surface) ButtonDown(id int) {
	if id < 0 || id > 31 {
		return
	}
	s.ctrl.AddKeys(1 << id)
}

// ButtonUp releases the button.
func (s *Surface) ButtonUp(id int) {
	if id < 0 || id > 31 {
		return
	}
	s.ctrl.ClearKeys(1 << id)
}

// SetVolume sets the volume as a fraction of full volume in the range 0.0 to
// 2.0. Values outside the range are ignored.
func (s *Surface) SetVolume(v float64) bool {
	return s.check(s.ctrl.SetVolume(v))
}

// GetVolume returns the volume. Zero if there is no loaded content.
func (s *Surface) GetVolume() float64 {
	return s.ctrl.Volume()
}

// SetFastForward sets the fast-forward multiplier. The multiplier also sets
// the frameskip of the loaded content and the target frame rate of the audio
// output. Multipliers less than one are ignored.
func (s *Surface) SetFastForward(multiplier int) bool {
	if !s.fastForward().Set(multiplier) {
		logger.Logf(s.env, logTag, "illegal fast-forward multiplier (%d)", multiplier)
		return false
	}

	s.ctrl.Audio().SetFPSTarget(pacing.NativeFPS * float64(multiplier))
	if s.ctrl.Loaded() {
		s.check(s.ctrl.SetFrameskip(multiplier - 1))
	}

	if err := s.env.Notify(notifications.NotifyFastForward); err != nil {
		logger.Log(s.env, logTag, err)
	}
	return true
}

// GetFastForward returns the fast-forward multiplier.
func (s *Surface) GetFastForward() int {
	return s.fastForward().Multiplier()
}

// SaveState saves everything to the slot.
func (s *Surface) SaveState(slot int) bool {
	return s.SaveStateSlot(slot, savestate.FlagAll)
}

// SaveStateSlot saves the parts of the session selected by flags to the slot.
func (s *Surface) SaveStateSlot(slot int, flags savestate.Flags) bool {
	return s.check(s.ctrl.SaveState(slot, flags))
}

// LoadState restores everything from the slot.
func (s *Surface) LoadState(slot int) bool {
	return s.LoadStateSlot(slot, savestate.FlagAll)
}

// LoadStateSlot restores the parts of the session selected by flags from the
// slot.
func (s *Surface) LoadStateSlot(slot int, flags savestate.Flags) bool {
	return s.check(s.ctrl.LoadState(slot, flags))
}

// Screenshot writes the most recent frame to the screenshots directory. An
// empty filename selects the next available name for the content.
func (s *Surface) Screenshot(fileName string) bool {
	_, err := s.ctrl.Screenshot(fileName)
	return s.check(err)
}

// AutoLoadCheats loads the cheats file for the content. Returns true if at
// least one enabled cheat set was loaded.
func (s *Surface) AutoLoadCheats() bool {
	ok, err := s.ctrl.AutoLoadCheats()
	return s.check(err) && ok
}

// BindKey binds the named host key to the button.
func (s *Surface) BindKey(name string, button int) bool {
	if !s.bridge.BindKey(name, button) {
		logger.Logf(s.env, logTag, "cannot bind %s to button %d", name, button)
		return false
	}
	return true
}

// RegisterCallbacks replaces every callback. Slots left nil are cleared.
func (s *Surface) RegisterCallbacks(cb core.Callbacks) bool {
	return s.check(s.ctrl.RegisterCallbacks(cb))
}

// SetEventCapture enables or disables the delivery of input events by the
// host.
func (s *Surface) SetEventCapture(enabled bool) {
	if s.capture != nil {
		s.capture.SetEventCapture(enabled)
	}
}

// MainLoopTiming returns the timing mode and value of the driver.
func (s *Surface) MainLoopTiming() (int, int) {
	t := s.driver.Timing()
	return int(t.Mode), t.Value
}

// SetMainLoopTiming changes the timing of the driver.
func (s *Surface) SetMainLoopTiming(mode int, value int) bool {
	return s.check(s.driver.SetTiming(driver.Timing{
		Mode:  driver.TimingMode(mode),
		Value: value,
	}))
}

// Shutdown quits the loaded content and stops the driver. The process is not
// terminated.
func (s *Surface) Shutdown() {
	s.ctrl.Quit()
	s.driver.Stop()
}

// Version returns the application name and version.
func (s *Surface) Version() string {
	return version.String()
}
