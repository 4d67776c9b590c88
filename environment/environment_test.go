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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/test"
)

type notices struct {
	received []notifications.Notice
}

func (n *notices) Notify(notice notifications.Notice) error {
	n.received = append(n.received, notice)
	return nil
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	prefs, err := environment.NewPreferences(dir)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, prefs.Saves.String(), filepath.Join(dir, environment.SavesDir))
	test.ExpectEquality(t, prefs.States.String(), filepath.Join(dir, environment.StatesDir))
	test.ExpectEquality(t, prefs.Cheats.String(), filepath.Join(dir, environment.CheatsDir))
	test.ExpectEquality(t, prefs.Screenshots.String(), filepath.Join(dir, environment.ScreenshotsDir))
	test.ExpectEquality(t, prefs.Volume.Get().(float64), 1.0)

	// volume outside of range is rejected
	test.ExpectFailure(t, prefs.Volume.Set(3.0))
	test.ExpectEquality(t, prefs.Volume.Get().(float64), 1.0)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	prefs, err := environment.NewPreferences(dir)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, prefs.Logging.Set(true))
	test.ExpectSuccess(t, prefs.Volume.Set(0.5))
	test.DemandSuccess(t, prefs.Save())

	prefs, err = environment.NewPreferences(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.Logging.Get().(bool), false)
	test.DemandSuccess(t, prefs.Load())
	test.ExpectEquality(t, prefs.Logging.Get().(bool), true)
	test.ExpectEquality(t, prefs.Volume.Get().(float64), 0.5)
}

func TestLoggingPermission(t *testing.T) {
	prefs, err := environment.NewPreferences(t.TempDir())
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())

	log := logger.NewLogger(10)
	w := &strings.Builder{}

	// the default environment discards all log entries
	log.Log(env, "test", "discarded")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	test.ExpectSuccess(t, prefs.Logging.Set(true))
	log.Log(env, "test", "kept")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: kept\n")
}

func TestNotify(t *testing.T) {
	prefs, err := environment.NewPreferences(t.TempDir())
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)

	// no notification receiver
	test.ExpectSuccess(t, env.Notify(notifications.NotifyScreenshot))

	n := &notices{}
	env.Notifications = n
	test.ExpectSuccess(t, env.Notify(notifications.NotifyScreenshot))
	test.ExpectEquality(t, len(n.received), 1)
}
