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

package environment

import (
	"errors"

	"github.com/jetsetilly/framepace/notifications"
)

var errVolume = errors.New("volume out of range")

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for a session.
type Environment struct {
	Label Label

	// the environment preferences
	Prefs *Preferences

	// notifications are sent to the host through this interface. can be nil
	Notifications notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil in which case a new Preferences instance will
// be created using the default paths and loaded from disk.
func NewEnvironment(label Label, prefs *Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
		err = prefs.Load()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// AllowLogging implements the logger.Permission interface
func (env *Environment) AllowLogging() bool {
	if env == nil || env.Prefs == nil {
		return false
	}
	return env.Prefs.Logging.Get().(bool)
}

// Notify forwards the notice to the host, if the host has asked for
// notifications
func (env *Environment) Notify(notice notifications.Notice) error {
	if env == nil || env.Notifications == nil {
		return nil
	}
	return env.Notifications.Notify(notice)
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}
