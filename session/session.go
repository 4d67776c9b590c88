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
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jetsetilly/framepace/cheats"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/userinput"
)

// Dirs are the directories used by a session.
type Dirs struct {
	Saves       string
	States      string
	Cheats      string
	Screenshots string
}

func newDirs(p *environment.Preferences) Dirs {
	return Dirs{
		Saves:       p.Saves.Get().(string),
		States:      p.States.Get().(string),
		Cheats:      p.Cheats.Get().(string),
		Screenshots: p.Screenshots.Get().(string),
	}
}

// Session is the content loaded into the Controller. It exists only while
// the Controller is Loaded.
type Session struct {
	// unique to every load. used to identify the session in log entries
	ID uuid.UUID

	// the name used to load the session and the ID derived from it
	Filename  string
	ContentID string

	Dirs     Dirs
	InputMap userinput.InputMap
	Config   *core.Config
	Cheats   *cheats.Device

	core core.Core

	// the next tick will run exactly one step regardless of the time elapsed
	renderFirstFrame bool

	// callbacks registered by the host
	callbacks core.Callbacks
}

// Core returns the machine owned by the session.
func (s *Session) Core() core.Core {
	return s.core
}

func (s *Session) saveDataPath() string {
	return filepath.Join(s.Dirs.Saves, s.ContentID+".sav")
}

func (s *Session) cheatsPath() string {
	return filepath.Join(s.Dirs.Cheats, s.ContentID+".cheats")
}

func (s *Session) String() string {
	return fmt.Sprintf("%s (%s)", s.ContentID, s.ID)
}
