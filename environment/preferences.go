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
	"path/filepath"

	"github.com/jetsetilly/framepace/paths"
	"github.com/jetsetilly/framepace/prefs"
)

// names of the sub-directories used for session resources
const (
	SavesDir       = "saves"
	StatesDir      = "states"
	CheatsDir      = "cheats"
	ScreenshotsDir = "screenshots"
	ProfileFile    = "bindings.toml"
)

// Preferences for the environment. The directory preferences are where the
// session looks for and stores per-content files.
type Preferences struct {
	dsk *prefs.Disk

	Saves       prefs.String
	States      prefs.String
	Cheats      prefs.String
	Screenshots prefs.String

	// path to the key binding profile
	Profile prefs.String

	// whether log entries are allowed. this is false by default which means
	// that log entries are discarded
	Logging prefs.Bool

	// the volume of a newly loaded session in the range 0.0 to 2.0
	Volume prefs.Float
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
//
// The baseDir argument is the directory under which preferences and resource
// directories are placed. If it is empty then the directories provided by the
// paths package are used.
func NewPreferences(baseDir string) (*Preferences, error) {
	p := &Preferences{}

	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 2.0 {
			return errVolume
		}
		return nil
	})

	err := p.setDefaults(baseDir)
	if err != nil {
		return nil, err
	}

	var fn string
	if baseDir == "" {
		fn, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	} else {
		fn = filepath.Join(baseDir, prefs.DefaultPrefsFile)
	}

	p.dsk, err = prefs.NewDisk(fn)
	if err != nil {
		return nil, err
	}

	p.dsk.Add("dirs.saves", &p.Saves)
	p.dsk.Add("dirs.states", &p.States)
	p.dsk.Add("dirs.cheats", &p.Cheats)
	p.dsk.Add("dirs.screenshots", &p.Screenshots)
	p.dsk.Add("input.profile", &p.Profile)
	p.dsk.Add("logging", &p.Logging)
	p.dsk.Add("audio.volume", &p.Volume)

	return p, nil
}

func (p *Preferences) setDefaults(baseDir string) error {
	dir := func(sub string) (string, error) {
		if baseDir == "" {
			return paths.ResourcePath(sub, "")
		}
		return filepath.Join(baseDir, sub), nil
	}

	for _, d := range []struct {
		v   *prefs.String
		sub string
	}{
		{v: &p.Saves, sub: SavesDir},
		{v: &p.States, sub: StatesDir},
		{v: &p.Cheats, sub: CheatsDir},
		{v: &p.Screenshots, sub: ScreenshotsDir},
	} {
		pth, err := dir(d.sub)
		if err != nil {
			return err
		}
		d.v.Set(pth)
	}

	pth, err := dir("")
	if err != nil {
		return err
	}
	p.Profile.Set(filepath.Join(pth, ProfileFile))

	p.Logging.Set(false)
	p.Volume.Set(1.0)

	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
