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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/framepace/cheats"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/paths"
	"github.com/jetsetilly/framepace/video"
)

// write data to the file via a temporary file in the same directory. the
// directory is created if necessary
func writeFileAtomic(fn string, data []byte) error {
	dir := filepath.Dir(fn)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(fn)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, fn)
}

// a missing save data file is not an error
func (c *Controller) loadSaveData(s *Session) error {
	data, err := os.ReadFile(s.saveDataPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf(ResourceUnavailable, err)
	}
	if err := s.core.LoadSaveData(data); err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}
	logger.Logf(c.env, logTag, "%s: save data loaded from %s", s.ID, s.saveDataPath())
	return nil
}

func (c *Controller) writeSaveData(s *Session) error {
	data := s.core.SaveData()
	if data == nil {
		return nil
	}
	if err := writeFileAtomic(s.saveDataPath(), data); err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}
	return nil
}

// returns the number of cheat sets loaded
func (c *Controller) loadCheats(s *Session) (int, error) {
	f, err := os.Open(s.cheatsPath())
	if err != nil {
		return 0, curated.Errorf(ResourceUnavailable, err)
	}
	defer f.Close()

	sets, dialect, err := cheats.Parse(f)
	if err != nil {
		return 0, curated.Errorf(ResourceUnavailable, err)
	}

	s.Cheats.Clear()
	s.Cheats.Add(sets...)
	logger.Logf(c.env, logTag, "%s: %d cheat sets (%s) from %s", s.ID, len(sets), dialect, s.cheatsPath())

	return len(sets), nil
}

// AutoLoadCheats replaces the cheats of the session with the cheats in the
// cheats file for the content. Returns true if at least one enabled cheat set
// was loaded.
func (c *Controller) AutoLoadCheats() (bool, error) {
	s, err := c.loaded()
	if err != nil {
		return false, err
	}

	if _, err := c.loadCheats(s); err != nil {
		return false, err
	}

	if s.Cheats.Enabled() == 0 {
		return false, nil
	}

	c.notify(notifications.NotifyCheatsApplied)
	return true, nil
}

// Screenshot writes the presented frame to a PNG file in the screenshots
// directory. If the filename is empty then the next available filename based
// on the content ID is used. Returns the name of the file written.
func (c *Controller) Screenshot(fileName string) (string, error) {
	s, err := c.loaded()
	if err != nil {
		return "", err
	}

	dir := s.Dirs.Screenshots
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf(ResourceUnavailable, err)
	}

	var fn string
	if fileName == "" {
		fn, err = paths.FindNextAvailable(dir, s.ContentID, ".png")
		if err != nil {
			return "", curated.Errorf(ResourceUnavailable, err)
		}
	} else {
		fn = filepath.Join(dir, filepath.Base(fileName))
	}

	if err := video.WritePNG(fn, c.sink.Presented()); err != nil {
		return "", curated.Errorf(ResourceUnavailable, err)
	}

	logger.Logf(c.env, logTag, "%s: screenshot %s", s.ID, fn)
	c.notify(notifications.NotifyScreenshot)

	return fn, nil
}
