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

	"github.com/jetsetilly/framepace/cheats"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/notifications"
	"github.com/jetsetilly/framepace/savestate"
)

func (c *Controller) store(s *Session) *savestate.Store {
	return savestate.NewStore(s.Dirs.States)
}

// SaveState saves the session to the slot. The flags select which parts of the
// session are saved in addition to the machine state.
func (c *Controller) SaveState(slot int, flags savestate.Flags) error {
	s, err := c.loaded()
	if err != nil {
		return err
	}

	st := savestate.NewState(s.core.ID(), s.ContentID, flags)

	st.Machine, err = s.core.SaveState()
	if err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}

	if flags.Has(savestate.FlagVideo) {
		p := c.sink.Presented()
		st.Video = &savestate.Video{
			Width:  p.Width,
			Height: p.Height,
			Stride: p.Stride,
			Pix:    append([]byte{}, p.Pix...),
		}
	}

	if flags.Has(savestate.FlagSaveData) {
		st.SaveData = s.core.SaveData()
	}

	if flags.Has(savestate.FlagCheats) {
		st.Cheats, err = s.Cheats.Marshal()
		if err != nil {
			return curated.Errorf(ResourceUnavailable, err)
		}
	}

	if flags.Has(savestate.FlagAudio) {
		st.Audio, err = s.core.AudioState()
		if err != nil {
			return curated.Errorf(ResourceUnavailable, err)
		}
	}

	if err := c.store(s).Save(slot, st); err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}

	logger.Logf(c.env, logTag, "%s: state saved to slot %d (%s)", s.ID, slot, st.Flags)
	c.notify(notifications.NotifyStateSaved)

	return nil
}

// LoadState restores the session from the slot. Only the parts of the state
// selected by flags and present in the saved state are restored. If the state
// cannot be restored the session is left untouched.
func (c *Controller) LoadState(slot int, flags savestate.Flags) error {
	s, err := c.loaded()
	if err != nil {
		return err
	}

	st, err := c.store(s).Load(s.ContentID, slot)
	if err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}

	if st.CoreID != s.core.ID() {
		return curated.Errorf(ResourceUnavailable, fmt.Sprintf("state is for %s machine", st.CoreID))
	}

	flags &= st.Flags

	// everything that can be checked is checked before anything is changed
	var dev cheats.Device
	if flags.Has(savestate.FlagCheats) {
		if err := dev.Unmarshal(st.Cheats); err != nil {
			return curated.Errorf(ResourceUnavailable, err)
		}
	}

	if flags.Has(savestate.FlagVideo) {
		if st.Video == nil || len(st.Video.Pix) != len(c.sink.Presented().Pix) {
			return curated.Errorf(ResourceUnavailable, "state video does not match session")
		}
	}

	backup, err := s.core.SaveState()
	if err != nil {
		return curated.Errorf(ResourceUnavailable, err)
	}
	backupSave := s.core.SaveData()

	restore := func(err error) error {
		if rerr := s.core.LoadState(backup); rerr != nil {
			logger.Log(c.env, logTag, rerr)
		}
		if backupSave != nil {
			if rerr := s.core.LoadSaveData(backupSave); rerr != nil {
				logger.Log(c.env, logTag, rerr)
			}
		}
		return curated.Errorf(ResourceUnavailable, err)
	}

	if err := s.core.LoadState(st.Machine); err != nil {
		return restore(err)
	}

	if flags.Has(savestate.FlagSaveData) && st.SaveData != nil {
		if err := s.core.LoadSaveData(st.SaveData); err != nil {
			return restore(err)
		}
	}

	if flags.Has(savestate.FlagAudio) && st.Audio != nil {
		if err := s.core.LoadAudioState(st.Audio); err != nil {
			return restore(err)
		}
	}

	if flags.Has(savestate.FlagCheats) {
		s.Cheats.Clear()
		s.Cheats.Add(dev.Sets()...)
	}

	if flags.Has(savestate.FlagVideo) {
		if err := c.sink.Restore(st.Video.Pix); err != nil {
			logger.Log(c.env, logTag, err)
		}
	}

	logger.Logf(c.env, logTag, "%s: state loaded from slot %d (%s)", s.ID, slot, flags)
	c.notify(notifications.NotifyStateLoaded)

	return nil
}
