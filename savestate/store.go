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

package savestate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/framepace/curated"
)

// NoState is the pattern for the error returned when a slot is empty.
const NoState = "savestate: no state in slot %d"

// Store maps a content ID and slot number to a file in a directory.
type Store struct {
	dir string
}

// NewStore is the preferred method of initialisation for the Store type. The
// directory is created when the first state is saved.
func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

// Path returns the filename for the content ID and slot.
func (st *Store) Path(contentID string, slot int) string {
	return filepath.Join(st.dir, fmt.Sprintf("%s.ss%d", contentID, slot))
}

// Save the state to the slot. The state file is replaced atomically.
func (st *Store) Save(slot int, s *State) error {
	if slot < 0 {
		return fmt.Errorf("savestate: illegal slot (%d)", slot)
	}

	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(st.dir, 0o700); err != nil {
		return fmt.Errorf("savestate: %w", err)
	}

	f, err := os.CreateTemp(st.dir, fmt.Sprintf(".%s.*", s.ContentID))
	if err != nil {
		return fmt.Errorf("savestate: %w", err)
	}
	tmp := f.Name()

	// the temporary file is removed on any failure. after a successful rename
	// the remove fails harmlessly
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("savestate: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("savestate: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("savestate: %w", err)
	}

	if err := os.Rename(tmp, st.Path(s.ContentID, slot)); err != nil {
		return fmt.Errorf("savestate: %w", err)
	}

	return nil
}

// Load the state from the slot. Returns a NoState error if the slot is empty.
func (st *Store) Load(contentID string, slot int) (*State, error) {
	data, err := os.ReadFile(st.Path(contentID, slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoState, slot)
		}
		return nil, fmt.Errorf("savestate: %w", err)
	}

	s, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	if s.ContentID != contentID {
		return nil, fmt.Errorf("savestate: state is for different content (%s)", s.ContentID)
	}

	return s, nil
}
