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
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Flags select the categories of state that participate in a save or load.
type Flags int

// List of flags.
const (
	FlagVideo Flags = 1 << iota
	FlagSaveData
	FlagCheats
	FlagAudio

	FlagAll = FlagVideo | FlagSaveData | FlagCheats | FlagAudio
)

func (f Flags) String() string {
	if f&FlagAll == 0 {
		return "none"
	}

	s := make([]string, 0, 4)
	if f&FlagVideo == FlagVideo {
		s = append(s, "video")
	}
	if f&FlagSaveData == FlagSaveData {
		s = append(s, "savedata")
	}
	if f&FlagCheats == FlagCheats {
		s = append(s, "cheats")
	}
	if f&FlagAudio == FlagAudio {
		s = append(s, "audio")
	}
	return strings.Join(s, "|")
}

// Has returns true if every bit in flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// version of the encoding. a State with a different version cannot be loaded
const version = 1

// Video is the presented frame at the time of the save.
type Video struct {
	Width  int    `cbor:"width"`
	Height int    `cbor:"height"`
	Stride int    `cbor:"stride"`
	Pix    []byte `cbor:"pix"`
}

// State is a snapshot of a session.
type State struct {
	Version   int       `cbor:"version"`
	CoreID    string    `cbor:"core"`
	ContentID string    `cbor:"content"`
	Flags     Flags     `cbor:"flags"`
	Created   time.Time `cbor:"created"`

	Machine  []byte `cbor:"machine"`
	Video    *Video `cbor:"video,omitempty"`
	SaveData []byte `cbor:"savedata,omitempty"`
	Cheats   []byte `cbor:"cheats,omitempty"`
	Audio    []byte `cbor:"audio,omitempty"`
}

// NewState is the preferred method of initialisation for the State type.
func NewState(coreID string, contentID string, flags Flags) *State {
	return &State{
		Version:   version,
		CoreID:    coreID,
		ContentID: contentID,
		Flags:     flags & FlagAll,
		Created:   time.Now().UTC().Truncate(time.Second),
	}
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("savestate: failed to create CBOR enc mode: %v", err))
	}
}

// Marshal encodes the state as CBOR.
func Marshal(s *State) ([]byte, error) {
	data, err := encMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("savestate: marshal: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a CBOR encoded state.
func Unmarshal(data []byte) (*State, error) {
	var s State
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("savestate: unmarshal: %w", err)
	}
	if s.Version != version {
		return nil, fmt.Errorf("savestate: unsupported version (%d)", s.Version)
	}
	return &s, nil
}
