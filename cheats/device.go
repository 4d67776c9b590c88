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

package cheats

import (
	"bytes"
)

// Memory is the machine memory that cheats are written to.
type Memory interface {
	Write8(address uint32, data uint8)
}

// Device holds the cheat sets for a session and applies the enabled sets to
// memory.
type Device struct {
	sets []Set
}

// Add sets to the device.
func (dev *Device) Add(sets ...Set) {
	dev.sets = append(dev.sets, sets...)
}

// Sets returns a copy of the sets in the device.
func (dev *Device) Sets() []Set {
	return append([]Set{}, dev.sets...)
}

// Clear all sets from the device.
func (dev *Device) Clear() {
	dev.sets = dev.sets[:0]
}

// SetEnabled changes the enabled state of the set at index. Returns false if
// the index is out of range.
func (dev *Device) SetEnabled(idx int, enabled bool) bool {
	if idx < 0 || idx >= len(dev.sets) {
		return false
	}
	dev.sets[idx].Enabled = enabled
	return true
}

// Enabled returns the number of enabled sets.
func (dev *Device) Enabled() int {
	var n int
	for _, s := range dev.sets {
		if s.Enabled {
			n++
		}
	}
	return n
}

// Apply writes every code of every enabled set to memory.
func (dev *Device) Apply(mem Memory) {
	for _, s := range dev.sets {
		if !s.Enabled {
			continue
		}
		for _, c := range s.Codes {
			mem.Write8(c.Address, c.Value)
		}
	}
}

// Marshal the sets in the native dialect.
func (dev *Device) Marshal() ([]byte, error) {
	var b bytes.Buffer
	if err := WriteNative(&b, dev.sets); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal replaces the sets in the device with the sets in the data, which
// can be in any of the supported dialects.
func (dev *Device) Unmarshal(data []byte) error {
	sets, _, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	dev.sets = sets
	return nil
}
