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

package pacing

// FastForward holds the multiplier applied to the number of steps run per
// tick. The zero value is ready to use and has a multiplier of one.
type FastForward struct {
	multiplier int
}

// HoldMultiplier is the multiplier used while the fast-forward key is held.
const HoldMultiplier = 2

// Set the multiplier. Values less than one are rejected and the existing
// value is retained. Returns false if the value was rejected.
func (ff *FastForward) Set(multiplier int) bool {
	if multiplier < 1 {
		return false
	}
	ff.multiplier = multiplier
	return true
}

// Hold is called with the state of the fast-forward key. The multiplier is
// HoldMultiplier while the key is down and one when it is released.
func (ff *FastForward) Hold(down bool) {
	if down {
		ff.multiplier = HoldMultiplier
	} else {
		ff.multiplier = 1
	}
}

// Multiplier returns the current multiplier. Always one or more.
func (ff *FastForward) Multiplier() int {
	return max(ff.multiplier, 1)
}
