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

package testcard

import (
	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/environment"
)

// ID of the testcard machine.
const ID = "testcard"

// Extension of testcard content files.
const Extension = ".tcd"

// Magic is the first bytes of testcard content.
var Magic = []byte("TESTCARD")

// Factory creates testcard machines.
type Factory struct{}

// ID implements the core.Factory interface.
func (Factory) ID() string {
	return ID
}

// Recognise implements the core.Factory interface.
func (Factory) Recognise(cl contentloader.Loader) bool {
	return cl.Extension() == Extension || cl.HasMagic(Magic)
}

// Create implements the core.Factory interface.
func (Factory) Create(env *environment.Environment, cl contentloader.Loader) (core.Core, error) {
	return NewTestcard(env, cl.Data), nil
}
