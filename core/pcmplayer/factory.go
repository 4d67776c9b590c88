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

package pcmplayer

import (
	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/environment"
)

// ID of the pcmplayer machine.
const ID = "pcmplayer"

// Factory creates pcmplayer machines.
type Factory struct{}

// ID implements the core.Factory interface.
func (Factory) ID() string {
	return ID
}

// Recognise implements the core.Factory interface.
func (Factory) Recognise(cl contentloader.Loader) bool {
	switch cl.Extension() {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// Create implements the core.Factory interface.
func (Factory) Create(env *environment.Environment, cl contentloader.Loader) (core.Core, error) {
	pcm, err := decode(env, cl)
	if err != nil {
		return nil, err
	}
	return NewPlayer(env, pcm), nil
}
