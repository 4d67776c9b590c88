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

package core

import (
	"github.com/jetsetilly/framepace/contentloader"
)

// Registry is a list of factories.
type Registry struct {
	factories []Factory
}

// NewRegistry is the preferred method of initialisation for the Registry type.
// The order of the factories is the order in which they are tried by Find().
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{
		factories: factories,
	}
}

// Register adds a factory to the end of the list.
func (r *Registry) Register(f Factory) {
	r.factories = append(r.factories, f)
}

// Find returns the first factory that recognises the content.
func (r *Registry) Find(cl contentloader.Loader) (Factory, bool) {
	for _, f := range r.factories {
		if f.Recognise(cl) {
			return f, true
		}
	}
	return nil, false
}

// IDs returns the ID of every registered factory.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.factories))
	for _, f := range r.factories {
		ids = append(ids, f.ID())
	}
	return ids
}
