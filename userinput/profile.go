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

package userinput

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Profile is a set of user key bindings. Each table in the profile file is
// named after a machine ID and maps button names to key names:
//
//	[testcard]
//	A = "c"
//	START = "space"
type Profile map[string]map[string]string

// LoadProfile reads the profile from the file. A missing file is not an error
// and results in an empty profile.
func LoadProfile(path string) (Profile, error) {
	p := make(Profile)

	_, err := toml.DecodeFile(path, &p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("userinput: profile: %w", err)
	}

	return p, nil
}

// Save the profile to the file.
func (p Profile) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("userinput: profile: %w", err)
	}

	err = toml.NewEncoder(f).Encode(p)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("userinput: profile: %w", err)
	}

	return f.Close()
}

// Apply the bindings for the machine to the InputMap. The buttons argument
// is the list of button names for the machine, where the index of the name is
// the button number.
//
// Bindings for unknown buttons or unresolvable keys are skipped and reported
// in the returned error. The remaining bindings are still applied.
func (p Profile) Apply(machine string, buttons []string, m InputMap, resolver KeyResolver) error {
	if resolver == nil {
		resolver = NameResolver{}
	}

	bindings := p[machine]

	// apply in a predictable order
	names := make([]string, 0, len(bindings))
	for n := range bindings {
		names = append(names, n)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		button := -1
		for i, b := range buttons {
			if b == name {
				button = i
				break
			}
		}
		if button == -1 {
			errs = append(errs, fmt.Errorf("userinput: profile: unknown button (%s)", name))
			continue
		}

		key, ok := resolver.ResolveKey(bindings[name])
		if !ok {
			errs = append(errs, fmt.Errorf("userinput: profile: unknown key (%s)", bindings[name]))
			continue
		}

		m.Bind(key, button)
	}

	return errors.Join(errs...)
}
