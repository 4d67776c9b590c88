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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/framepace/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is the pattern for the error returned when the preferences file
// does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values set from the command line by the most recent Load()
	overrides map[string]override
}

// the value given on the command line and the value it replaced
type override struct {
	value string
	saved string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]override),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The value
// must be a pointer to one of the types in this package.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all registered preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the existing file that
// are not registered with this Disk instance are preserved. A value that was
// set on the command line and not changed since is not saved.
func (dsk *Disk) Save() error {
	entries, err := load(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		if o, ok := dsk.overrides[k]; ok && o.value == p.String() {
			entries[k] = o.saved
			continue
		}
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	// write to a temporary file and rename over the real file once complete
	tmp := fmt.Sprintf("%s.tmp", dsk.path)
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, entries[k])
	}

	err = w.Flush()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.Rename(tmp, dsk.path); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values set on the command line with
// PushCommandLineStack() take priority over values on disk. Command line
// values are removed from the stack as they are used.
//
// If saveOnFail is true and the preferences file does not exist then the
// file will be created with the current values.
func (dsk *Disk) Load(saveOnFail bool) error {
	clear(dsk.overrides)

	entries, err := load(dsk.path)
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			saved, ok := entries[k]
			if !ok {
				saved = p.String()
			}
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			dsk.overrides[k] = override{value: p.String(), saved: saved}
			continue
		}

		if v, ok := entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// load the file into a map of key/value strings. the returned map is never
// nil, even on error.
func load(path string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, path)
		}
		return entries, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate. we don't check its contents
	scanner.Scan()

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}
