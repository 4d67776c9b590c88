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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for audio recordings.
//
// Format of returned string is:
//
//	prepend_contentid_YYYYMMDD_HHMMSS
//
// If there is no content ID the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, contentID string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(contentID)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}

// maximum number of candidates tried by FindNextAvailable
const maxCandidates = 100000

// FindNextAvailable returns the first filename of the form
//
//	dir/base-N.ext
//
// that does not exist, starting with N = 0. The ext argument should include
// the leading period.
func FindNextAvailable(dir string, base string, ext string) (string, error) {
	for i := range maxCandidates {
		fn := filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
		_, err := os.Stat(fn)
		if os.IsNotExist(err) {
			return fn, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("paths: no available filename for %s in %s", base, dir)
}
