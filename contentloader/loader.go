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

package contentloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/framepace/curated"
)

// NoFile is the pattern for the error returned when the content file cannot
// be found or opened.
const NoFile = "contentloader: cannot open content: %v"

// Loader is used to specify the content to load into a session.
type Loader struct {
	// filename of content to load
	Filename string

	// expected hash of the loaded content. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// Extension returns the file extension of the content in lower case, including
// the leading period.
func (cl Loader) Extension() string {
	return strings.ToLower(path.Ext(cl.Filename))
}

// ContentID returns the base name of the content file without the extension.
func (cl Loader) ContentID() string {
	base := filepath.Base(cl.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// HasMagic returns true if the loaded data begins with the magic bytes.
func (cl Loader) HasMagic(magic []byte) bool {
	return bytes.HasPrefix(cl.Data, magic)
}

// Load the content data. Filenames with a URL scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(NoFile, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(NoFile, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("contentloader: %v", err)
		}

	case "file":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(NoFile, err)
		}

	default:
		return curated.Errorf("contentloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf("contentloader: %v", "empty file")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("contentloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
