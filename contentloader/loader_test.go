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

package contentloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framepace/contentloader"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/test"
)

func TestContentID(t *testing.T) {
	cl := contentloader.NewLoader("/roms/Some Game.TCD")
	test.ExpectEquality(t, cl.ContentID(), "Some Game")
	test.ExpectEquality(t, cl.Extension(), ".tcd")

	cl = contentloader.NewLoader("noext")
	test.ExpectEquality(t, cl.ContentID(), "noext")
	test.ExpectEquality(t, cl.Extension(), "")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "content.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("TESTCARD data"), 0o600))

	cl := contentloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.HasMagic([]byte("TESTCARD")))
	test.ExpectEquality(t, len(cl.Hash), 40)

	// hash mismatch
	cl = contentloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestMissing(t *testing.T) {
	cl := contentloader.NewLoader(filepath.Join(t.TempDir(), "missing.tcd"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, contentloader.NoFile))
}
