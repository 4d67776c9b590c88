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

package savestate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/savestate"
	"github.com/jetsetilly/framepace/test"
)

func TestFlags(t *testing.T) {
	test.ExpectEquality(t, savestate.FlagAll.String(), "video|savedata|cheats|audio")
	test.ExpectEquality(t, savestate.Flags(0).String(), "none")
	test.ExpectEquality(t, (savestate.FlagVideo | savestate.FlagAudio).String(), "video|audio")
	test.ExpectSuccess(t, savestate.FlagAll.Has(savestate.FlagCheats))
	test.ExpectFailure(t, savestate.FlagVideo.Has(savestate.FlagCheats))

	// unknown flags are removed
	s := savestate.NewState("core", "content", 0xff)
	test.ExpectEquality(t, s.Flags, savestate.FlagAll)
}

func TestStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "states")
	st := savestate.NewStore(dir)
	test.ExpectEquality(t, st.Path("game", 3), filepath.Join(dir, "game.ss3"))

	_, err := st.Load("game", 1)
	test.ExpectSuccess(t, curated.Is(err, savestate.NoState))

	s := savestate.NewState("testcard", "game", savestate.FlagVideo|savestate.FlagSaveData)
	s.Machine = []byte{1, 2, 3}
	s.SaveData = []byte{4, 5}
	s.Video = &savestate.Video{Width: 1, Height: 1, Stride: 4, Pix: []byte{6, 7, 8, 9}}
	test.DemandSuccess(t, st.Save(1, s))

	l, err := st.Load("game", 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.CoreID, "testcard")
	test.ExpectEquality(t, l.Flags, savestate.FlagVideo|savestate.FlagSaveData)
	test.ExpectEquality(t, len(l.Machine), 3)
	test.ExpectEquality(t, l.SaveData[1], 5)
	test.ExpectEquality(t, l.Video.Pix[3], 9)
	test.ExpectSuccess(t, l.Created.Equal(s.Created))
	test.ExpectSuccess(t, l.Audio == nil)

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)

	test.ExpectFailure(t, st.Save(-1, s))
}

func TestCorrupt(t *testing.T) {
	dir := t.TempDir()
	st := savestate.NewStore(dir)

	test.DemandSuccess(t, os.WriteFile(st.Path("game", 0), []byte{0xff, 0x00}, 0o600))
	_, err := st.Load("game", 0)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, curated.Is(err, savestate.NoState))
}

func TestWrongContent(t *testing.T) {
	dir := t.TempDir()
	st := savestate.NewStore(dir)

	s := savestate.NewState("testcard", "game", savestate.FlagAll)
	test.DemandSuccess(t, st.Save(0, s))
	test.DemandSuccess(t, os.Rename(st.Path("game", 0), st.Path("other", 0)))

	_, err := st.Load("other", 0)
	test.ExpectFailure(t, err)
}
