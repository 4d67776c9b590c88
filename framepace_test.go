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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/core/testcard"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/test"
)

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "HEADLESS  run content for a fixed number of frames"))

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"-prefs", t.TempDir(), "-nonsense"}, tw), 20)
}

func TestHeadless(t *testing.T) {
	dir := t.TempDir()
	game := filepath.Join(dir, "game"+testcard.Extension)
	test.DemandSuccess(t, os.WriteFile(game, []byte("TESTCARD"), 0o600))
	wav := filepath.Join(dir, "out.wav")
	dump := filepath.Join(dir, "session.dot")

	tw := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"-prefs", dir, "HEADLESS",
		"-frames", "30", "-screenshot", "-savestate", "1",
		"-wav", wav, "-memviz", dump,
		game,
	}, tw)
	test.DemandEquality(t, r, 0, tw.String())
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "30 frames in 30 ticks"))

	shots, err := filepath.Glob(filepath.Join(dir, environment.ScreenshotsDir, "*.png"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(shots), 1)

	states, err := filepath.Glob(filepath.Join(dir, environment.StatesDir, "*.ss1"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(states), 1)

	for _, fn := range []string{wav, dump} {
		_, err = os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}

	// the saved state can be loaded on start
	tw.Clear()
	r = launch(context.Background(), []string{
		"-prefs", dir, "HEADLESS", "-frames", "1", "-state", "1", game,
	}, tw)
	test.ExpectEquality(t, r, 0, tw.String())
}

func TestSetPrefs(t *testing.T) {
	dir := t.TempDir()
	game := filepath.Join(dir, "game"+testcard.Extension)
	test.DemandSuccess(t, os.WriteFile(game, []byte("TESTCARD"), 0o600))
	shots := filepath.Join(dir, "elsewhere")

	tw := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"-prefs", dir, "-setprefs", "dirs.screenshots::" + shots,
		"HEADLESS", "-frames", "1", "-screenshot", game,
	}, tw)
	test.DemandEquality(t, r, 0, tw.String())

	found, err := filepath.Glob(filepath.Join(shots, "*.png"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(found), 1)

	// the command line value applies to that run only
	data, err := os.ReadFile(filepath.Join(dir, prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(string(data), shots))

	tw.Clear()
	r = launch(context.Background(), []string{"-prefs", dir, "-setprefs", "no.such.pref::1", "HEADLESS", game}, tw)
	test.ExpectEquality(t, r, 10)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unrecognised preferences: no.such.pref"))

	tw.Clear()
	r = launch(context.Background(), []string{"-prefs", dir, "-setprefs", "logging", "HEADLESS", game}, tw)
	test.ExpectEquality(t, r, 10)
}

func TestHeadlessFastForward(t *testing.T) {
	dir := t.TempDir()
	game := filepath.Join(dir, "game"+testcard.Extension)
	test.DemandSuccess(t, os.WriteFile(game, []byte("TESTCARD"), 0o600))

	// the first tick runs a single frame. every other tick runs three
	tw := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"-prefs", dir, "HEADLESS", "-frames", "7", "-ff", "3", game,
	}, tw)
	test.DemandEquality(t, r, 0, tw.String())
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "7 frames in 3 ticks"))
}

func TestHeadlessDigest(t *testing.T) {
	dir := t.TempDir()
	game := filepath.Join(dir, "game"+testcard.Extension)
	test.DemandSuccess(t, os.WriteFile(game, []byte("TESTCARD"), 0o600))

	run := func(frames string) []string {
		tw := &test.CompareWriter{}
		r := launch(context.Background(), []string{
			"-prefs", dir, "HEADLESS", "-frames", frames, "-digest", game,
		}, tw)
		test.DemandEquality(t, r, 0, tw.String())

		// the first line contains timing information and is discarded
		lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
		test.DemandEquality(t, len(lines), 3)
		return lines[1:]
	}

	// the emulation is deterministic
	a := run("20")
	b := run("20")
	test.ExpectEquality(t, a[0], b[0])
	test.ExpectEquality(t, a[1], b[1])
	test.ExpectSuccess(t, strings.HasPrefix(a[0], "video digest: "))

	c := run("21")
	test.ExpectInequality(t, a[0], c[0])
	test.ExpectInequality(t, a[1], c[1])
}

func TestModeErrors(t *testing.T) {
	dir := t.TempDir()
	tw := &test.CompareWriter{}

	// content is required
	test.ExpectEquality(t, launch(context.Background(), []string{"-prefs", dir, "HEADLESS"}, tw), 20)
	test.ExpectEquality(t, tw.String(), "* error in HEADLESS mode: content required for HEADLESS mode\n")

	// missing content
	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"-prefs", dir, "HEADLESS", filepath.Join(dir, "missing.tcd")}, tw), 20)

	// bad timing
	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"-prefs", dir, "HEADLESS", "-timing", "5", "game.tcd"}, tw), 20)
}
