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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectEquality(t, v.String(), "1.500")
	test.ExpectFailure(t, v.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Float

	var post float64
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) < 0 {
			return fmt.Errorf("negative value")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set(2.0))
	test.ExpectEquality(t, post, 2.0)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1.0))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectEquality(t, post, 2.0)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	s.SetMaxLen(5)
	test.ExpectSuccess(t, s.Set("abcdefgh"))
	test.ExpectEquality(t, s.String(), "abcde")

	s.SetMaxLen(0)
	test.ExpectSuccess(t, s.Set("abcdefgh"))
	test.ExpectEquality(t, s.String(), "abcdefgh")

	// existing string is cropped
	s.SetMaxLen(3)
	test.ExpectEquality(t, s.String(), "abc")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(42))

	// no file yet. saveOnFail creates it
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "number :: 42\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 42)

	// command line value overrides value on disk
	test.ExpectSuccess(t, prefs.PushCommandLineStack("number::7; other::1"))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 7)
	test.ExpectEquality(t, strings.Join(prefs.PopCommandLineStack(), ","), "other")

	// the command line value is not saved
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 42\n")

	// unless it has been changed since
	test.ExpectSuccess(t, prefs.PushCommandLineStack("number::7"))
	test.ExpectSuccess(t, dsk.Load(false))
	prefs.PopCommandLineStack()
	test.ExpectSuccess(t, v.Set(8))
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 8\n")
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))

	// missing file without saveOnFail is not an error
	test.ExpectSuccess(t, dsk.Load(false))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)
}
