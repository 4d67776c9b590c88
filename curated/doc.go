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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// Errors are differentiated by the pattern string passed to Errorf(). The
// Is() function checks whether an error was created with a specific pattern
// and the Has() function checks whether the pattern occurs anywhere in the
// error chain:
//
//	e := curated.Errorf("session: %v", curated.Errorf(NotLoaded))
//
//	curated.Is(e, NotLoaded)  // false
//	curated.Has(e, NotLoaded) // true
//
// Sentinel patterns should be stored as a const string in the package that
// creates the error, suitably named and commented.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ". This
// means that code can wrap errors freely without worrying about the message
// stuttering. For example, the following two errors will both print as
// "load: file not found":
//
//	a := curated.Errorf("load: %v", "file not found")
//	b := curated.Errorf("load: %v", a)
//
// Curated errors also implement Unwrap() so that the standard library
// errors.Is() and errors.As() functions see the first error value in the
// chain.
package curated
