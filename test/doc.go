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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare any two
// comparable values of the same type. ExpectApproximate() does the same for
// floating point values but allows a tolerance. ExpectSuccess() and
// ExpectFailure() interpret bool and error values: a true value or nil error
// is success, a false value or non-nil error is failure.
//
// The Demand*() functions are the same except that they stop the test
// immediately on failure.
//
// The CompareWriter type is an implementation of io.Writer that can be
// compared against a string.
package test
