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

//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address is used when Launch() is given an empty address.
const Address = "localhost:12600"

// Launch writes a message to output explaining that the statsview is not
// available.
func Launch(output io.Writer, _ string) {
	fmt.Fprintln(output, "stats server not available. build with the statsview tag")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
