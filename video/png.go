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

package video

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
)

// WritePNG encodes the buffer as a PNG file. The file is created or truncated.
func WritePNG(fn string, buf *Buffer) error {
	if buf.Width == 0 || buf.Height == 0 {
		return fmt.Errorf("video: png: empty buffer")
	}

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("video: png: %w", err)
	}

	w := bufio.NewWriter(f)
	err = png.Encode(w, buf.Image())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("video: png: %w", err)
	}

	err = w.Flush()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("video: png: %w", err)
	}

	return f.Close()
}
