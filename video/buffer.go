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
	"fmt"
	"image"
)

// PixelFormat of a buffer
type PixelFormat int

// List of supported pixel formats.
const (
	// 32bit pixels with the bytes in memory order R, G, B, A. in SDL terms
	// this is PIXELFORMAT_ABGR8888 on a little-endian machine
	PixelFormatABGR8888 PixelFormat = iota
)

// BytesPerPixel returns the size of one pixel in bytes
func (f PixelFormat) BytesPerPixel() int {
	return 4
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatABGR8888:
		return "ABGR8888"
	}
	return fmt.Sprintf("unknown pixel format (%d)", int(f))
}

// Buffer is a block of pixels and its geometry. Stride is the length of a
// single row in bytes.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

// NewBuffer allocates a buffer for the geometry and format. The stride is the
// minimum required for the width.
func NewBuffer(width, height int, format PixelFormat) Buffer {
	stride := width * format.BytesPerPixel()
	return Buffer{
		Pix:    make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// StridePixels returns the length of a single row in pixels.
func (b *Buffer) StridePixels() int {
	if b.Format.BytesPerPixel() == 0 {
		return 0
	}
	return b.Stride / b.Format.BytesPerPixel()
}

// Image returns an image.Image view of the buffer. The image shares the
// underlying pixel data.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
