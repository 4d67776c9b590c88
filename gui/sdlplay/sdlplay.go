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

package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/version"
	"github.com/jetsetilly/framepace/video"
	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "sdlplay"

// SdlPlay is a simple SDL implementation of the video.Presenter interface.
type SdlPlay struct {
	env *environment.Environment

	// key events are forwarded to the bridge
	bridge *userinput.Bridge

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. the texture is recreated when a presented buffer
	// has a different size
	width  int32
	height int32

	// the amount of scaling applied to each pixel
	scale float32

	// whether input events are being delivered. see SetEventCapture()
	capture bool

	// the window is shown on the first call to Present()
	shown bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The bridge
// argument can be nil in which case key events are discarded.
func NewSdlPlay(env *environment.Environment, bridge *userinput.Bridge, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		env:     env,
		bridge:  bridge,
		scale:   scale,
		capture: true,
	}

	if scr.scale <= 0 {
		scr.scale = 1
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window - window size is set when the first frame is presented
	scr.window, err = sdl.CreateWindow(version.String(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly. they stay
	// ignored until the host asks for event capture
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.SetBridge(bridge)

	return scr, nil
}

// SetBridge changes the bridge that key events are forwarded to. The bridge
// resolves binding names with the SDL key names.
func (scr *SdlPlay) SetBridge(bridge *userinput.Bridge) {
	scr.bridge = bridge
	if bridge != nil {
		bridge.SetResolver(scr)
	}
}

// Destroy releases all SDL resources.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// recreate the texture and window size for the new geometry
func (scr *SdlPlay) resize(width, height int32) error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		width, height)
	if err != nil {
		return err
	}

	scr.width = width
	scr.height = height

	scr.window.SetSize(int32(float32(width)*scr.scale), int32(float32(height)*scr.scale))

	// the renderer scales the texture to fit the window
	err = scr.renderer.SetLogicalSize(width, height)
	if err != nil {
		return err
	}

	logger.Logf(scr.env, logTag, "resized to %dx%d", width, height)

	return nil
}

// Present implements the video.Presenter interface.
func (scr *SdlPlay) Present(buf *video.Buffer) {
	if err := scr.present(buf); err != nil {
		logger.Log(scr.env, logTag, err)
	}
}

func (scr *SdlPlay) present(buf *video.Buffer) error {
	if buf.Width == 0 || buf.Height == 0 {
		return nil
	}

	if int32(buf.Width) != scr.width || int32(buf.Height) != scr.height {
		if err := scr.resize(int32(buf.Width), int32(buf.Height)); err != nil {
			return fmt.Errorf("sdlplay: %w", err)
		}
	}

	pix, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	// the texture pitch need not be the same as the buffer stride
	row := buf.Width * buf.Format.BytesPerPixel()
	for y := range buf.Height {
		copy(pix[y*pitch:y*pitch+row], buf.Pix[y*buf.Stride:y*buf.Stride+row])
	}
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}
	scr.renderer.Present()

	if !scr.shown {
		scr.window.Show()
		scr.shown = true
	}

	return nil
}
