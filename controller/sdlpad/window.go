// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

package sdlpad

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
)

// size of the window when not fullscreen
const (
	windowWidth  = 320
	windowHeight = 240
)

// Window is an SDL window. SDL only reports the keyboard state while one of
// its windows has focus so a Window should be opened when the KeyState
// source is used.
//
// The window and every other use of SDL must be on the main thread.
type Window struct {
	win *sdl.Window
}

// OpenWindow is the preferred method of initialisation for the Window type.
func OpenWindow(title string, fullscreen bool) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too
	runtime.LockOSThread()

	err := sdl.InitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight, flags)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdlpad", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	if fullscreen {
		logger.Log(logger.Allow, "sdlpad", "window is fullscreen")
	}

	return &Window{win: win}, nil
}

// Quit returns true if the user has asked for the window to be closed.
func (w *Window) Quit() bool {
	return sdl.HasEvent(sdl.QUIT)
}

// Close the window.
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Destroy()
	w.win = nil
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return curated.Errorf("sdlpad: %v", err)
	}
	return nil
}
