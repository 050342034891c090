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

//go:build !headless

package main

import (
	"io"
	"runtime"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/controller/keyboard"
	"github.com/jetsetilly/padmux/controller/sdlpad"
	"github.com/jetsetilly/padmux/recorder"
	"github.com/jetsetilly/padmux/version"
)

const target = "desktop"

func init() {
	// SDL must be used from the main thread
	runtime.LockOSThread()
}

// newInputs creates the keyboard and game controller backends, read through
// SDL, followed by the playback backend.
func newInputs(opts inputOptions) (*inputs, error) {
	m := bindings.New(opts.values)

	win, err := sdlpad.OpenWindow(version.ApplicationName, opts.values.Fullscreen)
	if err != nil {
		return nil, err
	}

	backends := []controller.Backend{
		keyboard.New(m, sdlpad.NewKeyState()),
		sdlpad.NewGamepad(m),
	}
	if opts.playback != "" {
		backends = append(backends, recorder.NewPlayback(opts.playback))
	}

	return &inputs{
		agg:     controller.NewAggregator(backends...),
		closers: []io.Closer{win},
		quit:    win.Quit,
	}, nil
}
