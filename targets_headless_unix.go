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

//go:build headless && (darwin || freebsd || netbsd || openbsd)

package main

import (
	"os"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/controller/keyboard"
	"github.com/jetsetilly/padmux/controller/termkeys"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/recorder"
)

const target = "headless unix"

// newInputs creates the keyboard backend, read from the terminal, and the
// playback backend.
func newInputs(opts inputOptions) (*inputs, error) {
	m := bindings.New(opts.values)
	in := &inputs{}

	var src keyboard.Source
	term, err := termkeys.Open(os.Stdin, termkeys.DefaultHoldFrames)
	if err != nil {
		logger.Warnf(logger.Allow, "padmux", "keyboard unavailable: %v", err)
	} else {
		src = term
		in.closers = append(in.closers, term)
	}

	backends := []controller.Backend{
		keyboard.New(m, src),
	}
	if opts.playback != "" {
		backends = append(backends, recorder.NewPlayback(opts.playback))
	}

	in.agg = controller.NewAggregator(backends...)
	return in, nil
}
