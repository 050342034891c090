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

package main

import (
	"io"

	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/prefs"
)

// inputOptions are the options needed to create the inputs for the build
// target.
type inputOptions struct {
	values prefs.Values

	// recording to replay. no playback if empty
	playback string

	// joystick device. only used by targets that read joystick devices
	// directly
	device string
}

// inputs is the set of backends for the build target and any other
// resources they need.
type inputs struct {
	agg *controller.Aggregator

	// resources that aren't backends but which must be closed when the
	// inputs are no longer needed. closed in reverse order
	closers []io.Closer

	// returns true if the user has asked to quit by some means other than
	// an interrupt signal. may be nil
	quit func() bool
}

// close the backends and then the other resources.
func (in *inputs) close() {
	in.agg.Close()
	for i := len(in.closers) - 1; i >= 0; i-- {
		err := in.closers[i].Close()
		if err != nil {
			logger.Warnf(logger.Allow, "padmux", "%v", err)
		}
	}
}
