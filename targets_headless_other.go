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

//go:build headless && !linux && !darwin && !freebsd && !netbsd && !openbsd

package main

import (
	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/recorder"
)

const target = "headless"

// newInputs creates the playback backend. there is no live input on this
// build target.
func newInputs(opts inputOptions) (*inputs, error) {
	var backends []controller.Backend
	if opts.playback != "" {
		backends = append(backends, recorder.NewPlayback(opts.playback))
	}
	return &inputs{
		agg: controller.NewAggregator(backends...),
	}, nil
}
