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

//go:build headless

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/prefs"
	"github.com/jetsetilly/padmux/test"
)

func TestHeadlessInputs(t *testing.T) {
	path := makeRecording(t, []pad.Frame{
		{Buttons: pad.B},
		{Buttons: pad.B | pad.Z, StickX: -20, StickY: 30},
	})

	in, err := newInputs(inputOptions{
		values:   prefs.DefaultValues(),
		playback: path,
		device:   filepath.Join(t.TempDir(), "js0"),
	})
	test.DemandSuccess(t, err)
	defer in.close()

	in.agg.Initialise()
	test.ExpectSuccess(t, in.agg.Available())

	// playback is always the last backend
	test.ExpectSuccess(t, strings.HasSuffix(in.agg.String(), fmt.Sprintf("playback (%s)", path)))

	out := &strings.Builder{}
	err = poll(context.Background(), in.agg, in.quit, nil, out, 2, 1000)
	test.DemandSuccess(t, err)

	expected := fmt.Sprintf("%8d %s\n%8d %s\n",
		0, pad.Frame{Buttons: pad.B},
		1, pad.Frame{Buttons: pad.B | pad.Z, StickX: -20, StickY: 30},
	)
	test.ExpectEquality(t, out.String(), expected)
}

func TestHeadlessWithoutPlayback(t *testing.T) {
	in, err := newInputs(inputOptions{
		values: prefs.DefaultValues(),
		device: filepath.Join(t.TempDir(), "js0"),
	})
	test.DemandSuccess(t, err)
	defer in.close()

	test.ExpectFailure(t, strings.Contains(in.agg.String(), "playback"))
}
