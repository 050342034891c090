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

//go:build linux

package joydev

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/prefs"
	"github.com/jetsetilly/padmux/test"
)

func TestMissingDevice(t *testing.T) {
	logger.Clear()

	dev := New(filepath.Join(t.TempDir(), "js0"), bindings.New(prefs.DefaultValues()))
	dev.Init()

	f := pad.Frame{Buttons: pad.B}
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.B})
	test.ExpectSuccess(t, dev.Close())

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "joydev: cannot open"))
}

func TestDevice(t *testing.T) {
	logger.Clear()

	// a fifo stands in for the joystick device
	path := filepath.Join(t.TempDir(), "js0")
	test.DemandSuccess(t, unix.Mkfifo(path, 0o600))

	dev := New(path, bindings.New(prefs.DefaultValues()))
	dev.Init()
	defer dev.Close()

	w, err := os.OpenFile(path, os.O_WRONLY, 0)
	test.DemandSuccess(t, err)

	// nothing to read yet
	var f pad.Frame
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{})

	var events []byte
	events = append(events, encode(Event{Type: TypeButton | TypeInit, Number: 1, Value: 0})...)
	events = append(events, encode(Event{Type: TypeButton, Number: 0, Value: 1})...)
	events = append(events, encode(Event{Type: TypeAxis, Number: axisLeftX, Value: -32768})...)
	_, err = w.Write(events)
	test.DemandSuccess(t, err)

	f.Reset()
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.A, StickX: -128})

	// state is kept between reads
	f.Reset()
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.A, StickX: -128})

	// closing the writer looks like a disconnection
	test.DemandSuccess(t, w.Close())
	f.Reset()
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{})

	f.Reset()
	dev.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{})

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectEquality(t, s.String(), "joydev: "+path+" disconnected\n")
}
