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

package joydev

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/prefs"
	"github.com/jetsetilly/padmux/test"
)

// encode is the reverse of Decode()
func encode(ev Event) []byte {
	b := make([]byte, EventSize)
	binary.NativeEndian.PutUint32(b[0:], ev.Time)
	binary.NativeEndian.PutUint16(b[4:], uint16(ev.Value))
	b[6] = ev.Type
	b[7] = ev.Number
	return b
}

func TestDecode(t *testing.T) {
	ev := Event{Time: 123456, Value: -32767, Type: TypeAxis | TypeInit, Number: 3}
	test.ExpectEquality(t, Decode(encode(ev)), ev)

	ev = Event{Time: 0xffffffff, Value: 1, Type: TypeButton, Number: 255}
	test.ExpectEquality(t, Decode(encode(ev)), ev)
}

func TestButtons(t *testing.T) {
	m := bindings.New(prefs.DefaultValues())
	s := newState()

	var f pad.Frame
	s.contribute(&f, m)
	test.ExpectEquality(t, f, pad.Frame{})

	// init events are treated like any other event
	s.apply(Event{Type: TypeButton | TypeInit, Number: 0, Value: 1})
	s.apply(Event{Type: TypeButton, Number: 7, Value: 1})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.A|pad.Start)

	s.apply(Event{Type: TypeButton, Number: 0, Value: 0})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.Start)

	// unknown button and axis numbers are ignored
	s.apply(Event{Type: TypeButton, Number: 200, Value: 1})
	s.apply(Event{Type: TypeAxis, Number: 200, Value: 1})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.Start)
}

func TestAxes(t *testing.T) {
	m := bindings.New(prefs.DefaultValues())
	s := newState()

	// triggers at rest are not pressed
	var f pad.Frame
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.Button(0))

	// left trigger is Z and right trigger is R
	s.apply(Event{Type: TypeAxis, Number: axisTriggerL, Value: 32767})
	s.apply(Event{Type: TypeAxis, Number: axisTriggerR, Value: 0})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.Z|pad.R)

	// hat is bound to the C buttons by default, as is the right stick
	s.reset()
	s.apply(Event{Type: TypeAxis, Number: axisHatX, Value: -32767})
	s.apply(Event{Type: TypeAxis, Number: axisRightY, Value: 32767})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.Buttons, pad.CLeft|pad.CDown)

	// left stick
	s.reset()
	s.apply(Event{Type: TypeAxis, Number: axisLeftX, Value: 0x2000})
	s.apply(Event{Type: TypeAxis, Number: axisLeftY, Value: 0x3000})
	f.Reset()
	s.contribute(&f, m)
	test.ExpectEquality(t, f.StickX, int8(32))
	test.ExpectEquality(t, f.StickY, int8(-48))

	// inside deadzone
	s.apply(Event{Type: TypeAxis, Number: axisLeftY, Value: 0})
	f = pad.Frame{StickX: 5}
	s.contribute(&f, m)
	test.ExpectEquality(t, f.StickX, int8(5))
}
