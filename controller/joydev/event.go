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

// Package joydev reads a joystick through the Linux joystick API
// (/dev/input/jsN).
//
// The device is read without blocking. Every pending event is consumed on
// each Read() and the resulting button and axis state is contributed to the
// frame. Button and axis numbering is expected to follow the layout of the
// xpad driver, which most modern game controllers use.
package joydev

import (
	"encoding/binary"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/pad"
)

// DefaultPath is the device used when no other device is specified.
const DefaultPath = "/dev/input/js0"

// EventSize is the size of an event in bytes.
const EventSize = 8

// Event types. TypeInit is combined with the other types for the events that
// describe the initial state of the device.
const (
	TypeButton uint8 = 0x01
	TypeAxis   uint8 = 0x02
	TypeInit   uint8 = 0x80
)

// Event is a single event read from the device.
type Event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Decode an event. The slice must be at least EventSize bytes long.
func Decode(b []byte) Event {
	return Event{
		Time:   binary.NativeEndian.Uint32(b[0:]),
		Value:  int16(binary.NativeEndian.Uint16(b[4:])),
		Type:   b[6],
		Number: b[7],
	}
}

// button numbers and the host button they produce
var buttonMap = [...]bindings.HostButtons{
	0: bindings.HostCross,
	1: bindings.HostCircle,
	2: bindings.HostSquare,
	3: bindings.HostTriangle,
	4: bindings.HostLTrigger,
	5: bindings.HostRTrigger,
	6: bindings.HostSelect,
	7: bindings.HostStart,
}

// axis numbers
const (
	axisLeftX = iota
	axisLeftY
	axisTriggerL
	axisRightX
	axisRightY
	axisTriggerR
	axisHatX
	axisHatY
	numAxes
)

// the value an axis must exceed for the right stick to press a C button or
// for the hat to press a direction
const axisThreshold = 0x4000

// state of the device built from the events read so far
type state struct {
	buttons bindings.HostButtons
	axes    [numAxes]int16
}

func newState() state {
	var s state
	s.reset()
	return s
}

// reset to the resting state. triggers rest at the negative end of their
// travel
func (s *state) reset() {
	s.buttons = 0
	s.axes = [numAxes]int16{}
	s.axes[axisTriggerL] = -32767
	s.axes[axisTriggerR] = -32767
}

// apply the event to the state. events for unknown buttons or axes are
// ignored.
func (s *state) apply(ev Event) {
	switch ev.Type &^ TypeInit {
	case TypeButton:
		if int(ev.Number) >= len(buttonMap) {
			return
		}
		if ev.Value != 0 {
			s.buttons |= buttonMap[ev.Number]
		} else {
			s.buttons &^= buttonMap[ev.Number]
		}
	case TypeAxis:
		if int(ev.Number) >= numAxes {
			return
		}
		s.axes[ev.Number] = ev.Value
	}
}

// trigger converts a trigger axis to a fraction of its travel.
func trigger(v int16) float32 {
	return (float32(v) + 32767) / 65534
}

// contribute the state to the frame.
func (s *state) contribute(frame *pad.Frame, m bindings.Map) {
	host := s.buttons

	if s.axes[axisHatX] < -axisThreshold {
		host |= bindings.HostLeft
	} else if s.axes[axisHatX] > axisThreshold {
		host |= bindings.HostRight
	}
	if s.axes[axisHatY] < -axisThreshold {
		host |= bindings.HostUp
	} else if s.axes[axisHatY] > axisThreshold {
		host |= bindings.HostDown
	}

	if m.TriggerPressed(trigger(s.axes[axisTriggerL])) {
		host |= bindings.HostLTrigger
	}
	if m.TriggerPressed(trigger(s.axes[axisTriggerR])) {
		host |= bindings.HostRTrigger
	}

	buttons := m.Buttons(host)

	if s.axes[axisRightX] < -axisThreshold {
		buttons |= pad.CLeft
	} else if s.axes[axisRightX] > axisThreshold {
		buttons |= pad.CRight
	}
	if s.axes[axisRightY] < -axisThreshold {
		buttons |= pad.CUp
	} else if s.axes[axisRightY] > axisThreshold {
		buttons |= pad.CDown
	}

	frame.Press(buttons)

	// positive values on the y axis are down
	x, y, ok := m.Stick(int(s.axes[axisLeftX])/0x100, -int(s.axes[axisLeftY])/0x100)
	if ok {
		frame.SetStick(x, y)
	}
}
