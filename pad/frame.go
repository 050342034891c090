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

package pad

import (
	"fmt"
	"strings"
)

// Button is a bitmask of logical controller buttons. Each button is a
// distinct power of two.
type Button uint16

// List of logical buttons.
const (
	CRight Button = 0x0001
	CLeft  Button = 0x0002
	CDown  Button = 0x0004
	CUp    Button = 0x0008
	R      Button = 0x0010
	L      Button = 0x0020

	DRight Button = 0x0100
	DLeft  Button = 0x0200
	DDown  Button = 0x0400
	DUp    Button = 0x0800
	Start  Button = 0x1000
	Z      Button = 0x2000
	B      Button = 0x4000
	A      Button = 0x8000
)

// the order in which buttons are listed by Button.String()
var buttonNames = []struct {
	button Button
	name   string
}{
	{A, "A"},
	{B, "B"},
	{Z, "Z"},
	{Start, "Start"},
	{DUp, "DUp"},
	{DDown, "DDown"},
	{DLeft, "DLeft"},
	{DRight, "DRight"},
	{L, "L"},
	{R, "R"},
	{CUp, "CUp"},
	{CDown, "CDown"},
	{CLeft, "CLeft"},
	{CRight, "CRight"},
}

func (b Button) String() string {
	if b == 0 {
		return "-"
	}
	s := make([]string, 0, len(buttonNames))
	for _, n := range buttonNames {
		if b&n.button == n.button {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "+")
}

// Status codes. A zero status means the controller responded normally.
const (
	StatusOK         uint8 = 0x00
	StatusOverrun    uint8 = 0x04
	StatusNoResponse uint8 = 0x08
)

// Frame is the state of the controller for a single poll.
type Frame struct {
	Buttons Button
	StickX  int8
	StickY  int8
	Status  uint8
}

func (f Frame) String() string {
	return fmt.Sprintf("buttons=%s stick=(%d,%d) status=0x%02x", f.Buttons, f.StickX, f.StickY, f.Status)
}

// Reset zeroes every field of the frame.
func (f *Frame) Reset() {
	*f = Frame{}
}

// Press adds buttons to the frame. Buttons already pressed by another
// backend remain pressed.
func (f *Frame) Press(b Button) {
	f.Buttons |= b
}

// Override replaces the button mask. Only backends that are authoritative
// for the entire frame should use this.
func (f *Frame) Override(b Button) {
	f.Buttons = b
}

// SetStick sets the stick position, replacing any value written by an
// earlier backend.
func (f *Frame) SetStick(x, y int8) {
	f.StickX = x
	f.StickY = y
}

// SetStatus sets the status code, replacing any value written by an earlier
// backend.
func (f *Frame) SetStatus(status uint8) {
	f.Status = status
}
