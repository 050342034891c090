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

package bindings

import (
	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/prefs"
)

// HostButtons is the button word produced by the pad-like backends.
type HostButtons uint32

// List of host buttons.
const (
	HostSelect   HostButtons = 0x0001
	HostStart    HostButtons = 0x0008
	HostUp       HostButtons = 0x0010
	HostRight    HostButtons = 0x0020
	HostDown     HostButtons = 0x0040
	HostLeft     HostButtons = 0x0080
	HostLTrigger HostButtons = 0x0100
	HostRTrigger HostButtons = 0x0200
	HostTriangle HostButtons = 0x1000
	HostCircle   HostButtons = 0x2000
	HostCross    HostButtons = 0x4000
	HostSquare   HostButtons = 0x8000
)

// Direction of the analog stick that a key is bound to.
type Direction int

// List of valid Direction values.
const (
	NoDirection Direction = iota
	StickUp
	StickDown
	StickLeft
	StickRight
)

func (d Direction) String() string {
	switch d {
	case StickUp:
		return "up"
	case StickDown:
		return "down"
	case StickLeft:
		return "left"
	case StickRight:
		return "right"
	}
	return "none"
}

// a deadzone larger than this covers every stick position. the furthest
// position from the centre is (-128,-128), which is just over 181 away
const maxDeadzone = 182

type buttonBinding struct {
	host   HostButtons
	button pad.Button
}

// Map is the set of bindings taken from a prefs.Values instance.
type Map struct {
	buttons  [10]buttonBinding
	stick    [4]uint32
	deadzone int
	trigger  float32
}

// New is the preferred method of initialisation for the Map type.
func New(v prefs.Values) Map {
	return Map{
		buttons: [10]buttonBinding{
			{host: HostButtons(v.KeyA), button: pad.A},
			{host: HostButtons(v.KeyB), button: pad.B},
			{host: HostButtons(v.KeyStart), button: pad.Start},
			{host: HostButtons(v.KeyL), button: pad.L},
			{host: HostButtons(v.KeyR), button: pad.R},
			{host: HostButtons(v.KeyZ), button: pad.Z},
			{host: HostButtons(v.KeyCUp), button: pad.CUp},
			{host: HostButtons(v.KeyCDown), button: pad.CDown},
			{host: HostButtons(v.KeyCLeft), button: pad.CLeft},
			{host: HostButtons(v.KeyCRight), button: pad.CRight},
		},
		stick: [4]uint32{
			v.KeyStickUp,
			v.KeyStickDown,
			v.KeyStickLeft,
			v.KeyStickRight,
		},
		deadzone: int(min(v.Deadzone, maxDeadzone)),
		trigger:  v.TriggerThreshold,
	}
}

// Buttons returns the pad buttons that are pressed for the host button word.
func (m Map) Buttons(host HostButtons) pad.Button {
	var b pad.Button
	for _, bb := range m.buttons {
		if host&bb.host != 0 {
			b |= bb.button
		}
	}
	return b
}

// StickKey returns the stick direction bound to the keyboard scancode. If
// the scancode is bound to more than one direction then the first of up,
// down, left and right is returned.
func (m Map) StickKey(scancode uint32) Direction {
	for i, s := range m.stick {
		if s == scancode {
			return Direction(i + 1)
		}
	}
	return NoDirection
}

// Deadzone returns the deadzone magnitude. Values larger than every possible
// stick position are reduced to a value that still centres the stick.
func (m Map) Deadzone() int {
	return m.deadzone
}

// Stick clamps the stick position to the pad range and applies the
// deadzone. The returned bool is false if the position is inside the
// deadzone, in which case the stick should not be contributed to the frame.
func (m Map) Stick(x, y int) (int8, int8, bool) {
	x = clamp(x)
	y = clamp(y)
	if x*x+y*y <= m.deadzone*m.deadzone {
		return 0, 0, false
	}
	return int8(x), int8(y), true
}

func clamp(v int) int {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return v
}

// TriggerPressed returns true if the trigger travel, as a fraction of full
// travel, is beyond the trigger threshold.
func (m Map) TriggerPressed(travel float32) bool {
	return travel > m.trigger
}
