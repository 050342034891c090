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

// Package keyboard emulates a controller with the keyboard.
//
// Keys are identified by their PC set 1 scancode. Extended keys, such as the
// arrow keys, have 0x100 added to the scancode. Some keys are fixed to host
// buttons (see the Scancode constants) and are then translated to pad
// buttons with the button bindings. The stick keys are taken from the stick
// bindings.
//
// The stick is digital. A stick key pushes the stick to the end of its
// travel. Opposing keys held at the same time cancel each other out.
package keyboard

import (
	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/pad"
)

// List of scancodes that have a fixed host button.
const (
	ScancodeBackspace uint32 = 0x0e
	ScancodeU         uint32 = 0x16
	ScancodeI         uint32 = 0x17
	ScancodeO         uint32 = 0x18
	ScancodeJ         uint32 = 0x24
	ScancodeK         uint32 = 0x25
	ScancodeL         uint32 = 0x26
	ScancodeSpace     uint32 = 0x39
	ScancodeUp        uint32 = 0x148
	ScancodeLeft      uint32 = 0x14b
	ScancodeRight     uint32 = 0x14d
	ScancodeDown      uint32 = 0x150
)

var keymap = map[uint32]bindings.HostButtons{
	ScancodeL:         bindings.HostCross,
	ScancodeJ:         bindings.HostSquare,
	ScancodeK:         bindings.HostCircle,
	ScancodeI:         bindings.HostTriangle,
	ScancodeU:         bindings.HostLTrigger,
	ScancodeO:         bindings.HostRTrigger,
	ScancodeSpace:     bindings.HostStart,
	ScancodeBackspace: bindings.HostSelect,
	ScancodeUp:        bindings.HostUp,
	ScancodeDown:      bindings.HostDown,
	ScancodeLeft:      bindings.HostLeft,
	ScancodeRight:     bindings.HostRight,
}

// Source is implemented by anything that can tell the keyboard backend about
// key presses. Sample() is called at the start of every Read() and should
// call KeyDown() and KeyUp() as required.
type Source interface {
	Sample(k *Keyboard)
}

// Keyboard implements the controller.Backend interface.
type Keyboard struct {
	bindings bindings.Map
	src      Source

	// keys currently held that are bound to something
	held map[uint32]bool
}

// New is the preferred method of initialisation for the Keyboard type. The
// source can be nil if KeyDown() and KeyUp() are called by something else,
// for example a GUI event loop.
func New(m bindings.Map, src Source) *Keyboard {
	return &Keyboard{
		bindings: m,
		src:      src,
		held:     make(map[uint32]bool),
	}
}

func (k *Keyboard) String() string {
	return "keyboard"
}

// Init implements the controller.Backend interface.
func (k *Keyboard) Init() {
	k.AllKeysUp()
}

func (k *Keyboard) bound(scancode uint32) bool {
	if _, ok := keymap[scancode]; ok {
		return true
	}
	return k.bindings.StickKey(scancode) != bindings.NoDirection
}

// KeyDown should be called when a key is pressed. Returns true if the key is
// bound to a button or stick direction.
func (k *Keyboard) KeyDown(scancode uint32) bool {
	if !k.bound(scancode) {
		return false
	}
	k.held[scancode] = true
	return true
}

// KeyUp should be called when a key is released. Returns true if the key is
// bound to a button or stick direction.
func (k *Keyboard) KeyUp(scancode uint32) bool {
	if !k.bound(scancode) {
		return false
	}
	delete(k.held, scancode)
	return true
}

// AllKeysUp releases every key. Useful when the window loses focus.
func (k *Keyboard) AllKeysUp() {
	clear(k.held)
}

// Read implements the controller.Backend interface.
func (k *Keyboard) Read(frame *pad.Frame) {
	if k.src != nil {
		k.src.Sample(k)
	}

	var host bindings.HostButtons
	var stick [5]bool

	for scancode := range k.held {
		host |= keymap[scancode]
		stick[k.bindings.StickKey(scancode)] = true
	}

	frame.Press(k.bindings.Buttons(host))

	up := stick[bindings.StickUp]
	down := stick[bindings.StickDown]
	left := stick[bindings.StickLeft]
	right := stick[bindings.StickRight]

	if !(up || down || left || right) {
		return
	}

	var x, y int8
	if left && !right {
		x = -128
	} else if right && !left {
		x = 127
	}
	if up && !down {
		y = 127
	} else if down && !up {
		y = -128
	}
	frame.SetStick(x, y)
}
