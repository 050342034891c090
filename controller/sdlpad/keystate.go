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

package sdlpad

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padmux/controller/keyboard"
)

// SDL scancodes and the equivalent PC set 1 scancode.
var scancodes = map[sdl.Scancode]uint32{
	sdl.SCANCODE_ESCAPE:       0x01,
	sdl.SCANCODE_1:            0x02,
	sdl.SCANCODE_2:            0x03,
	sdl.SCANCODE_3:            0x04,
	sdl.SCANCODE_4:            0x05,
	sdl.SCANCODE_5:            0x06,
	sdl.SCANCODE_6:            0x07,
	sdl.SCANCODE_7:            0x08,
	sdl.SCANCODE_8:            0x09,
	sdl.SCANCODE_9:            0x0a,
	sdl.SCANCODE_0:            0x0b,
	sdl.SCANCODE_MINUS:        0x0c,
	sdl.SCANCODE_EQUALS:       0x0d,
	sdl.SCANCODE_BACKSPACE:    keyboard.ScancodeBackspace,
	sdl.SCANCODE_TAB:          0x0f,
	sdl.SCANCODE_Q:            0x10,
	sdl.SCANCODE_W:            0x11,
	sdl.SCANCODE_E:            0x12,
	sdl.SCANCODE_R:            0x13,
	sdl.SCANCODE_T:            0x14,
	sdl.SCANCODE_Y:            0x15,
	sdl.SCANCODE_U:            keyboard.ScancodeU,
	sdl.SCANCODE_I:            keyboard.ScancodeI,
	sdl.SCANCODE_O:            keyboard.ScancodeO,
	sdl.SCANCODE_P:            0x19,
	sdl.SCANCODE_LEFTBRACKET:  0x1a,
	sdl.SCANCODE_RIGHTBRACKET: 0x1b,
	sdl.SCANCODE_RETURN:       0x1c,
	sdl.SCANCODE_LCTRL:        0x1d,
	sdl.SCANCODE_A:            0x1e,
	sdl.SCANCODE_S:            0x1f,
	sdl.SCANCODE_D:            0x20,
	sdl.SCANCODE_F:            0x21,
	sdl.SCANCODE_G:            0x22,
	sdl.SCANCODE_H:            0x23,
	sdl.SCANCODE_J:            keyboard.ScancodeJ,
	sdl.SCANCODE_K:            keyboard.ScancodeK,
	sdl.SCANCODE_L:            keyboard.ScancodeL,
	sdl.SCANCODE_SEMICOLON:    0x27,
	sdl.SCANCODE_APOSTROPHE:   0x28,
	sdl.SCANCODE_GRAVE:        0x29,
	sdl.SCANCODE_LSHIFT:       0x2a,
	sdl.SCANCODE_BACKSLASH:    0x2b,
	sdl.SCANCODE_Z:            0x2c,
	sdl.SCANCODE_X:            0x2d,
	sdl.SCANCODE_C:            0x2e,
	sdl.SCANCODE_V:            0x2f,
	sdl.SCANCODE_B:            0x30,
	sdl.SCANCODE_N:            0x31,
	sdl.SCANCODE_M:            0x32,
	sdl.SCANCODE_COMMA:        0x33,
	sdl.SCANCODE_PERIOD:       0x34,
	sdl.SCANCODE_SLASH:        0x35,
	sdl.SCANCODE_RSHIFT:       0x36,
	sdl.SCANCODE_LALT:         0x38,
	sdl.SCANCODE_SPACE:        keyboard.ScancodeSpace,
	sdl.SCANCODE_RCTRL:        0x11d,
	sdl.SCANCODE_UP:           keyboard.ScancodeUp,
	sdl.SCANCODE_LEFT:         keyboard.ScancodeLeft,
	sdl.SCANCODE_RIGHT:        keyboard.ScancodeRight,
	sdl.SCANCODE_DOWN:         keyboard.ScancodeDown,
}

// KeyState implements the keyboard.Source interface with the SDL keyboard
// state.
type KeyState struct {
	// state of each SDL scancode in the scancodes table at the previous
	// sample
	prev map[sdl.Scancode]bool
}

// NewKeyState is the preferred method of initialisation for the KeyState
// type.
func NewKeyState() *KeyState {
	return &KeyState{
		prev: make(map[sdl.Scancode]bool),
	}
}

// Sample implements the keyboard.Source interface.
func (ks *KeyState) Sample(k *keyboard.Keyboard) {
	sdl.PumpEvents()
	ks.update(k, sdl.GetKeyboardState())
}

// update the keyboard with the keys that have changed since the previous
// call.
func (ks *KeyState) update(k *keyboard.Keyboard, state []uint8) {
	for sc, set1 := range scancodes {
		down := int(sc) < len(state) && state[sc] != 0
		if down == ks.prev[sc] {
			continue
		}
		ks.prev[sc] = down
		if down {
			k.KeyDown(set1)
		} else {
			k.KeyUp(set1)
		}
	}
}
