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

// Package termkeys is a keyboard source for the keyboard backend that reads
// key presses from a terminal.
//
// Terminals do not report key releases. Instead, a key is held for a number
// of samples after it is pressed. The terminal's own key repeat keeps a held
// key pressed.
//
// Only keys that send a single byte, and the arrow keys, are recognised.
package termkeys

import (
	"github.com/jetsetilly/padmux/controller/keyboard"
)

// DefaultHoldFrames is the number of samples a key is held for after it is
// pressed, if no other value is set.
const DefaultHoldFrames = 20

// byte value of ctrl-c
const interrupt = 0x03

// PC set 1 scancodes of the printable ASCII characters. shifted characters
// share the scancode of the unshifted character
var ascii = map[byte]uint32{
	'1': 0x02, '2': 0x03, '3': 0x04, '4': 0x05, '5': 0x06,
	'6': 0x07, '7': 0x08, '8': 0x09, '9': 0x0a, '0': 0x0b,
	'!': 0x02, '@': 0x03, '#': 0x04, '$': 0x05, '%': 0x06,
	'^': 0x07, '&': 0x08, '*': 0x09, '(': 0x0a, ')': 0x0b,
	'-': 0x0c, '_': 0x0c, '=': 0x0d, '+': 0x0d,
	'q': 0x10, 'w': 0x11, 'e': 0x12, 'r': 0x13, 't': 0x14,
	'y': 0x15, 'u': 0x16, 'i': 0x17, 'o': 0x18, 'p': 0x19,
	'[': 0x1a, '{': 0x1a, ']': 0x1b, '}': 0x1b,
	'a': 0x1e, 's': 0x1f, 'd': 0x20, 'f': 0x21, 'g': 0x22,
	'h': 0x23, 'j': 0x24, 'k': 0x25, 'l': 0x26,
	';': 0x27, ':': 0x27, '\'': 0x28, '"': 0x28, '`': 0x29, '~': 0x29,
	'\\': 0x2b, '|': 0x2b,
	'z': 0x2c, 'x': 0x2d, 'c': 0x2e, 'v': 0x2f, 'b': 0x30,
	'n': 0x31, 'm': 0x32,
	',': 0x33, '<': 0x33, '.': 0x34, '>': 0x34, '/': 0x35, '?': 0x35,
	' ':  keyboard.ScancodeSpace,
	'\t': 0x0f,
	'\r': 0x1c,
	'\n': 0x1c,
	0x08: keyboard.ScancodeBackspace,
	0x7f: keyboard.ScancodeBackspace,
	0x1b: 0x01,
}

// final byte of an arrow key escape sequence
var arrows = map[byte]uint32{
	'A': keyboard.ScancodeUp,
	'B': keyboard.ScancodeDown,
	'C': keyboard.ScancodeRight,
	'D': keyboard.ScancodeLeft,
}

// Translate bytes read from a terminal into scancodes. Bytes that have no
// scancode are ignored. The interrupted value is true if ctrl-c was seen.
func Translate(b []byte) (scancodes []uint32, interrupted bool) {
	for i := 0; i < len(b); i++ {
		c := b[i]

		if c == interrupt {
			interrupted = true
			continue
		}

		// escape sequences. a CSI sequence is skipped in its entirety even if
		// it isn't an arrow key
		if c == 0x1b && i+1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
			j := i + 2

			// parameter and intermediate bytes
			params := false
			for j < len(b) && b[j] >= 0x20 && b[j] <= 0x3f {
				params = true
				j++
			}

			if j < len(b) {
				if sc, ok := arrows[b[j]]; ok && !params {
					scancodes = append(scancodes, sc)
				}
				i = j
			} else {
				i = len(b)
			}
			continue
		}

		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		if sc, ok := ascii[c]; ok {
			scancodes = append(scancodes, sc)
		}
	}

	return scancodes, interrupted
}

// holder releases keys a fixed number of samples after they were pressed
type holder struct {
	frames int
	held   map[uint32]int
}

func newHolder(frames int) holder {
	return holder{
		frames: frames,
		held:   make(map[uint32]int),
	}
}

// update releases any key that has been held long enough and then presses
// the keys that have been seen. a key is held for the number of samples given
// to newHolder(). a key seen again is held for longer.
func (h *holder) update(k *keyboard.Keyboard, scancodes []uint32) {
	for sc, n := range h.held {
		n--
		if n <= 0 {
			k.KeyUp(sc)
			delete(h.held, sc)
		} else {
			h.held[sc] = n
		}
	}

	for _, sc := range scancodes {
		if _, ok := h.held[sc]; !ok {
			k.KeyDown(sc)
		}
		h.held[sc] = h.frames
	}
}

// releaseAll releases every key
func (h *holder) releaseAll(k *keyboard.Keyboard) {
	for sc := range h.held {
		k.KeyUp(sc)
	}
	clear(h.held)
}
