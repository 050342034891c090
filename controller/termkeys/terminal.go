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

//go:build linux || darwin || freebsd || netbsd || openbsd

package termkeys

import (
	"errors"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/padmux/controller/keyboard"
	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
)

// Terminal implements the keyboard.Source interface.
type Terminal struct {
	input *os.File
	fd    int

	canAttr unix.Termios
	rawAttr unix.Termios

	keys holder
	buf  [64]byte
}

// Open the terminal for reading. The terminal is put into raw mode and must
// be restored with Close().
//
// Because the terminal is in raw mode ctrl-c does not cause an interrupt
// signal. Sample() sends the signal to the process when it sees ctrl-c.
func Open(input *os.File, holdFrames int) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("termkeys: no input file")
	}

	term := &Terminal{
		input: input,
		fd:    int(input.Fd()),
		keys:  newHolder(holdFrames),
	}

	err := termios.Tcgetattr(uintptr(term.fd), &term.canAttr)
	if err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	// raw input but keep output processing so that anything printed while
	// the terminal is open still has a carriage return with every newline
	term.rawAttr = term.canAttr
	termios.Cfmakeraw(&term.rawAttr)
	term.rawAttr.Oflag |= unix.OPOST

	err = termios.Tcsetattr(uintptr(term.fd), termios.TCIFLUSH, &term.rawAttr)
	if err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	err = unix.SetNonblock(term.fd, true)
	if err != nil {
		_ = termios.Tcsetattr(uintptr(term.fd), termios.TCIFLUSH, &term.canAttr)
		return nil, curated.Errorf("termkeys: %v", err)
	}

	return term, nil
}

func (term *Terminal) String() string {
	return "terminal"
}

// Sample implements the keyboard.Source interface.
func (term *Terminal) Sample(k *keyboard.Keyboard) {
	var scancodes []uint32

	for {
		n, err := unix.Read(term.fd, term.buf[:])
		if err != nil {
			if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
				logger.Warnf(logger.Allow, "termkeys", "read error: %v", err)
			}
			break
		}
		if n == 0 {
			break
		}

		sc, interrupted := Translate(term.buf[:n])
		scancodes = append(scancodes, sc...)

		if interrupted {
			err = unix.Kill(unix.Getpid(), unix.SIGINT)
			if err != nil {
				logger.Warnf(logger.Allow, "termkeys", "cannot interrupt: %v", err)
			}
		}

		if n < len(term.buf) {
			break
		}
	}

	term.keys.update(k, scancodes)
}

// Release every held key.
func (term *Terminal) Release(k *keyboard.Keyboard) {
	term.keys.releaseAll(k)
}

// Close restores the terminal to the state it was in before Open().
func (term *Terminal) Close() error {
	err := unix.SetNonblock(term.fd, false)
	if err != nil {
		return curated.Errorf("termkeys: %v", err)
	}
	err = termios.Tcsetattr(uintptr(term.fd), termios.TCIFLUSH, &term.canAttr)
	if err != nil {
		return curated.Errorf("termkeys: %v", err)
	}
	return nil
}
