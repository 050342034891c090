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
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
)

// JSIOCGNAME(len) for a 128 byte buffer
const ioctlName = 0x80006a13 + (128 << 16)

// Device implements the controller.Backend interface for a Linux joystick
// device.
type Device struct {
	path     string
	bindings bindings.Map

	// file descriptor of the open device. -1 if the device is not open
	fd int

	state state
	buf   [EventSize * 64]byte
}

// New is the preferred method of initialisation for the Device type.
func New(path string, m bindings.Map) *Device {
	return &Device{
		path:     path,
		bindings: m,
		fd:       -1,
		state:    newState(),
	}
}

func (dev *Device) String() string {
	return fmt.Sprintf("joystick (%s)", dev.path)
}

// Init implements the controller.Backend interface. Failure to open the
// device is logged and the device contributes nothing.
func (dev *Device) Init() {
	if dev.fd >= 0 {
		return
	}

	fd, err := unix.Open(dev.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		logger.Warnf(logger.Allow, "joydev", "cannot open %s: %v", dev.path, err)
		return
	}
	dev.fd = fd
	dev.state.reset()

	logger.Logf(logger.Allow, "joydev", "%s: %s", dev.path, dev.name())
}

// name of the device as reported by the driver.
func (dev *Device) name() string {
	var b [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(dev.fd), ioctlName, uintptr(unsafe.Pointer(&b[0])))
	if errno != 0 {
		return "unknown device"
	}
	return unix.ByteSliceToString(b[:])
}

// Read implements the controller.Backend interface.
func (dev *Device) Read(frame *pad.Frame) {
	if dev.fd < 0 {
		return
	}

	for {
		n, err := unix.Read(dev.fd, dev.buf[:])
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				break
			}
			logger.Warnf(logger.Allow, "joydev", "%s disconnected: %v", dev.path, err)
			dev.Close()
			return
		}
		if n == 0 {
			logger.Warnf(logger.Allow, "joydev", "%s disconnected", dev.path)
			dev.Close()
			return
		}

		for i := 0; i+EventSize <= n; i += EventSize {
			dev.state.apply(Decode(dev.buf[i:]))
		}

		if n < len(dev.buf) {
			break
		}
	}

	dev.state.contribute(frame, dev.bindings)
}

// Close the device. A closed device can be opened again with Init().
func (dev *Device) Close() error {
	if dev.fd < 0 {
		return nil
	}
	err := unix.Close(dev.fd)
	dev.fd = -1
	dev.state.reset()
	return err
}
