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

package controller

import (
	"fmt"
	"io"

	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
)

// Backend is implemented by every source of controller input.
type Backend interface {
	// Init prepares the backend for reading. Problems are reported through
	// the logger. A backend that fails to initialise must still be safe to
	// Read(), and should contribute nothing
	Init()

	// Read contributes the current state of the input source to the frame
	Read(frame *pad.Frame)
}

// Aggregator polls a fixed list of backends.
type Aggregator struct {
	backends  []Backend
	available bool
}

// NewAggregator is the preferred method of initialisation for the Aggregator
// type. The backends are polled in the order given.
func NewAggregator(backends ...Backend) *Aggregator {
	agg := &Aggregator{
		backends: make([]Backend, len(backends)),
	}
	copy(agg.backends, backends)
	return agg
}

// Initialise every backend in order. The aggregator is available once
// Initialise() returns, even if one or more backends failed to initialise.
func (agg *Aggregator) Initialise() {
	for i, b := range agg.backends {
		logger.Logf(logger.Allow, "controller", "initialising %s", name(i, b))
		b.Init()
	}
	agg.available = true
}

// Available returns true once Initialise() has been called.
func (agg *Aggregator) Available() bool {
	return agg.available
}

// Poll resets the frame and then reads every backend in order.
//
// Poll must not be called before Initialise().
func (agg *Aggregator) Poll(frame *pad.Frame) {
	frame.Reset()
	for _, b := range agg.backends {
		b.Read(frame)
	}
}

// Close every backend that implements the io.Closer interface. Errors are
// logged. The aggregator is no longer available after Close().
func (agg *Aggregator) Close() {
	for i, b := range agg.backends {
		if c, ok := b.(io.Closer); ok {
			err := c.Close()
			if err != nil {
				logger.Warnf(logger.Allow, "controller", "closing %s: %v", name(i, b), err)
			}
		}
	}
	agg.available = false
}

// String lists the backends in polling order.
func (agg *Aggregator) String() string {
	s := ""
	for i, b := range agg.backends {
		if i > 0 {
			s += ", "
		}
		s += name(i, b)
	}
	return s
}

// name of the backend for log messages.
func name(i int, b Backend) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("backend %d", i)
}
