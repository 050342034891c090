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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. Backends that report the
// same condition every frame can use a Permission to limit how often they
// log.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed
var Allow Permission = allow{}

// Once is a Permission that allows exactly one log entry. The zero value is
// ready to use.
type Once struct {
	used bool
}

// AllowLogging implements the Permission interface.
func (o *Once) AllowLogging() bool {
	if o.used {
		return false
	}
	o.used = true
	return true
}

// Reset allows the Once permission to be used again.
func (o *Once) Reset() {
	o.used = false
}
