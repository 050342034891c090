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

package prefs

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jetsetilly/padmux/curated"
)

// Kind identifies the type of value held by a Pref.
type Kind int

// List of valid Kind values.
const (
	KindBool Kind = iota
	KindUInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUInt:
		return "uint"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// BadValue is the pattern for the error returned by Parse() when the string
// cannot be converted to the kind of value required.
const BadValue = "prefs: '%s' is not a valid %v value"

// Pref is implemented by the Bool, UInt and Float types and no others. The
// registry uses it to load and save values without needing to know what
// type it is dealing with.
type Pref interface {
	// String returns the value as it should be written to the configuration
	// file
	fmt.Stringer

	// Kind of value
	Kind() Kind

	// Parse a string and update the value. If the string cannot be parsed
	// the value is left unchanged and an error is returned
	Parse(s string) error

	// Reset the value to the default value given when the pref was created
	Reset()

	// restrict implementations to this package
	pref()
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value bool
	def   bool
}

// NewBool is the preferred method of initialisation for the Bool type.
func NewBool(def bool) *Bool {
	return &Bool{value: def, def: def}
}

func (p *Bool) pref() {}

// Kind implements the Pref interface.
func (p *Bool) Kind() Kind {
	return KindBool
}

func (p *Bool) String() string {
	if p.value {
		return "true"
	}
	return "false"
}

// Parse implements the Pref interface. Only the exact strings "true" and
// "false" are accepted.
func (p *Bool) Parse(s string) error {
	switch s {
	case "true":
		p.value = true
	case "false":
		p.value = false
	default:
		return curated.Errorf(BadValue, s, KindBool)
	}
	return nil
}

// Reset implements the Pref interface.
func (p *Bool) Reset() {
	p.value = p.def
}

// Get returns the current value.
func (p *Bool) Get() bool {
	return p.value
}

// Set the current value.
func (p *Bool) Set(v bool) {
	p.value = v
}

// UInt implements an unsigned 32 bit integer type in the prefs system.
type UInt struct {
	value uint32
	def   uint32
}

// NewUInt is the preferred method of initialisation for the UInt type.
func NewUInt(def uint32) *UInt {
	return &UInt{value: def, def: def}
}

func (p *UInt) pref() {}

// Kind implements the Pref interface.
func (p *UInt) Kind() Kind {
	return KindUInt
}

func (p *UInt) String() string {
	return strconv.FormatUint(uint64(p.value), 10)
}

// Parse implements the Pref interface. The string must be an unsigned base 10
// number that fits in 32 bits. Signs, prefixes and trailing characters are
// not accepted.
func (p *UInt) Parse(s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return curated.Errorf(BadValue, s, KindUInt)
	}
	p.value = uint32(v)
	return nil
}

// Reset implements the Pref interface.
func (p *UInt) Reset() {
	p.value = p.def
}

// Get returns the current value.
func (p *UInt) Get() uint32 {
	return p.value
}

// Set the current value.
func (p *UInt) Set(v uint32) {
	p.value = v
}

// Float implements a 32 bit floating point type in the prefs system.
type Float struct {
	value float32
	def   float32
}

// NewFloat is the preferred method of initialisation for the Float type.
func NewFloat(def float32) *Float {
	return &Float{value: def, def: def}
}

func (p *Float) pref() {}

// Kind implements the Pref interface.
func (p *Float) Kind() Kind {
	return KindFloat
}

// String returns the value in fixed point notation with six decimal places.
func (p *Float) String() string {
	return fmt.Sprintf("%f", float64(p.value))
}

// Parse implements the Pref interface. Infinities and NaN are not accepted.
func (p *Float) Parse(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return curated.Errorf(BadValue, s, KindFloat)
	}
	p.value = float32(v)
	return nil
}

// Reset implements the Pref interface.
func (p *Float) Reset() {
	p.value = p.def
}

// Get returns the current value.
func (p *Float) Get() float32 {
	return p.value
}

// Set the current value.
func (p *Float) Set(v float32) {
	p.value = v
}
