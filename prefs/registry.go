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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
)

// UnknownOption is the pattern for the error returned by Set() when the name
// is not in the registry.
const UnknownOption = "prefs: unknown option '%s'"

// Option binds a name to a Pref.
type Option struct {
	Name  string
	Value Pref
}

// Registry is a fixed table of options. The order of the table is the order
// in which options are written by Save(). The table cannot be changed once
// the Registry has been created.
type Registry struct {
	options []Option
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
//
// The option table is fixed at build time so a malformed table is a
// programming error. NewRegistry() panics if a name is empty, is not a single
// word, appears more than once, or if a value is nil.
func NewRegistry(options ...Option) *Registry {
	reg := &Registry{
		options: make([]Option, 0, len(options)),
	}

	for _, o := range options {
		if o.Name == "" || len(strings.Fields(o.Name)) != 1 || strings.TrimSpace(o.Name) != o.Name {
			panic(fmt.Sprintf("prefs: invalid option name '%s'", o.Name))
		}
		if o.Value == nil {
			panic(fmt.Sprintf("prefs: option '%s' has no value", o.Name))
		}
		if _, ok := reg.Get(o.Name); ok {
			panic(fmt.Sprintf("prefs: duplicate option '%s'", o.Name))
		}
		reg.options = append(reg.options, o)
	}

	return reg
}

// Options returns a copy of the option table.
func (reg *Registry) Options() []Option {
	o := make([]Option, len(reg.options))
	copy(o, reg.options)
	return o
}

// Get the Pref for the named option.
func (reg *Registry) Get(name string) (Pref, bool) {
	for _, o := range reg.options {
		if o.Name == name {
			return o.Value, true
		}
	}
	return nil, false
}

// Set the named option by parsing the value string. The option is unchanged
// if an error is returned.
func (reg *Registry) Set(name string, value string) error {
	p, ok := reg.Get(name)
	if !ok {
		return curated.Errorf(UnknownOption, name)
	}
	return p.Parse(value)
}

// Reset every option to its default value.
func (reg *Registry) Reset() {
	for _, o := range reg.options {
		o.Value.Reset()
	}
}

// Load options from the named file.
//
// If the file cannot be opened then it is created and the current values
// are written to it, as though Save() had been called.
//
// Problems with the contents of the file are reported through the logger and
// never stop the rest of the file being processed. See ReadFrom() for
// details.
func (reg *Registry) Load(path string) {
	logger.Logf(logger.Allow, "prefs", "loading configuration from '%s'", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "prefs", "configuration file '%s' not found. creating it", path)
		} else {
			logger.Warnf(logger.Allow, "prefs", "configuration file '%s' cannot be read (%v). creating it", path, err)
		}
		reg.Save(path)
		return
	}
	defer f.Close()

	_, err = reg.ReadFrom(f)
	if err != nil {
		logger.Warnf(logger.Allow, "prefs", "error reading '%s': %v", path, err)
	}
}

// Save all options to the named file, in table order. Any existing file is
// overwritten.
//
// Failure to write the file is reported through the logger.
func (reg *Registry) Save(path string) {
	logger.Logf(logger.Allow, "prefs", "saving configuration to '%s'", path)

	f, err := os.Create(path)
	if err != nil {
		logger.Warnf(logger.Allow, "prefs", "cannot save configuration: %v", err)
		return
	}

	_, err = reg.WriteTo(f)
	if err != nil {
		logger.Warnf(logger.Allow, "prefs", "cannot save configuration: %v", err)
	}

	err = f.Close()
	if err != nil {
		logger.Warnf(logger.Allow, "prefs", "cannot save configuration: %v", err)
	}
}

// WriteTo implements the io.WriterTo interface. Every option is written in
// table order, one option per line, as a name and value separated by a
// space.
func (reg *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, o := range reg.options {
		n, err := fmt.Fprintf(w, "%s %s\n", o.Name, o.Value.String())
		total += int64(n)
		if err != nil {
			return total, curated.Errorf("prefs: %v", err)
		}
	}
	return total, nil
}

// ReadFrom implements the io.ReaderFrom interface. The reader is read to the
// end, one line at a time. Lines are not limited in length.
//
// Each line is split into at most two words. A line with no words is
// ignored. A line with one word is reported and ignored. A line with two words
// is a name and value. Any further words on the line are ignored.
//
// A name that is not in the registry is reported and ignored. A value that
// cannot be parsed is reported and the option is left unchanged. This is true
// of every kind of option, including Bool values other than "true" and
// "false".
//
// Problems are reported as warnings through the logger.
//
// Options are updated as each line is processed. A problem with a line does
// not undo the changes made by earlier lines.
//
// The returned error is for problems with the reader only.
func (reg *Registry) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	b := bufio.NewReader(r)
	ln := 0

	for {
		s, err := b.ReadString('\n')
		total += int64(len(s))

		if len(s) > 0 {
			ln++
			reg.parseLine(ln, s)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, curated.Errorf("prefs: %v", err)
		}
	}
}

// parseLine processes a single line from the configuration file.
func (reg *Registry) parseLine(ln int, s string) {
	tokens := strings.Fields(s)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}

	switch len(tokens) {
	case 0:
		return
	case 1:
		logger.Warnf(logger.Allow, "prefs", "line %d: expected value for '%s'", ln, tokens[0])
		return
	}

	name := tokens[0]
	value := tokens[1]

	p, ok := reg.Get(name)
	if !ok {
		logger.Warnf(logger.Allow, "prefs", "line %d: unknown option '%s'", ln, name)
		return
	}

	err := p.Parse(value)
	if err != nil {
		logger.Warnf(logger.Allow, "prefs", "line %d: %v", ln, err)
	}
}
