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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the writer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	log.Log(logger.Allow, "tag", "c")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: b\ntag: c\n")
}

func TestOncePermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var once logger.Once
	log.Log(&once, "tag", "first")
	log.Log(&once, "tag", "second")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: first\n")

	once.Reset()
	log.Log(&once, "tag", "third")
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: third\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)

	core, observed := observer.New(zap.InfoLevel)
	log.SetEcho(zap.New(core))

	log.Log(logger.Allow, "prefs", "unknown option 'foo'")
	test.DemandEquality(t, observed.Len(), 1)

	e := observed.All()[0]
	test.ExpectEquality(t, e.Message, "unknown option 'foo'")
	test.ExpectEquality(t, e.ContextMap()["tag"], any("prefs"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "prefs", "not echoed")
	test.ExpectEquality(t, observed.Len(), 1)
}

func TestEchoWarnings(t *testing.T) {
	log := logger.NewLogger(100)

	core, observed := observer.New(zapcore.WarnLevel)
	log.SetEcho(zap.New(core))

	log.Logf(logger.Allow, "prefs", "loading configuration from '%s'", "padmux.cfg")
	test.ExpectEquality(t, observed.Len(), 0)

	log.Warnf(logger.Allow, "prefs", "line %d: unknown option '%s'", 2, "foo")
	test.DemandEquality(t, observed.Len(), 1)

	e := observed.All()[0]
	test.ExpectEquality(t, e.Level, zapcore.WarnLevel)
	test.ExpectEquality(t, e.Message, "line 2: unknown option 'foo'")
	test.ExpectEquality(t, e.ContextMap()["tag"], any("prefs"))

	// warnings are written like any other entry
	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "prefs: loading configuration from 'padmux.cfg'\nprefs: line 2: unknown option 'foo'\n")

	var warnings int
	log.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Warning {
				warnings++
			}
		}
	})
	test.ExpectEquality(t, warnings, 1)
}

func TestWarningNotFolded(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Warn(logger.Allow, "tag", "detail")
	log.Warn(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\ntag: detail (repeat x2)\n")
}

func TestNewEcho(t *testing.T) {
	_, err := logger.NewEcho("info")
	test.ExpectSuccess(t, err)

	_, err = logger.NewEcho("shouting")
	test.ExpectFailure(t, err)
}
