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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/prefs"
	"github.com/jetsetilly/padmux/test"
)

const defaultFile = `fullscreen false
key_a 16384
key_b 32768
key_start 8
key_l 4096
key_r 512
key_z 8448
key_cup 16
key_cdown 64
key_cleft 128
key_cright 32
key_stickup 17
key_stickdown 31
key_stickleft 30
key_stickright 32
deadzone 32
trigger_threshold 0.234375
`

// writeTmpFile creates a configuration file with the supplied contents
func writeTmpFile(t *testing.T, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), prefs.DefaultConfigFile)
	err := os.WriteFile(fn, []byte(contents), 0o600)
	test.DemandSuccess(t, err)
	return fn
}

func readTmpFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

// reports returns the log entries made by the prefs package, excluding the
// loading and saving notices
func reports() []string {
	var r []string
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "prefs" && strings.HasPrefix(e.Detail, "line") {
				r = append(r, e.Detail)
			}
		}
	})
	return r
}

func TestSaveDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultConfigFile)

	cfg := prefs.NewConfig()
	cfg.Save(fn)
	test.ExpectEquality(t, readTmpFile(t, fn), defaultFile)
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultConfigFile)

	cfg := prefs.NewConfig()
	cfg.Fullscreen.Set(true)
	cfg.KeyA.Set(0xffffffff)
	cfg.KeyZ.Set(0)
	cfg.KeyStickLeft.Set(0x14b)
	cfg.Deadzone.Set(12)
	cfg.TriggerThreshold.Set(0.5)
	cfg.Save(fn)

	loaded := prefs.NewConfig()
	loaded.Load(fn)
	test.ExpectDeepEquality(t, loaded.Values(), cfg.Values())

	// floats survive with six decimal places
	cfg.TriggerThreshold.Set(0.123456)
	cfg.Save(fn)
	loaded.Load(fn)
	test.ExpectApproximate(t, loaded.TriggerThreshold.Get(), 0.123456, 0.000001)
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultConfigFile)

	cfg := prefs.NewConfig()
	cfg.Load(fn)

	// file has been created with default values
	test.ExpectEquality(t, readTmpFile(t, fn), defaultFile)
	test.ExpectDeepEquality(t, cfg.Values(), prefs.DefaultValues())
}

func TestUnknownOption(t *testing.T) {
	logger.Clear()

	fn := writeTmpFile(t, "key_a 1\nfoo 1\nkey_b 2\nfullscreen true\n")

	cfg := prefs.NewConfig()
	cfg.Load(fn)
	test.ExpectEquality(t, cfg.KeyA.Get(), uint32(1))
	test.ExpectEquality(t, cfg.KeyB.Get(), uint32(2))
	test.ExpectEquality(t, cfg.Fullscreen.Get(), true)

	r := reports()
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0], "line 2: unknown option 'foo'")
}

func TestProblemsAreWarnings(t *testing.T) {
	logger.Clear()

	core, observed := observer.New(zapcore.WarnLevel)
	logger.SetEcho(zap.New(core))
	defer logger.SetEcho(nil)

	fn := writeTmpFile(t, "key_a 1\nfoo 1\nkey_b\ndeadzone x\n")
	cfg := prefs.NewConfig()
	cfg.Load(fn)

	// loading is not a warning but each of the three problems is
	msgs := make([]string, 0, observed.Len())
	for _, e := range observed.All() {
		msgs = append(msgs, e.Message)
	}
	test.DemandEquality(t, len(msgs), 3)
	test.ExpectEquality(t, msgs[0], "line 2: unknown option 'foo'")
	test.ExpectEquality(t, msgs[1], "line 3: expected value for 'key_b'")
	test.ExpectSuccess(t, strings.HasPrefix(msgs[2], "line 4: "))
}

func TestMissingValue(t *testing.T) {
	logger.Clear()

	fn := writeTmpFile(t, "key_a\nkey_b 2\n")

	cfg := prefs.NewConfig()
	cfg.Load(fn)
	test.ExpectEquality(t, cfg.KeyA.Get(), prefs.DefaultValues().KeyA)
	test.ExpectEquality(t, cfg.KeyB.Get(), uint32(2))

	r := reports()
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0], "line 1: expected value for 'key_a'")
}

func TestMalformedValues(t *testing.T) {
	logger.Clear()

	fn := writeTmpFile(t, strings.Join([]string{
		"key_a notanumber",
		"key_b -1",
		"key_l 12abc",
		"key_r 4294967296",
		"fullscreen yes",
		"fullscreen TRUE",
		"trigger_threshold abc",
		"trigger_threshold inf",
		"deadzone 40",
	}, "\n"))

	cfg := prefs.NewConfig()
	cfg.Fullscreen.Set(true)
	cfg.Load(fn)

	def := prefs.DefaultValues()
	test.ExpectEquality(t, cfg.KeyA.Get(), def.KeyA)
	test.ExpectEquality(t, cfg.KeyB.Get(), def.KeyB)
	test.ExpectEquality(t, cfg.KeyL.Get(), def.KeyL)
	test.ExpectEquality(t, cfg.KeyR.Get(), def.KeyR)
	test.ExpectEquality(t, cfg.TriggerThreshold.Get(), def.TriggerThreshold)

	// the pre-load value is kept, not the default
	test.ExpectEquality(t, cfg.Fullscreen.Get(), true)

	// processing continued to the end of the file. note that the last line
	// has no newline
	test.ExpectEquality(t, cfg.Deadzone.Get(), uint32(40))

	test.ExpectEquality(t, len(reports()), 8)
}

func TestNoRollback(t *testing.T) {
	fn := writeTmpFile(t, "deadzone 10\ndeadzone bad\n")

	cfg := prefs.NewConfig()
	cfg.Load(fn)
	test.ExpectEquality(t, cfg.Deadzone.Get(), uint32(10))
}

func TestWhitespace(t *testing.T) {
	logger.Clear()

	fn := writeTmpFile(t, "\n   \n\t\t\n  key_a   99  \n\r\n\tkey_b\t7 extra words\n\n")

	cfg := prefs.NewConfig()
	cfg.Load(fn)
	test.ExpectEquality(t, cfg.KeyA.Get(), uint32(99))
	test.ExpectEquality(t, cfg.KeyB.Get(), uint32(7))

	// blank lines are not reported
	test.ExpectEquality(t, len(reports()), 0)
}

func TestLongLine(t *testing.T) {
	logger.Clear()

	long := strings.Repeat("x", 100000)
	fn := writeTmpFile(t, long+" 1\nkey_a 5\n")

	cfg := prefs.NewConfig()
	cfg.Load(fn)
	test.ExpectEquality(t, cfg.KeyA.Get(), uint32(5))

	r := reports()
	test.DemandEquality(t, len(r), 1)
	test.ExpectSuccess(t, strings.HasPrefix(r[0], "line 1: unknown option"))
}

func TestSaveFailure(t *testing.T) {
	logger.Clear()

	fn := filepath.Join(t.TempDir(), "missing", prefs.DefaultConfigFile)

	// saving to a directory that doesn't exist does nothing but log the
	// failure
	cfg := prefs.NewConfig()
	cfg.Save(fn)

	_, err := os.Stat(fn)
	test.ExpectFailure(t, err)

	var logged bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			logged = logged || strings.HasPrefix(e.Detail, "cannot save configuration")
		}
	})
	test.ExpectSuccess(t, logged)
}

func TestValuesAreCopies(t *testing.T) {
	cfg := prefs.NewConfig()
	v := cfg.Values()
	cfg.Deadzone.Set(100)
	test.ExpectEquality(t, v.Deadzone, prefs.DefaultValues().Deadzone)
	test.ExpectEquality(t, cfg.Values().Deadzone, uint32(100))
}
