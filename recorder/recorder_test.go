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

package recorder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/recorder"
	"github.com/jetsetilly/padmux/test"
)

var frames = []pad.Frame{
	{},
	{Buttons: pad.A},
	{Buttons: pad.A | pad.Z | pad.CRight, StickX: 127, StickY: -128},
	{Buttons: pad.Start, StickX: -1, StickY: 1},
	{Buttons: 0xffff, StickX: -128, StickY: 127},
}

func record(t *testing.T, path string) {
	t.Helper()

	rec, err := recorder.NewRecorder(path, "tester", "recording for tests")
	test.DemandSuccess(t, err)
	for _, f := range frames {
		test.DemandSuccess(t, rec.Record(f))
	}
	test.DemandSuccess(t, rec.End())

	// recording can't continue after it has ended
	test.ExpectFailure(t, rec.Record(pad.Frame{}))
	test.ExpectSuccess(t, rec.End())
}

func TestHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.m64")
	record(t, path)

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), recorder.HeaderSize+len(frames)*recorder.SampleSize)
	test.ExpectEquality(t, string(data[:4]), recorder.Signature)

	h, err := recorder.ReadHeader(bytes.NewReader(data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Version, uint32(recorder.Version))
	test.ExpectEquality(t, h.VIFrames, uint32(len(frames)))
	test.ExpectEquality(t, h.InputSamples, uint32(len(frames)))
	test.ExpectEquality(t, h.FPS, uint8(60))
	test.ExpectEquality(t, h.Controllers, uint8(1))
	test.ExpectEquality(t, h.StartType, uint16(recorder.StartFromPowerOn))
	test.ExpectEquality(t, h.ControllerFlags, uint32(1))
	test.ExpectEquality(t, h.Author, "tester")
	test.ExpectEquality(t, h.Description, "recording for tests")

	// fixed offsets
	test.ExpectEquality(t, data[0x14], uint8(60))
	test.ExpectEquality(t, data[0x18], uint8(len(frames)))
	test.ExpectEquality(t, string(data[0x222:0x228]), "tester")

	// first recorded frame with buttons is A
	test.ExpectEquality(t, data[recorder.HeaderSize+4], uint8(0x80))
	test.ExpectEquality(t, data[recorder.HeaderSize+5], uint8(0x00))
}

func TestHeaderStrings(t *testing.T) {
	h := recorder.Header{
		Author:      strings.Repeat("a", 300),
		Description: strings.Repeat("é", 200),
	}

	d, err := recorder.ReadHeader(bytes.NewReader(h.Bytes()))
	test.DemandSuccess(t, err)

	// strings are truncated and always end with a nul byte
	test.ExpectEquality(t, len(d.Author), 221)

	// multi-byte characters are not split
	test.ExpectEquality(t, len(d.Description), 254)
	test.ExpectEquality(t, d.Description, strings.Repeat("é", 127))
}

func TestReadHeaderErrors(t *testing.T) {
	_, err := recorder.ReadHeader(bytes.NewReader([]byte(recorder.Signature)))
	test.ExpectSuccess(t, curated.Is(err, recorder.ShortHeader))

	b := recorder.Header{Author: "someone"}.Bytes()
	copy(b, "XXXX")
	h, err := recorder.ReadHeader(bytes.NewReader(b))
	test.ExpectSuccess(t, curated.Is(err, recorder.BadSignature))
	test.ExpectEquality(t, h.Author, "someone")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.m64")
	record(t, path)

	plb := recorder.NewPlayback(path)
	test.DemandImplements[controller.Backend](t, plb)

	plb.Init()
	test.DemandSuccess(t, plb.Playing())
	test.ExpectEquality(t, plb.Header.Author, "tester")

	for i, expected := range frames {
		var f pad.Frame
		plb.Read(&f)
		test.ExpectEquality(t, f, expected, i)
	}
	test.ExpectEquality(t, plb.Played(), len(frames))
	test.ExpectSuccess(t, plb.Playing())

	// end of the recording. frame is untouched
	f := pad.Frame{Buttons: pad.B, StickX: 9}
	plb.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.B, StickX: 9})
	test.ExpectFailure(t, plb.Playing())

	plb.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.B, StickX: 9})
	test.ExpectSuccess(t, plb.Close())
}

func TestPlaybackIsAuthoritative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.m64")
	record(t, path)

	plb := recorder.NewPlayback(path)
	plb.Init()
	defer plb.Close()

	// the first recorded frame has no buttons pressed
	f := pad.Frame{Buttons: pad.A | pad.B, StickX: 100}
	plb.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{})
}

func TestShortRecording(t *testing.T) {
	logger.Clear()

	path := filepath.Join(t.TempDir(), "test.m64")
	record(t, path)

	// remove half of the last sample
	test.DemandSuccess(t, os.Truncate(path, int64(recorder.HeaderSize+len(frames)*recorder.SampleSize-2)))

	plb := recorder.NewPlayback(path)
	plb.Init()

	for range frames[:len(frames)-1] {
		var f pad.Frame
		plb.Read(&f)
	}
	test.ExpectSuccess(t, plb.Playing())

	var f pad.Frame
	plb.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{})
	test.ExpectFailure(t, plb.Playing())

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "playback: stopped after 4 samples: unexpected EOF\n")
}

func TestMissingRecording(t *testing.T) {
	logger.Clear()

	plb := recorder.NewPlayback(filepath.Join(t.TempDir(), "missing.m64"))
	plb.Init()
	test.ExpectFailure(t, plb.Playing())

	f := pad.Frame{Buttons: pad.L}
	plb.Read(&f)
	test.ExpectEquality(t, f, pad.Frame{Buttons: pad.L})

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "playback: cannot open recording"))
}

func TestBadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.m64")
	record(t, path)

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	copy(data, "XXXX")
	test.DemandSuccess(t, os.WriteFile(path, data, 0o600))

	// playback continues regardless of the signature
	plb := recorder.NewPlayback(path)
	plb.Init()
	defer plb.Close()
	test.ExpectSuccess(t, plb.Playing())

	var f pad.Frame
	plb.Read(&f)
	plb.Read(&f)
	test.ExpectEquality(t, f.Buttons, pad.A)
}

func TestTruncatedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.m64")
	test.DemandSuccess(t, os.WriteFile(path, []byte(recorder.Signature), 0o600))

	plb := recorder.NewPlayback(path)
	plb.Init()
	test.ExpectFailure(t, plb.Playing())
}
