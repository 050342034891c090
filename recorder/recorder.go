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

package recorder

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
)

// Recorder writes frames to a recording file that can be replayed by the
// Playback type.
type Recorder struct {
	path string

	f *os.File
	w *bufio.Writer

	header Header
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Any existing file is overwritten. The recording must be finished
// with End().
func NewRecorder(path string, author string, description string) (*Recorder, error) {
	rec := &Recorder{
		path: path,
		header: Header{
			Version:         Version,
			UID:             uint32(time.Now().Unix()),
			FPS:             60,
			Controllers:     1,
			StartType:       StartFromPowerOn,
			ControllerFlags: 0x01,
			Author:          author,
			Description:     description,
		},
	}

	var err error

	rec.f, err = os.Create(path)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}
	rec.w = bufio.NewWriter(rec.f)

	// counts in the header are updated by End()
	_, err = rec.w.Write(rec.header.Bytes())
	if err != nil {
		_ = rec.f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", path)

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("recording (%s) %d samples", rec.path, rec.header.InputSamples)
}

// Record a single frame.
func (rec *Recorder) Record(frame pad.Frame) error {
	if rec.f == nil {
		return curated.Errorf("recorder: recording has ended")
	}

	b := [SampleSize]byte{
		byte(frame.Buttons >> 8),
		byte(frame.Buttons),
		byte(frame.StickX),
		byte(frame.StickY),
	}
	_, err := rec.w.Write(b[:])
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	rec.header.InputSamples++
	rec.header.VIFrames++

	return nil
}

// End the recording. The header is updated with the number of frames
// recorded and the file is closed.
func (rec *Recorder) End() error {
	if rec.f == nil {
		return nil
	}

	f := rec.f
	rec.f = nil

	err := rec.w.Flush()
	if err != nil {
		_ = f.Close()
		return curated.Errorf("recorder: %v", err)
	}

	_, err = f.WriteAt(rec.header.Bytes(), 0)
	if err != nil {
		_ = f.Close()
		return curated.Errorf("recorder: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recorded %d samples to %s", rec.header.InputSamples, rec.path)

	return nil
}
