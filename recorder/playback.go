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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
)

// Playback implements the controller.Backend interface. It replays a
// recording made by the Recorder type, one sample per Read().
//
// Playback is authoritative. The buttons of the frame are replaced by the
// recorded buttons, so the Playback backend should be the last backend to be
// read.
type Playback struct {
	path string

	f *os.File
	r *bufio.Reader

	// the header of the recording. only valid after Init()
	Header Header

	// number of samples played so far
	played int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The file is not opened until Init() is called.
func NewPlayback(path string) *Playback {
	return &Playback{
		path: path,
	}
}

func (plb *Playback) String() string {
	return fmt.Sprintf("playback (%s)", plb.path)
}

// Init implements the controller.Backend interface. If the file cannot be
// opened then the failure is logged and the playback contributes nothing.
func (plb *Playback) Init() {
	if plb.f != nil {
		return
	}

	f, err := os.Open(plb.path)
	if err != nil {
		logger.Warnf(logger.Allow, "playback", "cannot open recording: %v", err)
		return
	}

	plb.Header, err = ReadHeader(f)
	if err != nil {
		if !curated.Is(err, BadSignature) {
			logger.Warnf(logger.Allow, "playback", "%s: %v", plb.path, err)
			_ = f.Close()
			return
		}

		// a bad signature is not fatal. the file is played anyway
		logger.Warnf(logger.Allow, "playback", "%s: %v", plb.path, err)
	}

	plb.f = f
	plb.r = bufio.NewReader(f)
	plb.played = 0

	logger.Logf(logger.Allow, "playback", "playing %s (%d samples)", plb.path, plb.Header.InputSamples)
}

// Playing returns true if the recording is open and has not yet ended.
func (plb *Playback) Playing() bool {
	return plb.f != nil
}

// Played returns the number of samples played so far.
func (plb *Playback) Played() int {
	return plb.played
}

// Read implements the controller.Backend interface.
func (plb *Playback) Read(frame *pad.Frame) {
	if plb.f == nil {
		return
	}

	var b [SampleSize]byte
	_, err := io.ReadFull(plb.r, b[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Logf(logger.Allow, "playback", "finished after %d samples", plb.played)
		} else {
			logger.Warnf(logger.Allow, "playback", "stopped after %d samples: %v", plb.played, err)
		}
		_ = plb.Close()
		return
	}

	frame.Override(pad.Button(b[0])<<8 | pad.Button(b[1]))
	frame.SetStick(int8(b[2]), int8(b[3]))
	plb.played++
}

// Close the recording. Playback stops and Read() no longer contributes to
// the frame.
func (plb *Playback) Close() error {
	if plb.f == nil {
		return nil
	}
	err := plb.f.Close()
	plb.f = nil
	plb.r = nil
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}
	return nil
}
