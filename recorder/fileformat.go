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
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/jetsetilly/padmux/curated"
)

// recording file format
// ---------------------
//
// the file begins with a header of HeaderSize bytes. all numbers in the
// header are little-endian.
//
//	0x000  signature "M64\x1a"
//	0x004  version (uint32)
//	0x008  unique id (uint32)
//	0x00c  number of frames (uint32)
//	0x010  rerecord count (uint32)
//	0x014  frames per second (byte)
//	0x015  number of controllers (byte)
//	0x018  number of input samples (uint32)
//	0x01c  start type (uint16)
//	0x020  controller flags (uint32)
//	0x222  author (UTF-8, nul padded)
//	0x300  description (UTF-8, nul padded)
//
// the header is followed by one sample of SampleSize bytes per frame
//
//	0  buttons (high byte)
//	1  buttons (low byte)
//	2  stick x (int8)
//	3  stick y (int8)

// HeaderSize is the size of the header in bytes.
const HeaderSize = 0x400

// SampleSize is the size of a single frame in bytes.
const SampleSize = 4

// Signature is the first four bytes of a recording.
const Signature = "M64\x1a"

// Version of the format written by the Recorder.
const Version = 3

// List of values for the start type field.
const (
	StartFromSnapshot = 1
	StartFromPowerOn  = 2
)

// offsets and lengths of fields
const (
	offVersion         = 0x004
	offUID             = 0x008
	offVIFrames        = 0x00c
	offRerecords       = 0x010
	offFPS             = 0x014
	offControllers     = 0x015
	offInputSamples    = 0x018
	offStartType       = 0x01c
	offControllerFlags = 0x020
	offAuthor          = 0x222
	lenAuthor          = 222
	offDescription     = 0x300
	lenDescription     = 256
)

// Sentinal errors returned by ReadHeader().
const (
	BadSignature = "recorder: not a recording (signature is %q)"
	ShortHeader  = "recorder: header is incomplete: %v"
)

// Header of a recording file.
type Header struct {
	Version         uint32 `yaml:"version"`
	UID             uint32 `yaml:"uid"`
	VIFrames        uint32 `yaml:"frames"`
	Rerecords       uint32 `yaml:"rerecords"`
	FPS             uint8  `yaml:"fps"`
	Controllers     uint8  `yaml:"controllers"`
	InputSamples    uint32 `yaml:"samples"`
	StartType       uint16 `yaml:"start_type"`
	ControllerFlags uint32 `yaml:"controller_flags"`
	Author          string `yaml:"author"`
	Description     string `yaml:"description"`
}

// putString copies the string into the field, truncated if necessary so that
// there is always at least one nul byte. a multi-byte character is never
// split.
func putString(field []byte, s string) {
	if len(s) > len(field)-1 {
		s = strings.ToValidUTF8(s[:len(field)-1], "")
	}
	copy(field, s)
}

// getString returns the field up to the first nul byte.
func getString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// Bytes returns the header as it is written to a file.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b, Signature)
	binary.LittleEndian.PutUint32(b[offVersion:], h.Version)
	binary.LittleEndian.PutUint32(b[offUID:], h.UID)
	binary.LittleEndian.PutUint32(b[offVIFrames:], h.VIFrames)
	binary.LittleEndian.PutUint32(b[offRerecords:], h.Rerecords)
	b[offFPS] = h.FPS
	b[offControllers] = h.Controllers
	binary.LittleEndian.PutUint32(b[offInputSamples:], h.InputSamples)
	binary.LittleEndian.PutUint16(b[offStartType:], h.StartType)
	binary.LittleEndian.PutUint32(b[offControllerFlags:], h.ControllerFlags)
	putString(b[offAuthor:offAuthor+lenAuthor], h.Author)
	putString(b[offDescription:offDescription+lenDescription], h.Description)
	return b
}

// ReadHeader reads and decodes the header from the reader. If the signature
// is wrong then the header is still decoded and returned alongside a
// BadSignature error. Any other error means the header is unusable.
func ReadHeader(r io.Reader) (Header, error) {
	b := make([]byte, HeaderSize)
	_, err := io.ReadFull(r, b)
	if err != nil {
		return Header{}, curated.Errorf(ShortHeader, err)
	}

	h := Header{
		Version:         binary.LittleEndian.Uint32(b[offVersion:]),
		UID:             binary.LittleEndian.Uint32(b[offUID:]),
		VIFrames:        binary.LittleEndian.Uint32(b[offVIFrames:]),
		Rerecords:       binary.LittleEndian.Uint32(b[offRerecords:]),
		FPS:             b[offFPS],
		Controllers:     b[offControllers],
		InputSamples:    binary.LittleEndian.Uint32(b[offInputSamples:]),
		StartType:       binary.LittleEndian.Uint16(b[offStartType:]),
		ControllerFlags: binary.LittleEndian.Uint32(b[offControllerFlags:]),
		Author:          getString(b[offAuthor : offAuthor+lenAuthor]),
		Description:     getString(b[offDescription : offDescription+lenDescription]),
	}

	if string(b[:len(Signature)]) != Signature {
		return h, curated.Errorf(BadSignature, b[:len(Signature)])
	}

	return h, nil
}
