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

// Package logger is the central log for the application. Configuration
// errors, device problems and playback progress are all reported here rather
// than being returned to the caller.
//
// Entries are tagged with the name of the reporting component. Entries added
// with Warn() or Warnf() report a failure, such as a malformed configuration
// line or a device that could not be opened. The application can echo
// entries as they arrive by giving the logger a zap.Logger with SetEcho().
// Ordinary entries are echoed at the info level and failures at the warn
// level.
package logger

import (
	"io"

	"go.uber.org/zap"
)

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Warn adds an entry that reports a failure to the central logger.
func Warn(perm Permission, tag string, detail any) {
	central.Warn(perm, tag, detail)
}

// Warnf adds a formatted entry that reports a failure to the central logger.
func Warnf(perm Permission, tag string, detail string, args ...any) {
	central.Warnf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints log entries through the zap logger as they are added.
func SetEcho(echo *zap.Logger) {
	central.SetEcho(echo)
}

// BorrowLog gives the provided function the critial section and access to the
// list of log entries.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
