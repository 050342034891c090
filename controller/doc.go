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

// Package controller combines any number of input sources into a single pad
// frame.
//
// Each input source is a Backend. The Aggregator holds the backends in a
// fixed order and polls each of them in that order, once per frame. Before
// polling, the frame is reset so every frame starts with no buttons pressed,
// the stick centred and a status of OK.
//
// Backends contribute to the frame with the methods of pad.Frame. Buttons
// are merged with Press(), so a button held on any source is held in the
// frame. The stick and status are overwritten, so the last backend to write
// them wins. A backend with nothing to say should leave the frame alone.
//
// A backend that must be authoritative, such as the playback of a
// recording, uses Override() and should be placed last.
//
// The packages below controller provide the backends. The set of backends
// in use is decided by the application when the Aggregator is created and
// is not changed afterwards.
package controller
