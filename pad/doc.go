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

// Package pad defines the canonical controller state produced once per poll.
//
// A Frame is written to by every backend in turn. The merge discipline is
// asymmetric:
//
//   - buttons are combined with a bitwise OR. A button is pressed if any
//     backend says it is pressed. Use Press().
//
//   - the stick and the status code have exactly one value per frame. The
//     last backend to write them wins. Use SetStick() and SetStatus().
//
// A backend with nothing to report leaves the frame alone. In particular, a
// backend should not write a centred stick unless it really means to
// override the stick position reported by an earlier backend.
//
// A backend must not read the button mask to make decisions. The only
// permitted operation on the mask, other than Press(), is Override(), which
// replaces the mask outright. Override() is reserved for backends that claim
// authority over the whole frame, such as recorded input playback.
package pad
