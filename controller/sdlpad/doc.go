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

// Package sdlpad provides controller backends that use SDL. Gamepad reads the
// first game controller attached to the host and KeyState is a keyboard
// source for the keyboard backend.
//
// SDL only reports the keyboard to a focused window so KeyState needs a
// Window to be open. The Window also reports when the user has asked to quit.
//
// Both types expect the SDL event queue to be pumped by the application, or
// by KeyState.Sample(), once per frame.
package sdlpad
