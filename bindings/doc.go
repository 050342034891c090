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

// Package bindings translates the binding values of the configuration into
// something the controller backends can use.
//
// Button bindings are masks over the host button word (HostButtons). A pad
// button is pressed when the host word intersects its binding, so a binding
// can name more than one host button and more than one pad button can share
// a host button.
//
// Stick bindings are keyboard scancodes (PC set 1) and are matched exactly.
//
// A Map is a copy. Changing the configuration after New() has been called
// has no effect on the Map.
package bindings
