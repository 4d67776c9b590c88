// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

// Package userinput handles input from real hardware that the user is using
// to control the emulated machine.
//
// It can be thought of as a translation layer between the host (SDL window,
// terminal, remote connection) and the session. The host translates its own
// events into an EventKeyboard and passes it to the KeyEvent() function of a
// Bridge instance.
//
// Key events carrying any modifier other than num-lock or caps-lock are
// ignored. This prevents accelerator chords from leaking into the machine's
// input. The fast-forward key is handled by the Bridge itself and is never
// passed to the machine. Every other key is looked up in the InputMap of the
// session and, if it is bound, sets or clears the bound button.
//
// Key names are case insensitive. The host's canonical name for a key is
// normalised to lower case before it is used.
//
// The SDL implementation was the model for this package and so there will be
// a bias towards that system.
package userinput
