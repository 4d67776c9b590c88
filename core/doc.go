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

// Package core defines the interface to a machine that can be loaded into a
// session. A machine is stepped one frame at a time, renders into a video
// buffer it is given and produces audio to an audio.Output.
//
// Machines are created by a Factory. Factories are collected in a Registry and
// the Registry is used to find the Factory that recognises the content being
// loaded.
//
// The Config type holds the configuration options common to all machines. A
// machine is told about changes to the configuration with the
// ReloadConfigOption() function.
package core
