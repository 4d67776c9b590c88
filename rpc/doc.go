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

// Package rpc exposes the command surface over HTTP and websockets.
//
// A websocket client connected to /ws sends Request messages and receives a
// Response for each one. If the client registers callbacks with the
// "registerCallbacks" command, then Event messages are also sent as the
// machine raises them. Every Request is a JSON object of the form:
//
//	{"id": 1, "command": "load", "args": {"name": "game.tcd"}}
//
// Single commands can also be sent with an HTTP POST to /api/{command}, with
// the args as the request body.
//
// Commands are run by the driver goroutine between ticks.
package rpc
