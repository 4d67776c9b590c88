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

package rpc

import (
	"encoding/json"
)

// Request is a command sent by the client. The ID is echoed in the Response.
type Request struct {
	ID      int             `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response is sent for every Request.
type Response struct {
	ID    int    `json:"id"`
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Event is sent when the machine raises a registered callback.
type Event struct {
	Event string `json:"event"`
}

// Args is the union of the arguments used by all commands. Unused fields are
// ignored.
type Args struct {
	Name    string   `json:"name,omitempty"`
	ID      int      `json:"id,omitempty"`
	Slot    int      `json:"slot,omitempty"`
	Flags   *int     `json:"flags,omitempty"`
	Value   float64  `json:"value,omitempty"`
	Mode    int      `json:"mode,omitempty"`
	Enabled bool     `json:"enabled,omitempty"`
	Key     string   `json:"key,omitempty"`
	Down    bool     `json:"down,omitempty"`
	Mod     string   `json:"mod,omitempty"`
	Events  []string `json:"events,omitempty"`
}

// Timing is the value returned by the getMainLoopTiming command.
type Timing struct {
	Mode  int `json:"mode"`
	Value int `json:"value"`
}

// callback names used in the events list of the registerCallbacks command
const (
	EventAlarm             = "alarm"
	EventCrashed           = "crashed"
	EventKeysRead          = "keysRead"
	EventSaveDataUpdated   = "saveDataUpdated"
	EventVideoFrameEnded   = "videoFrameEnded"
	EventVideoFrameStarted = "videoFrameStarted"
)
