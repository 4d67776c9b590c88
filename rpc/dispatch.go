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
	"bytes"
	"encoding/json"

	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/savestate"
	"github.com/jetsetilly/framepace/userinput"
)

// Sentinel error patterns. The Error field of a Response is one of these or
// the description of a failed command.
const (
	UnknownCommand = "rpc: unknown command: %s"
	BadArguments   = "rpc: bad arguments: %v"
	UnknownEvent   = "rpc: unknown event: %s"
	NoClient       = "rpc: %s requires a websocket client"
	CommandFailed  = "rpc: %s failed"
	DriverStopped  = "rpc: driver stopped"
)

type handler func(srv *Server, args Args, c *client) (any, error)

// commandFailed converts the boolean result of a command surface function
// into an error
func commandFailed(command string, ok bool) error {
	if ok {
		return nil
	}
	return curated.Errorf(CommandFailed, command)
}

// flags returns FlagAll if flags have not been specified.
func (a Args) flags() savestate.Flags {
	if a.Flags == nil {
		return savestate.FlagAll
	}
	return savestate.Flags(*a.Flags)
}

var handlers = map[string]handler{
	"load": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("load", srv.surface.Load(args.Name))
	},
	"quit": func(srv *Server, _ Args, _ *client) (any, error) {
		srv.surface.Quit()
		return nil, nil
	},
	"reset": func(srv *Server, _ Args, _ *client) (any, error) {
		return nil, commandFailed("reset", srv.surface.Reset())
	},
	"pause": func(srv *Server, _ Args, _ *client) (any, error) {
		srv.surface.Pause()
		return nil, nil
	},
	"resume": func(srv *Server, _ Args, _ *client) (any, error) {
		srv.surface.Resume()
		return nil, nil
	},
	"buttonDown": func(srv *Server, args Args, _ *client) (any, error) {
		srv.surface.ButtonDown(args.ID)
		return nil, nil
	},
	"buttonUp": func(srv *Server, args Args, _ *client) (any, error) {
		srv.surface.ButtonUp(args.ID)
		return nil, nil
	},
	"key": func(srv *Server, args Args, _ *client) (any, error) {
		mod, err := userinput.ParseKeyMod(args.Mod)
		if err != nil {
			return nil, curated.Errorf(BadArguments, err)
		}
		return srv.surface.Bridge().KeyEvent(userinput.EventKeyboard{Key: args.Key, Mod: mod, Down: args.Down}), nil
	},
	"setVolume": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("setVolume", srv.surface.SetVolume(args.Value))
	},
	"getVolume": func(srv *Server, _ Args, _ *client) (any, error) {
		return srv.surface.GetVolume(), nil
	},
	"setFastForward": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("setFastForward", srv.surface.SetFastForward(int(args.Value)))
	},
	"getFastForward": func(srv *Server, _ Args, _ *client) (any, error) {
		return srv.surface.GetFastForward(), nil
	},
	"saveState": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("saveState", srv.surface.SaveStateSlot(args.Slot, args.flags()))
	},
	"loadState": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("loadState", srv.surface.LoadStateSlot(args.Slot, args.flags()))
	},
	"screenshot": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("screenshot", srv.surface.Screenshot(args.Name))
	},
	"autoLoadCheats": func(srv *Server, _ Args, _ *client) (any, error) {
		return srv.surface.AutoLoadCheats(), nil
	},
	"bindKey": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("bindKey", srv.surface.BindKey(args.Name, args.ID))
	},
	"setEventCapture": func(srv *Server, args Args, _ *client) (any, error) {
		srv.surface.SetEventCapture(args.Enabled)
		return nil, nil
	},
	"getMainLoopTiming": func(srv *Server, _ Args, _ *client) (any, error) {
		mode, value := srv.surface.MainLoopTiming()
		return Timing{Mode: mode, Value: value}, nil
	},
	"setMainLoopTiming": func(srv *Server, args Args, _ *client) (any, error) {
		return nil, commandFailed("setMainLoopTiming", srv.surface.SetMainLoopTiming(args.Mode, int(args.Value)))
	},
	"registerCallbacks": registerCallbacks,
	"version": func(srv *Server, _ Args, _ *client) (any, error) {
		return srv.surface.Version(), nil
	},
}

// registerCallbacks replaces the callbacks of the loaded session. Each named
// event is sent to the client when the machine raises it.
func registerCallbacks(srv *Server, args Args, c *client) (any, error) {
	if c == nil {
		return nil, curated.Errorf(NoClient, "registerCallbacks")
	}

	var cb core.Callbacks
	for _, e := range args.Events {
		f := func() { c.event(e) }
		switch e {
		case EventAlarm:
			cb.Alarm = f
		case EventCrashed:
			cb.Crashed = f
		case EventKeysRead:
			cb.KeysRead = f
		case EventSaveDataUpdated:
			cb.SaveDataUpdated = f
		case EventVideoFrameEnded:
			cb.VideoFrameEnded = f
		case EventVideoFrameStarted:
			cb.VideoFrameStarted = f
		default:
			return nil, curated.Errorf(UnknownEvent, e)
		}
	}

	return nil, commandFailed("registerCallbacks", srv.surface.RegisterCallbacks(cb))
}

// dispatch is called by the driver goroutine
func (srv *Server) dispatch(req Request, c *client) Response {
	resp := Response{ID: req.ID}

	h, ok := handlers[req.Command]
	if !ok {
		resp.Error = curated.Errorf(UnknownCommand, req.Command).Error()
		return resp
	}

	var args Args
	if len(bytes.TrimSpace(req.Args)) > 0 {
		if err := json.Unmarshal(req.Args, &args); err != nil {
			resp.Error = curated.Errorf(BadArguments, err).Error()
			return resp
		}
	}

	v, err := h(srv, args, c)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.OK = true
	resp.Value = v
	return resp
}
