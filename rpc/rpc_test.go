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

package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/framepace/commands"
	"github.com/jetsetilly/framepace/core"
	"github.com/jetsetilly/framepace/core/testcard"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/pacing"
	"github.com/jetsetilly/framepace/rpc"
	"github.com/jetsetilly/framepace/session"
	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/version"
	"github.com/jetsetilly/framepace/video"
)

type fixture struct {
	game   string
	driver *driver.Driver
	server *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	p, err := environment.NewPreferences(dir)
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	f := &fixture{
		game: filepath.Join(dir, "game"+testcard.Extension),
	}
	test.DemandSuccess(t, os.WriteFile(f.game, []byte("TESTCARD"), 0o600))

	sink := video.NewSink()
	ctrl := session.NewController(env, core.NewRegistry(testcard.Factory{}), sink, nil)
	sched := pacing.NewScheduler(ctrl, sink, nil)
	f.driver = driver.NewDriver(env, sched)
	cmds := commands.NewSurface(ctrl, f.driver, userinput.NewBridge(ctrl, sched.FastForward))

	f.server = httptest.NewServer(rpc.NewServer(f.driver, cmds).Handler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = f.driver.Run(ctx, nil)
		close(done)
	}()

	t.Cleanup(func() {
		f.server.Close()
		cancel()
		<-done
	})

	return f
}

func (f *fixture) post(t *testing.T, command string, args string) rpc.Response {
	t.Helper()

	resp, err := http.Post(f.server.URL+"/api/"+command, "application/json", strings.NewReader(args))
	test.DemandSuccess(t, err)
	defer resp.Body.Close()

	var r rpc.Response
	test.DemandSuccess(t, json.NewDecoder(resp.Body).Decode(&r))
	test.ExpectEquality(t, resp.StatusCode == http.StatusOK, r.OK)
	return r
}

// message is either a Response or an Event
type message struct {
	ID    int             `json:"id"`
	OK    bool            `json:"ok"`
	Value json.RawMessage `json:"value"`
	Error string          `json:"error"`
	Event string          `json:"event"`
}

type wsClient struct {
	t      *testing.T
	ws     *websocket.Conn
	id     int
	events []string
}

func (f *fixture) dial(t *testing.T) *wsClient {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { ws.Close() })

	test.DemandSuccess(t, ws.SetReadDeadline(time.Now().Add(10*time.Second)))
	return &wsClient{t: t, ws: ws}
}

// read the next message, collecting events
func (c *wsClient) read() message {
	c.t.Helper()

	var m message
	test.DemandSuccess(c.t, c.ws.ReadJSON(&m))
	if m.Event != "" {
		c.events = append(c.events, m.Event)
	}
	return m
}

// send a command and wait for its response. events that arrive in the
// meantime are collected
func (c *wsClient) call(command string, args any) message {
	c.t.Helper()

	c.id++
	req := map[string]any{"id": c.id, "command": command}
	if args != nil {
		req["args"] = args
	}
	test.DemandSuccess(c.t, c.ws.WriteJSON(req))

	for {
		m := c.read()
		if m.Event == "" {
			test.DemandEquality(c.t, m.ID, c.id)
			return m
		}
	}
}

func TestHTTP(t *testing.T) {
	f := newFixture(t)

	r := f.post(t, "version", "")
	test.ExpectSuccess(t, r.OK)
	test.ExpectEquality(t, r.Value, any(version.String()))

	// nothing loaded
	r = f.post(t, "reset", "")
	test.ExpectFailure(t, r.OK)
	test.ExpectEquality(t, r.Error, "rpc: reset failed")

	r = f.post(t, "load", `{"name": "`+f.game+`"}`)
	test.ExpectSuccess(t, r.OK)

	r = f.post(t, "setVolume", `{"value": 0.5}`)
	test.ExpectSuccess(t, r.OK)
	r = f.post(t, "getVolume", "")
	test.ExpectEquality(t, r.Value, any(0.5))

	r = f.post(t, "setVolume", `{"value": 3}`)
	test.ExpectFailure(t, r.OK)

	// modifiers other than caps and num lock stop the key reaching the session
	r = f.post(t, "key", `{"key": "f", "down": true, "mod": "shift"}`)
	test.ExpectSuccess(t, r.OK)
	test.ExpectEquality(t, r.Value, any(false))
	r = f.post(t, "getFastForward", "")
	test.ExpectEquality(t, r.Value, any(1.0))

	r = f.post(t, "key", `{"key": "f", "down": true, "mod": "caps"}`)
	test.ExpectEquality(t, r.Value, any(true))
	r = f.post(t, "getFastForward", "")
	test.ExpectEquality(t, r.Value, any(2.0))
	f.post(t, "key", `{"key": "f"}`)

	r = f.post(t, "key", `{"key": "f", "mod": "hyper"}`)
	test.ExpectFailure(t, r.OK)

	r = f.post(t, "getMainLoopTiming", "")
	test.ExpectSuccess(t, r.OK)
	b, err := json.Marshal(r.Value)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), `{"mode":1,"value":1}`)

	r = f.post(t, "nonsense", "")
	test.ExpectFailure(t, r.OK)
	test.ExpectEquality(t, r.Error, "rpc: unknown command: nonsense")

	r = f.post(t, "load", `{"name": 10}`)
	test.ExpectFailure(t, r.OK)

	// callbacks need a websocket to deliver events to
	r = f.post(t, "registerCallbacks", `{"events": ["alarm"]}`)
	test.ExpectFailure(t, r.OK)
}

func TestWebsocket(t *testing.T) {
	f := newFixture(t)
	c := f.dial(t)

	m := c.call("load", map[string]any{"name": f.game})
	test.ExpectSuccess(t, m.OK)

	m = c.call("setFastForward", map[string]any{"value": 3})
	test.ExpectSuccess(t, m.OK)
	m = c.call("getFastForward", nil)
	test.ExpectEquality(t, string(m.Value), "3")

	m = c.call("setFastForward", map[string]any{"value": 0})
	test.ExpectFailure(t, m.OK)

	m = c.call("registerCallbacks", map[string]any{"events": []string{"nonsense"}})
	test.ExpectFailure(t, m.OK)
	test.ExpectEquality(t, m.Error, "rpc: unknown event: nonsense")

	m = c.call("registerCallbacks", map[string]any{"events": []string{rpc.EventVideoFrameEnded}})
	test.ExpectSuccess(t, m.OK)

	// the driver is running so frame events arrive without further requests
	for len(c.events) == 0 {
		c.read()
	}
	test.ExpectEquality(t, c.events[0], rpc.EventVideoFrameEnded)

	m = c.call("saveState", map[string]any{"slot": 2})
	test.ExpectSuccess(t, m.OK)
	m = c.call("loadState", map[string]any{"slot": 2, "flags": 0})
	test.ExpectSuccess(t, m.OK)
	m = c.call("loadState", map[string]any{"slot": 3})
	test.ExpectFailure(t, m.OK)

	m = c.call("quit", nil)
	test.ExpectSuccess(t, m.OK)
	m = c.call("getVolume", nil)
	test.ExpectEquality(t, string(m.Value), "")
}

func TestShutdown(t *testing.T) {
	f := newFixture(t)
	c := f.dial(t)

	m := c.call("shutdown", nil)
	test.ExpectSuccess(t, m.OK)

	for !f.driver.Stopped() {
		time.Sleep(time.Millisecond)
	}

	m = c.call("version", nil)
	test.ExpectFailure(t, m.OK)
	test.ExpectEquality(t, m.Error, rpc.DriverStopped)
}
