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
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jetsetilly/framepace/commands"
	"github.com/jetsetilly/framepace/driver"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
)

const logTag = "rpc"

// the number of messages waiting to be written to a client before events are
// dropped
const outboxSize = 256

// Server handles HTTP and websocket requests.
type Server struct {
	env     *environment.Environment
	driver  *driver.Driver
	surface *commands.Surface

	router   *mux.Router
	upgrader websocket.Upgrader
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(drv *driver.Driver, surface *commands.Surface) *Server {
	srv := &Server{
		env:     surface.Controller().Environment(),
		driver:  drv,
		surface: surface,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	srv.router = mux.NewRouter()
	srv.router.HandleFunc("/ws", srv.serveWebsocket)
	srv.router.HandleFunc("/api/{command}", srv.serveCommand).Methods(http.MethodPost)

	return srv
}

// Handler returns the HTTP handler for the server.
func (srv *Server) Handler() http.Handler {
	return srv.router
}

// run the request in the driver goroutine
func (srv *Server) run(req Request, c *client) Response {
	// shutdown stops the driver so there is nothing to wait for
	if req.Command == "shutdown" {
		if !srv.driver.Post(srv.surface.Shutdown) {
			return Response{ID: req.ID, Error: DriverStopped}
		}
		return Response{ID: req.ID, OK: true}
	}

	var resp Response
	if !srv.driver.Do(func() {
		resp = srv.dispatch(req, c)
	}) {
		return Response{ID: req.ID, Error: DriverStopped}
	}
	return resp
}

func (srv *Server) serveCommand(w http.ResponseWriter, r *http.Request) {
	req := Request{Command: mux.Vars(r)["command"]}

	var args json.RawMessage
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	req.Args = args

	resp := srv.run(req, nil)

	w.Header().Set("Content-Type", "application/json")
	if !resp.OK {
		w.WriteHeader(http.StatusBadRequest)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log(srv.env, logTag, err)
	}
}

func (srv *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log(srv.env, logTag, err)
		return
	}

	c := &client{
		ws:     ws,
		outbox: make(chan any, outboxSize),
		done:   make(chan struct{}),
	}

	logger.Logf(srv.env, logTag, "client connected: %s", ws.RemoteAddr())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.write(srv.env)
	}()

	for {
		var req Request
		if err := ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log(srv.env, logTag, err)
			}
			break
		}

		// responses are never dropped
		select {
		case c.outbox <- srv.run(req, c):
		case <-c.done:
		}
	}

	c.close()
	wg.Wait()
	_ = ws.Close()

	logger.Logf(srv.env, logTag, "client disconnected: %s", ws.RemoteAddr())
}

// client is a single websocket connection.
type client struct {
	ws     *websocket.Conn
	outbox chan any

	done      chan struct{}
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// write messages from the outbox until the client is closed. this is the
// only goroutine that writes to the websocket
func (c *client) write(env *environment.Environment) {
	for {
		select {
		case <-c.done:
			return
		case m := <-c.outbox:
			if err := c.ws.WriteJSON(m); err != nil {
				logger.Log(env, logTag, err)
				c.close()
				return
			}
		}
	}
}

// event is called by the driver goroutine. the event is dropped if the
// outbox is full
func (c *client) event(name string) {
	select {
	case <-c.done:
	case c.outbox <- Event{Event: name}:
	default:
	}
}
