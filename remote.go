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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/modalflag"
	"github.com/jetsetilly/framepace/rpc"
)

func serve(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	opts := addOptions(md)
	addr := md.AddString("addr", "localhost:12601", "address to listen on")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := content(md, false)
	if err != nil {
		return err
	}

	emu, err := newEmulation(env, opts, nil)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           rpc.NewServer(emu.driver, emu.cmds).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	fmt.Fprintf(output, "rpc server listening on %s\n", ln.Addr())

	err = emu.start(filename)
	if err == nil {
		err = emu.run(ctx, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	if serr := <-serveErr; !errors.Is(serr, http.ErrServerClosed) {
		err = errors.Join(err, serr)
	}

	return errors.Join(err, emu.end())
}
