// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Server is a running statistics server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch a new goroutine running the statistics server. The address of the
// page is written to output.
func Launch(output io.Writer, address string) *Server {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	srv := &Server{mgr: statsview.New()}
	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, path)

	return srv
}

// Stop the statistics server.
func (srv *Server) Stop() {
	if srv == nil {
		return
	}
	srv.mgr.Stop()
}

// Available returns true if a statistics server is available to launch.
func Available() bool {
	return true
}
