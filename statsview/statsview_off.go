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

//go:build !statsview

package statsview

import "io"

// Server is a running statistics server.
type Server struct{}

// Launch does nothing unless the program was built with the statsview
// build tag.
func Launch(_ io.Writer, _ string) *Server {
	return nil
}

// Stop the statistics server.
func (srv *Server) Stop() {}

// Available returns true if a statistics server is available to launch.
func Available() bool {
	return false
}
