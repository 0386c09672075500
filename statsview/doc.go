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

// Package statsview launches a local web page showing runtime statistics
// (heap, goroutines, GC pauses) while the emulation runs. It is useful for
// watching the allocation behaviour of the recompiler as blocks are compiled.
//
// The page is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// After launch the statistics are viewable at:
//
//	localhost:16502/debug/statsview
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

// DefaultAddress is the address the statistics server listens on if Launch()
// is given an empty address.
const DefaultAddress = "localhost:16502"

const path = "/debug/statsview"
