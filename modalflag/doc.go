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

// Package modalflag wraps the flag package so that a command line can be
// divided into modes, each mode with its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called without
// arguments. After parsing, the first non-flag argument is compared (case
// insensitively) against the sub-modes added with AddSubModes(). If it
// matches it becomes the current mode and is consumed. Otherwise the first
// sub-mode is used as the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "BLOCKS")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		from := md.AddAddress("from", 0x8000, "first address")
//		...
//	}
//
// Calling NewMode() starts a new layer of flags for the arguments that
// remain. Modes can be nested to any depth and Path() returns the modes that
// have been selected so far, separated by a slash.
package modalflag
