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

// Package cartridgeloader loads 6502 program images and attaches them to a
// CPU.
//
// Two formats are supported. A raw image is copied into memory at an origin
// address (run.origin preference, $8000 by default). An iNES image is
// checked for the "NES\x1a" signature and the PRG-ROM is placed at $8000.
// Only mapper 0 (NROM) images can be attached. A 16k image is mirrored at
// $C000.
//
// The format is chosen by file extension when NewLoader() is given the AUTO
// format. Files with the ".nes" extension are iNES and every other file is
// checked for the iNES signature before falling back to raw.
package cartridgeloader
