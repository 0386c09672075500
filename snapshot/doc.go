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

// Package snapshot encodes the state of the CPU for storage.
//
// The state is encoded with canonical CBOR so that identical states always
// produce identical bytes. Only the state returned by cpu.Snapshot() is
// stored. Compiled blocks are not stored because they are rebuilt from the
// memory image as required.
package snapshot
