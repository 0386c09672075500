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

// Package logger is the central log for the emulation. Entries are tagged,
// usually with the name of the package making the entry, and repeated
// entries are collapsed into a single entry with a repeat count.
//
// Log entries are only added if the Permission argument allows it. The Allow
// value can be used when an entry should always be made.
//
// The central log is bounded and the oldest entries are discarded as new ones
// are added. Independent logs can be created with NewLogger(), which is
// useful for testing.
package logger
