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

// Package prefs provides typed preference values and a way of storing them in
// a preferences file.
//
// Preference values are instances of Bool, Int or String. Each value can have
// a hook function that is called before and after the value changes. The
// hook called before the change can veto the new value by returning an
// error.
//
// Values are added to a Disk with a dotted key. For example:
//
//	var enabled prefs.Bool
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("recompiler.enabled", &enabled)
//	dsk.Load()
//
// The preferences file is a TOML file. More than one Disk can use the same
// file without overwriting the values saved by the other Disks.
//
// Values can be overridden from the command line with the command line stack.
// A command line group is a string of key/value pairs:
//
//	recompiler.enabled::false; run.origin::0xc000
//
// Values in the top group of the stack are applied by Disk.Load() and are
// consumed when they are applied.
package prefs
