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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// each prefs string and what remains of it when it is popped. the
	// remainder is sorted by key and malformed pairs are dropped
	for _, c := range []struct {
		prefs  string
		remain string
	}{
		{"recompiler.enabled::false", "recompiler.enabled::false"},
		{"   run.origin:: 0xc000 ", "run.origin::0xc000"},
		{"run.origin::0xc000; recompiler.log::true", "recompiler.log::true; run.origin::0xc000"},
		{"run.origin", ""},
		{"run.origin;recompiler.log::true", "recompiler.log::true"},
		{"a::b::c; recompiler.log::true", "recompiler.log::true"},
		{"", ""},
	} {
		prefs.PushCommandLineStack(c.prefs)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.remain, c.prefs)
	}
}

func TestCommandLineConsume(t *testing.T) {
	prefs.PushCommandLineStack("run.origin::0xc000; recompiler.log::true")

	ok, v := prefs.GetCommandLinePref("run.origin")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "0xc000")

	// values are consumed
	ok, _ = prefs.GetCommandLinePref("run.origin")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("recompiler.enabled")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "recompiler.log::true")

	ok, _ = prefs.GetCommandLinePref("recompiler.log")
	test.ExpectFailure(t, ok)
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("run.origin::0x8000")
	prefs.PushCommandLineStack("run.origin::0xc000")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	_, v := prefs.GetCommandLinePref("run.origin")
	test.ExpectEquality(t, v.(string), "0xc000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "run.origin::0x8000")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
