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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

// a program that counts in X and Y, with an NMI handler at $8100 that
// increments a counter in zero page
var testProgram = map[uint16][]uint8{
	// CLI; INX; BNE $8001; INY; JMP $8001
	0x0000: {0x58, 0xe8, 0xd0, 0xfd, 0xc8, 0x4c, 0x01, 0x80},
	// INC $10; RTI
	0x0100: {0xe6, 0x10, 0x40},
}

// writeProgram writes a raw image to a temporary file. the image covers
// $8000 to $81ff so the reset vector is set by the loader
func writeProgram(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	img := make([]uint8, 0x200)
	for o, b := range testProgram {
		copy(img[o:], b)
	}
	pth := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(pth, img, 0o644))
	return pth
}

func TestParseAddress(t *testing.T) {
	a, err := parseAddress("$c000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0xc000))
	a, err = parseAddress(" 0x10 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x10))
	_, err = parseAddress("0x10000")
	test.ExpectFailure(t, err)
}

func TestNewMachine(t *testing.T) {
	pth := writeProgram(t)

	m, err := newMachine("", pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC, uint16(0x8000))
	test.ExpectEquality(t, m.cyclesPerFrame(), defaultCyclesPerFrame)
	test.ExpectEquality(t, m.rc.Prefs.Enabled.Get().(bool), true)
}

func TestMachinePrefs(t *testing.T) {
	pth := writeProgram(t)

	m, err := newMachine("run.origin::0xc000; run.cyclesPerFrame::1000; recompiler.bankSize::0x4000", pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC, uint16(0xc000))
	test.ExpectEquality(t, m.cyclesPerFrame(), 1000)
	test.ExpectEquality(t, m.rc.Prefs.BankSize.Get().(int), 0x4000)

	// command line values are not saved unless requested
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	_, err = newMachine("run.cyclesPerFrame::0", pth, "")
	test.ExpectEquality(t, curated.Has(err, InvalidCyclesPerFrame), true)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestSavedPrefs(t *testing.T) {
	pth := writeProgram(t)

	m, err := newMachine("", pth, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.run.CyclesPerFrame.Set(500))
	test.DemandSuccess(t, m.dsk.Save())

	m, err = newMachine("", pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.cyclesPerFrame(), 500)
}

func TestCompare(t *testing.T) {
	pth := writeProgram(t)

	ref, err := newMachine("run.cyclesPerFrame::1000", pth, "")
	test.DemandSuccess(t, err)
	dut, err := newMachine("run.cyclesPerFrame::1000", pth, "")
	test.DemandSuccess(t, err)

	// the NMI handler address
	for _, m := range []*machine{ref, dut} {
		m.mc.Mem[0xfffa] = 0x00
		m.mc.Mem[0xfffb] = 0x81
	}

	f, d := compareFrames(ref, dut, 20, true)
	test.ExpectEquality(t, d, "")
	test.ExpectEquality(t, f, 20)
	test.ExpectEquality(t, ref.mc.Mem[0x10], uint8(20))

	// a machine that has diverged is reported
	dut.mc.Mem[0x10] = 0
	d = diverges(ref.mc, dut.mc)
	test.ExpectEquality(t, strings.HasPrefix(d, "memory at $0010"), true)

	dut.mc.X++
	d = diverges(ref.mc, dut.mc)
	test.ExpectEquality(t, strings.HasPrefix(d, "registers: "), true)
}
