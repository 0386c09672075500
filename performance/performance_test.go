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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/test"
)

// newMachine returns a CPU running a tight loop at $8000
func newMachine() (*cpu.CPU, error) {
	mc := cpu.NewCPU(nil)
	mc.Reset()

	// INX; BNE $8000; INY; JMP $8000
	copy(mc.Mem[0x8000:], []uint8{0xe8, 0xd0, 0xfd, 0xc8, 0x4c, 0x00, 0x80})
	mc.Mem[0xfffc] = 0x00
	mc.Mem[0xfffd] = 0x80
	mc.RequestIRQ(cpu.IRQReset)

	return mc, nil
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectEquality(t, curated.Is(err, performance.ProfileError), true)
}

func TestMeasure(t *testing.T) {
	mc, _ := newMachine()
	m := performance.Measure("interpreter", mc.Interpret, 1000, 20*time.Millisecond)
	test.ExpectEquality(t, m.Frames > 0, true)
	test.ExpectEquality(t, m.Cycles >= m.Frames*1000, true)
	test.ExpectEquality(t, m.Duration >= 20*time.Millisecond, true)
	test.ExpectEquality(t, m.MHz() > 0, true)
	test.ExpectEquality(t, strings.HasPrefix(m.String(), "interpreter: "), true)
}

func TestMeasureWindow(t *testing.T) {
	mc, _ := newMachine()
	for _, d := range []time.Duration{time.Millisecond, 3 * time.Millisecond, 10 * time.Millisecond} {
		m := performance.Measure("interpreter", mc.Interpret, 100, d)
		test.ExpectEquality(t, m.Duration >= d, true, d)
	}
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var called bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, prefix, func() error {
		called = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, called, true)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	tw := &test.Writer{}
	err := performance.Check(tw, performance.ProfileNone, newMachine, 1000, 20*time.Millisecond)
	test.ExpectSuccess(t, err)

	lines := strings.Split(strings.TrimSuffix(tw.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, strings.HasPrefix(lines[0], "interpreter: "), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[1], "recompiler: "), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "recompiler speedup: "), true)

	err = performance.Check(tw, performance.ProfileNone, newMachine, 1000, 0)
	test.ExpectEquality(t, curated.Is(err, performance.CheckError), true)
}
