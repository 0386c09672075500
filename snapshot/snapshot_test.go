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

package snapshot_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/snapshot"
	"github.com/jetsetilly/gopher6502/test"
)

func newState() *cpu.State {
	mc := cpu.NewCPU(nil)
	mc.Reset()
	mc.Mem[0xfffc] = 0x00
	mc.Mem[0xfffd] = 0x80
	mc.RequestIRQ(cpu.IRQReset)
	mc.A = 0x42
	mc.Mem[0x8000] = 0xea
	mc.Mem[0x0010] = 0x99
	return mc.Snapshot()
}

func TestMarshal(t *testing.T) {
	s := newState()

	data, err := snapshot.Marshal(s)
	test.DemandSuccess(t, err)

	// encoding is deterministic
	again, err := snapshot.Marshal(s)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(data, again))

	r, err := snapshot.Unmarshal(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.A, uint8(0x42))
	test.ExpectEquality(t, r.PC, uint16(0x8000))
	test.ExpectEquality(t, r.S, uint16(0x01ff))
	test.ExpectEquality(t, r.P, uint8(0x22))
	test.ExpectEquality(t, r.StallCycles, 6)
	test.ExpectSuccess(t, bytes.Equal(r.Memory, s.Memory))

	// the restored state can be applied to a CPU
	mc := cpu.NewCPU(nil)
	test.ExpectSuccess(t, mc.RestoreState(r))
	test.ExpectEquality(t, mc.Mem[0x0010], uint8(0x99))
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := snapshot.Unmarshal([]byte{0xff, 0x00})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, snapshot.Decode))

	data, err := cbor.Marshal(map[int]any{1: 99})
	test.DemandSuccess(t, err)
	_, err = snapshot.Unmarshal(data)
	test.ExpectSuccess(t, curated.Is(err, snapshot.Version))

	data, err = cbor.Marshal(map[int]any{1: 1})
	test.DemandSuccess(t, err)
	_, err = snapshot.Unmarshal(data)
	test.ExpectSuccess(t, curated.Is(err, snapshot.NoState))
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "state.snapshot")

	s := newState()
	err := snapshot.Save(pth, s)
	test.DemandSuccess(t, err)

	r, err := snapshot.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.A, s.A)
	test.ExpectSuccess(t, bytes.Equal(r.Memory, s.Memory))

	_, err = snapshot.Load(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, snapshot.FileLoad))
}
