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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// mockMapper records accesses to the peripheral area
type mockMapper struct {
	data   map[uint16]uint8
	reads  []uint16
	writes []uint16
}

func newMockMapper() *mockMapper {
	return &mockMapper{data: make(map[uint16]uint8)}
}

func (mem *mockMapper) Load(address uint16) uint8 {
	mem.reads = append(mem.reads, address)
	return mem.data[address]
}

func (mem *mockMapper) Write(address uint16, data uint8) {
	mem.writes = append(mem.writes, address)
	mem.data[address] = data
}

const (
	testOrigin    = uint16(0x8000)
	testIRQVector = uint16(0x9000)
	testNMIVector = uint16(0xa000)
)

// newTestCPU returns a CPU that has been reset with the PC at testOrigin
func newTestCPU() (*cpu.CPU, *mockMapper) {
	mem := newMockMapper()
	mc := cpu.NewCPU(mem)
	mc.Reset()
	putVector(mc, 0xfffc, testOrigin)
	putVector(mc, 0xfffe, testIRQVector)
	putVector(mc, 0xfffa, testNMIVector)
	mc.RequestIRQ(cpu.IRQReset)
	return mc, mem
}

func putVector(mc *cpu.CPU, vector uint16, address uint16) {
	mc.Mem[vector] = uint8(address)
	mc.Mem[vector+1] = uint8(address >> 8)
}

func putInstructions(mc *cpu.CPU, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mc.Mem[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	mc.Step()
	result := mc.LastResult
	if err := result.IsValid(); err != nil {
		t.Fatal(err)
	}
	return result
}

func assertStatus(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	if mc.Status.String() != expected {
		t.Errorf("status register is %s, wanted %s", mc.Status, expected)
	}
}
