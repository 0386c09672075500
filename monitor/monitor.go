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

package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/recompiler"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// list of key codes with special meaning
const (
	keyInterrupt = 3 // end-of-text character
	keyEsc       = 27
)

// the number of instructions listed by the disassemble command
const listingLength = 8

// the number of log entries shown by the log command
const logLength = 10

// KeyReader is the source of commands for Run().
type KeyReader interface {
	ReadKey() (byte, error)
}

// Monitor steps a CPU on command.
type Monitor struct {
	mc  *cpu.CPU
	rc  *recompiler.Recompiler
	out io.Writer

	// the number of cycles run by the frame command
	CyclesPerFrame int

	// lines are cropped to this width. a value of zero means no cropping
	Width int

	// total number of cycles executed since the monitor was created
	cycles int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, rc *recompiler.Recompiler, out io.Writer) *Monitor {
	return &Monitor{
		mc:             mc,
		rc:             rc,
		out:            out,
		CyclesPerFrame: 29781,
	}
}

// Run reads and acts upon keys until the quit command or until the reader
// returns an error.
func (m *Monitor) Run(keys KeyReader) error {
	m.printf("gopher6502 monitor. press ? for help\n")
	m.status()

	for {
		k, err := keys.ReadKey()
		if err != nil {
			return err
		}
		if m.Command(k) {
			return nil
		}
	}
}

// Command acts upon the key. Returns true if the key is the quit command.
func (m *Monitor) Command(key byte) bool {
	switch key {
	case 'q', keyInterrupt, keyEsc:
		return true

	case 's', ' ':
		m.cycles += m.mc.Step()
		m.status()

	case 'u':
		m.cycles += m.rc.Emulate(1)
		m.status()

	case 'f':
		m.cycles += m.rc.Emulate(m.CyclesPerFrame)
		m.status()

	case 'b':
		blk := m.rc.BlockAt(m.mc.PC)
		if blk == nil {
			m.printf("$%04x is not in a block\n", m.mc.PC)
			break // switch
		}
		blk.Dump(m.out, m.rc.Metadata, m.disassemble)

	case 'd':
		a := m.mc.PC
		for i := 0; i < listingLength; i++ {
			e := disassembly.Disassemble(m.mc.Mem, a)
			m.printf("%s\n", e)
			a = e.Next()
		}

	case 'i':
		m.mc.RequestIRQ(cpu.IRQNormal)
		m.status()

	case 'n':
		m.mc.RequestIRQ(cpu.IRQNMI)
		m.status()

	case 'r':
		m.mc.RequestIRQ(cpu.IRQReset)
		m.status()

	case 't':
		m.printf("%s\n", m.rc.Stats())

	case 'l':
		w := &strings.Builder{}
		logger.Tail(w, logLength)
		m.printf("%s", w)

	case 'm':
		m.printf("%s", memorymap.Summary())

	case '?':
		m.printf("s step, u step (recompiler), f frame, b block, d disassemble\n")
		m.printf("i IRQ, n NMI, r reset, t stats, l log, m memory map, q quit\n")
	}

	return false
}

func (m *Monitor) disassemble(address uint16) string {
	return disassembly.Disassemble(m.mc.Mem, address).String()
}

// status prints the registers and the next instruction
func (m *Monitor) status() {
	s := fmt.Sprintf("%s  %s", m.mc, m.disassemble(m.mc.PC))
	if m.mc.Halted {
		s = fmt.Sprintf("%s  HALTED", s)
	}
	m.printf("%s  [%d]\n", s, m.cycles)
}

func (m *Monitor) printf(format string, a ...any) {
	s := fmt.Sprintf(format, a...)
	if m.Width > 0 {
		lines := strings.Split(s, "\n")
		for i := range lines {
			if len(lines[i]) > m.Width {
				lines[i] = lines[i][:m.Width]
			}
		}
		s = strings.Join(lines, "\n")
	}
	io.WriteString(m.out, s)
}
