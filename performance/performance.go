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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/recompiler"
)

// CheckError is the pattern for errors returned by Check().
const CheckError = "performance: %v"

// Measurement is the result of a call to Measure().
type Measurement struct {
	Tier     string
	Cycles   int
	Frames   int
	Duration time.Duration
}

// MHz returns the emulated clock rate.
func (m Measurement) MHz() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Cycles) / m.Duration.Seconds() / 1e6
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s: %.2f MHz (%d frames, %d cycles in %.2f seconds)",
		m.Tier, m.MHz(), m.Frames, m.Cycles, m.Duration.Seconds())
}

// Measure runs the emulate function in frames of cyclesPerFrame until the
// duration has elapsed. The emulate function should return the number of
// cycles executed.
//
// The duration is checked between frames so the measurement will be slightly
// longer than the duration requested.
func Measure(tier string, emulate func(cycles int) int, cyclesPerFrame int, duration time.Duration) Measurement {
	m := Measurement{Tier: tier}

	// the measurement window must never be shorter than the duration
	start := time.Now()

	timesUp := time.NewTimer(duration)
	defer timesUp.Stop()

	for {
		select {
		case <-timesUp.C:
			m.Duration = time.Since(start)
			return m
		default:
		}

		m.Cycles += emulate(cyclesPerFrame)
		m.Frames++
	}
}

// Check the performance of the interpreter and the recompiler. The create
// function is called once for each tier and should return a CPU with the
// program attached.
//
// Profiles are created for each tier and are prefixed with the name of the
// tier.
func Check(output io.Writer, profile Profile, create func() (*cpu.CPU, error), cyclesPerFrame int, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(CheckError, fmt.Sprintf("duration of %s is too short", duration))
	}

	tiers := []struct {
		name    string
		emulate func(mc *cpu.CPU) func(int) int
	}{
		{
			name: "interpreter",
			emulate: func(mc *cpu.CPU) func(int) int {
				return mc.Interpret
			},
		},
		{
			name: "recompiler",
			emulate: func(mc *cpu.CPU) func(int) int {
				return recompiler.NewRecompiler(mc, nil).Emulate
			},
		},
	}

	results := make([]Measurement, 0, len(tiers))

	for _, t := range tiers {
		mc, err := create()
		if err != nil {
			return curated.Errorf(CheckError, err)
		}
		emulate := t.emulate(mc)

		var m Measurement
		err = RunProfiler(profile, t.name, func() error {
			m = Measure(t.name, emulate, cyclesPerFrame, duration)
			return nil
		})
		if err != nil {
			return curated.Errorf(CheckError, err)
		}

		fmt.Fprintln(output, m)
		results = append(results, m)
	}

	if base := results[0].MHz(); base > 0 {
		fmt.Fprintf(output, "recompiler speedup: %.2fx\n", results[1].MHz()/base)
	}

	return nil
}
