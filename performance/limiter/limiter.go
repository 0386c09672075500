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

// Package limiter limits the rate at which frames are emulated.
//
// A new Limiter is created with the number of frames per second:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Emulation of a frame can then be stalled with the Wait() function:
//
//	for {
//		lim.Wait()
//		rc.Emulate(cyclesPerFrame)
//	}
//
// A Limiter with a rate of zero or less never waits.
package limiter

import (
	"time"
)

// Limiter triggers at a fixed rate.
type Limiter struct {
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(framesPerSecond int) *Limiter {
	lim := &Limiter{}
	if framesPerSecond > 0 {
		lim.ticker = time.NewTicker(time.Second / time.Duration(framesPerSecond))
	}
	return lim
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() {
	if lim.ticker == nil {
		return
	}
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has happened since the last call to
// Wait() or HasWaited(). It does not block.
func (lim *Limiter) HasWaited() bool {
	if lim.ticker == nil {
		return true
	}
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will not block after Stop() has been called.
func (lim *Limiter) Stop() {
	if lim.ticker != nil {
		lim.ticker.Stop()
		lim.ticker = nil
	}
}
