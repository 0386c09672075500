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

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/prefs"
)

// Sentinal error patterns for run preferences.
const (
	InvalidCyclesPerFrame = "run: cycles per frame (%d) must be positive"
	InvalidOrigin         = "run: origin %#x is not a 16 bit address"
)

// the number of CPU cycles in one NTSC NES frame
const defaultCyclesPerFrame = 29781

// runPreferences are the preferences that apply to all modes.
type runPreferences struct {
	// the number of cycles emulated by each call to the recompiler (or the
	// interpreter) in RUN, COMPARE and PERFORMANCE modes
	CyclesPerFrame prefs.Int

	// the load address of raw program images
	Origin prefs.Int
}

func newRunPreferences() *runPreferences {
	p := &runPreferences{}
	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(InvalidCyclesPerFrame, v)
		}
		return nil
	})
	p.Origin.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 0xffff {
			return curated.Errorf(InvalidOrigin, v)
		}
		return nil
	})
	_ = p.CyclesPerFrame.Set(defaultCyclesPerFrame)
	_ = p.Origin.Set(0x8000)
	return p
}

// add the preferences to the disk. values are not loaded
func (p *runPreferences) add(dsk *prefs.Disk) error {
	if err := dsk.Add("run.cyclesPerFrame", &p.CyclesPerFrame); err != nil {
		return err
	}
	return dsk.Add("run.origin", &p.Origin)
}

// prefsPath returns the path to the preferences file in the user's
// configuration directory. the directory is created if necessary
func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "gopher6502")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, prefs.DefaultPrefsFile), nil
}
