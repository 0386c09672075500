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

package recompiler

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/prefs"
)

// InvalidBankSize is returned when the BankSize preference is set to a value
// that does not divide ROM space into equal windows.
const InvalidBankSize = "recompiler: bank size %#x is not valid"

// Preferences for the recompiler.
type Preferences struct {
	dsk *prefs.Disk

	// if Enabled is false then Emulate() uses the CPU's interpreter for all
	// execution
	Enabled prefs.Bool

	// log every block as it is compiled
	Log prefs.Bool

	// the size of the ROM window that a block must fit inside. it should be
	// the same as the bank size of the cartridge mapper
	BankSize prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are not bound to a preferences file. Use
// Bind() to add them to a file.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.BankSize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz <= 0 || sz > 0x8000 || sz&(sz-1) != 0 {
			return curated.Errorf(InvalidBankSize, sz)
		}
		return nil
	})
	p.SetDefaults()
	return p
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Enabled.Set(true)
	_ = p.Log.Set(false)
	_ = p.BankSize.Set(cpubus.DefaultBankSize)
}

// Bind the preferences to the prefs.Disk and load any values from it.
func (p *Preferences) Bind(dsk *prefs.Disk) error {
	p.dsk = dsk
	err := p.dsk.Add("recompiler.enabled", &p.Enabled)
	if err != nil {
		return err
	}
	err = p.dsk.Add("recompiler.log", &p.Log)
	if err != nil {
		return err
	}
	err = p.dsk.Add("recompiler.bankSize", &p.BankSize)
	if err != nil {
		return err
	}
	return p.dsk.Load()
}

// Load recompiler preferences from disk. Does nothing if the preferences
// have not been bound to a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save recompiler preferences to disk. Does nothing if the preferences have
// not been bound to a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
