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

package snapshot

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
)

// the version of the encoding. increase the value if the fields of cpu.State
// change in an incompatible way
const version = 1

// Sentinel error patterns.
const (
	Encode   = "snapshot: encode: %v"
	Decode   = "snapshot: decode: %v"
	Version  = "snapshot: unsupported version (%d)"
	NoState  = "snapshot: no state in data"
	FileSave = "snapshot: save: %v"
	FileLoad = "snapshot: load: %v"
)

// the encoded form of a snapshot
type envelope struct {
	Version int        `cbor:"1,keyasint"`
	State   *cpu.State `cbor:"2,keyasint"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Marshal encodes the state.
func Marshal(s *cpu.State) ([]byte, error) {
	data, err := encMode.Marshal(envelope{Version: version, State: s})
	if err != nil {
		return nil, curated.Errorf(Encode, err)
	}
	return data, nil
}

// Unmarshal decodes data created by Marshal().
func Unmarshal(data []byte) (*cpu.State, error) {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, curated.Errorf(Decode, err)
	}
	if env.Version != version {
		return nil, curated.Errorf(Version, env.Version)
	}
	if env.State == nil {
		return nil, curated.Errorf(NoState)
	}
	return env.State, nil
}

// Save the state to the named file. An existing file is overwritten.
func Save(path string, s *cpu.State) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(FileSave, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return curated.Errorf(FileSave, err)
	}

	logger.Logf(logger.Allow, "snapshot", "saved %d bytes to %s", len(data), path)

	return nil
}

// Load state from the named file.
func Load(path string) (*cpu.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(FileLoad, err)
	}

	s, err := Unmarshal(data)
	if err != nil {
		return nil, curated.Errorf(FileLoad, err)
	}

	logger.Logf(logger.Allow, "snapshot", "loaded %s", path)

	return s, nil
}
