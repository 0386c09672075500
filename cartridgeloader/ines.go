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

package cartridgeloader

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
)

var inesSignature = []byte{'N', 'E', 'S', 0x1a}

const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	prgBankSize     = 0x4000
	chrBankSize     = 0x2000
)

// flag bits in byte 6 of the header
const (
	inesTrainer = 0x04
)

// parseINES returns the PRG-ROM and the mapper number of an iNES image
func parseINES(data []byte) ([]byte, int, error) {
	if len(data) < inesHeaderSize {
		return nil, 0, curated.Errorf(BadINES, "header too short")
	}
	if string(data[:4]) != string(inesSignature) {
		return nil, 0, curated.Errorf(BadINES, "no signature")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	mapper := int(data[6]>>4) | int(data[7]&0xf0)

	if prgBanks == 0 || prgBanks > 2 {
		return nil, mapper, curated.Errorf(BadINES, fmt.Sprintf("%d PRG banks", prgBanks))
	}

	offset := inesHeaderSize
	if data[6]&inesTrainer == inesTrainer {
		offset += inesTrainerSize
	}

	end := offset + prgBanks*prgBankSize
	if end+chrBanks*chrBankSize > len(data) {
		return nil, mapper, curated.Errorf(BadINES, "file is truncated")
	}

	prg := make([]byte, end-offset)
	copy(prg, data[offset:end])

	return prg, mapper, nil
}
