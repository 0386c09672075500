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
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinal error patterns.
const (
	LoadError       = "cartridgeloader: %v"
	UnexpectedHash  = "cartridgeloader: unexpected hash value (%s)"
	NotLoaded       = "cartridgeloader: %s has not been loaded"
	ImageTooLarge   = "cartridgeloader: image of %d bytes does not fit at $%04x"
	BadINES         = "cartridgeloader: ines: %v"
	UnsupportedINES = "cartridgeloader: ines: mapper %d is not supported"
)

// List of valid Format values.
const (
	FormatAuto = "AUTO"
	FormatRaw  = "RAW"
	FormatINES = "INES"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES", ".BIN", ".ROM", ".PRG", ".6502"}

// Loader specifies the program image to attach to the CPU.
type Loader struct {
	// filename of the image. http and https URLs are also accepted
	Filename string

	// one of the Format values. after a successful Load() the value is
	// either FormatRaw or FormatINES
	Format string

	// origin of a raw image
	Origin uint16

	// expected sha1 hash of the image. an empty string indicates that the hash
	// need not be validated. after a successful Load() the field is the hash
	// of the loaded data
	Hash string

	// the data as loaded from the file
	Data []byte

	// PRG-ROM data and mapper number of an iNES image
	PRG    []byte
	Mapper int
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument is used to set the Format field unless it is FormatAuto
// or the empty string, in which case the file extension is used.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   FormatAuto,
		Origin:   cpubus.ROMOrigin,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	switch format {
	case FormatRaw, FormatINES:
		cl.Format = format
	default:
		switch strings.ToUpper(filepath.Ext(filename)) {
		case ".NES":
			cl.Format = FormatINES
		case ".PRG", ".6502":
			cl.Format = FormatRaw
		}
	}

	return cl
}

// ShortName returns the filename without the path or extension.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func (cl Loader) String() string {
	if cl.Format == FormatINES {
		return fmt.Sprintf("%s (iNES mapper %d, %dk PRG)", cl.ShortName(), cl.Mapper, len(cl.PRG)/1024)
	}
	return fmt.Sprintf("%s (raw %d bytes at $%04x)", cl.ShortName(), len(cl.Data), cl.Origin)
}

// Load the image data. Subsequent calls to Load() do nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	u, perr := url.Parse(cl.Filename)
	if perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		data, err = fetch(cl.Filename)
	} else {
		data, err = os.ReadFile(cl.Filename)
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(LoadError, "empty file")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	if cl.Format == FormatAuto {
		cl.Format = FormatRaw
		if bytes.HasPrefix(data, inesSignature) {
			cl.Format = FormatINES
		}
	}

	if cl.Format == FormatINES {
		cl.PRG, cl.Mapper, err = parseINES(data)
		if err != nil {
			return err
		}
	}

	cl.Data = data
	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s", cl)

	return nil
}

func fetch(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", address, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// Attach the loaded image to the CPU. The CPU is reset, the image copied into
// the memory image and then a RESET interrupt is performed.
//
// A raw image that does not cover the reset vector has the reset vector
// pointed at the origin.
func (cl *Loader) Attach(mc *cpu.CPU) error {
	if !cl.HasLoaded() {
		return curated.Errorf(NotLoaded, cl.ShortName())
	}

	switch cl.Format {
	case FormatINES:
		if cl.Mapper != 0 {
			return curated.Errorf(UnsupportedINES, cl.Mapper)
		}
		mc.Reset()
		copy(mc.Mem[cpubus.ROMOrigin:], cl.PRG)
		if len(cl.PRG) == prgBankSize {
			copy(mc.Mem[cpubus.ROMOrigin+prgBankSize:], cl.PRG)
		}

	default:
		end := int(cl.Origin) + len(cl.Data)
		if end > len(mc.Mem) {
			return curated.Errorf(ImageTooLarge, len(cl.Data), cl.Origin)
		}
		mc.Reset()
		copy(mc.Mem[cl.Origin:], cl.Data)
		if end <= int(cpubus.Reset) {
			mc.Mem[cpubus.Reset] = uint8(cl.Origin)
			mc.Mem[cpubus.Reset+1] = uint8(cl.Origin >> 8)
		}
	}

	mc.RequestIRQ(cpu.IRQReset)

	return nil
}
