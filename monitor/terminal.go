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
	"bytes"
	"os"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinal error patterns.
const (
	NotATerminal  = "monitor: %s is not a terminal"
	TerminalError = "monitor: terminal: %v"
)

// the width to use if the real width of the output cannot be found
const defaultWidth = 80

// Terminal is a raw mode terminal. Keys are read from the controlling
// terminal and output is written to the output file with line endings
// suitable for raw mode.
type Terminal struct {
	tty    *term.Term
	output *os.File
	width  int
}

// OpenTerminal checks that both files are terminals and puts the controlling
// terminal into raw mode. Call Close() to restore the terminal.
func OpenTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if !xterm.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}
	if !xterm.IsTerminal(int(output.Fd())) {
		return nil, curated.Errorf(NotATerminal, output.Name())
	}

	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	t := &Terminal{
		tty:    tty,
		output: output,
		width:  defaultWidth,
	}

	if w, _, err := xterm.GetSize(int(output.Fd())); err == nil && w > 0 {
		t.width = w
	}

	return t, nil
}

// Close restores the terminal to the mode it was in before OpenTerminal().
func (t *Terminal) Close() error {
	if err := t.tty.Restore(); err != nil {
		_ = t.tty.Close()
		return curated.Errorf(TerminalError, err)
	}
	return t.tty.Close()
}

// Width of the output terminal in characters.
func (t *Terminal) Width() int {
	return t.width
}

// ReadKey waits for a single key press.
func (t *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	if _, err := t.tty.Read(b); err != nil {
		return 0, curated.Errorf(TerminalError, err)
	}
	return b[0], nil
}

// Write implements the io.Writer interface. Newlines are written as
// carriage-return/newline pairs.
func (t *Terminal) Write(p []byte) (int, error) {
	_, err := t.output.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
