// This file is part of emu65x64.
//
// emu65x64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu65x64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu65x64.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux || darwin || freebsd
// +build linux darwin freebsd

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TerminalError is returned when the terminal cannot be prepared.
const TerminalError = "easyterm: %v"

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	mu  sync.Mutex
	raw bool
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil {
		return curated.Errorf(TerminalError, "requires an input file")
	}
	if output == nil {
		return curated.Errorf(TerminalError, "requires an output file")
	}

	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// Print writes the formatted string to the output file. In raw mode a
// newline does not return the cursor to the start of the line so newlines
// are expanded.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	o := fmt.Sprintf(s, a...)
	if pt.raw {
		o = expandNewlines(o)
	}
	pt.output.WriteString(o)
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	pt.Print("%s", p)
	return len(p), nil
}

// Geometry returns the current dimensions of the output terminal.
func (pt *Terminal) Geometry() (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, curated.Errorf(TerminalError, err)
	}
	return Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
	pt.raw = false
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
	pt.raw = true
}

// ReadKey waits for a single byte of input.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, curated.Errorf(TerminalError, err)
	}
	return b[0], nil
}
