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

//go:build !linux && !darwin && !freebsd
// +build !linux,!darwin,!freebsd

package easyterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/emu65x64/curated"
)

// TerminalError is returned when the terminal cannot be prepared.
const TerminalError = "easyterm: %v"

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not supported on this platform.
type Terminal struct {
	output *os.File
}

// Initialise always fails on this platform.
func (pt *Terminal) Initialise(input, output *os.File) error {
	return curated.Errorf(TerminalError, "not supported on this platform")
}

// CleanUp does nothing on this platform.
func (pt *Terminal) CleanUp() {}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	if pt.output != nil {
		pt.output.WriteString(fmt.Sprintf(s, a...))
	}
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	pt.Print("%s", p)
	return len(p), nil
}

// Geometry is not supported on this platform.
func (pt *Terminal) Geometry() (Geometry, error) {
	return Geometry{}, curated.Errorf(TerminalError, "not supported on this platform")
}

// CanonicalMode does nothing on this platform.
func (pt *Terminal) CanonicalMode() {}

// RawMode does nothing on this platform.
func (pt *Terminal) RawMode() {}

// ReadKey is not supported on this platform.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, curated.Errorf(TerminalError, "not supported on this platform")
}
