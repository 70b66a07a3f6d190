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

package reference

import (
	"fmt"
	"strings"
)

// StatusRegister is the P register of the 65x64.
type StatusRegister uint8

// Bits in the status register.
const (
	Carry            StatusRegister = 0x01
	Zero             StatusRegister = 0x02
	InterruptDisable StatusRegister = 0x04
	DecimalMode      StatusRegister = 0x08
	Break            StatusRegister = 0x10
	Unused           StatusRegister = 0x20
	Overflow         StatusRegister = 0x40
	Sign             StatusRegister = 0x80
)

// String returns the flags as a string. Set flags are in upper case and
// clear flags are in lower case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for i, f := range []StatusRegister{Sign, Overflow, Unused, Break, DecimalMode, InterruptDisable, Zero, Carry} {
		c := "nv-bdizc"[i]
		if sr&f == f && c != '-' {
			c -= 'a' - 'A'
		}
		s.WriteByte(c)
	}
	return s.String()
}

func (sr *StatusRegister) set(flag StatusRegister, v bool) {
	if v {
		*sr |= flag
	} else {
		*sr &^= flag
	}
}

// Registers of the 65x64. The values are only meaningful between steps.
type Registers struct {
	A  uint64
	X  uint64
	Y  uint64
	SP uint64
	P  StatusRegister
}

func (r Registers) String() string {
	return fmt.Sprintf("A=%016x X=%016x Y=%016x SP=%04x P=%s", r.A, r.X, r.Y, r.SP, r.P)
}
