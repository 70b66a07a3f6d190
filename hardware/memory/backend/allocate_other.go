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

package backend

import (
	"math"

	"github.com/jetsetilly/emu65x64/curated"
)

// AllocateRAM returns a zeroed slice of the requested size and a function to
// release it. On this platform the slice is allocated on the Go heap and the
// release function does nothing.
func AllocateRAM(size uint64) ([]byte, func() error, error) {
	if size > math.MaxInt {
		return nil, nil, curated.Errorf(AllocationError, "size too large for this platform")
	}
	return make([]byte, size), func() error { return nil }, nil
}
