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

package backend

import (
	"math"

	"github.com/jetsetilly/emu65x64/curated"
	"golang.org/x/sys/unix"
)

// AllocateRAM returns a zeroed slice of the requested size and a function to
// release it. The slice is an anonymous private mapping so pages are only
// committed by the operating system when they are first touched. The slice
// must not be used after the release function has been called.
func AllocateRAM(size uint64) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > math.MaxInt {
		return nil, nil, curated.Errorf(AllocationError, "size too large for this platform")
	}

	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, curated.Errorf(AllocationError, err)
	}

	release := func() error {
		if err := unix.Munmap(b); err != nil {
			return curated.Errorf(AllocationError, err)
		}
		return nil
	}

	return b, release, nil
}
