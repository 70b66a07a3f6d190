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

// Package backend contains implementations of the bus.Backend interface.
//
// Buffer is a contiguous slice of bytes owned by the host. The memory bus
// holds a reference to the slice and never copies it, so the host sees every
// write made by the instruction engine and can change RAM between steps.
//
// FileStore and LuaStore are host objects. Every access is forwarded to the
// object as it happens. FileStore reads and writes through an afero.File,
// which may be on disk or in memory. LuaStore calls functions defined in a
// Lua script, which is a convenient way of adding memory-mapped devices to
// a machine without recompiling.
//
// AllocateRAM returns a slice suitable for a Buffer. On unix systems the
// slice is mapped outside of the Go heap. This is useful for the very large
// RAM sizes permitted by a 64-bit address space.
package backend

import "github.com/jetsetilly/emu65x64/hardware/memory/bus"

// sanity checks that the types in this package satisfy the interfaces
var _ bus.Backend = Buffer(nil)
var _ bus.Sized = Buffer(nil)
var _ bus.Backend = (*FileStore)(nil)
var _ bus.Sized = (*FileStore)(nil)
var _ bus.Backend = (*LuaStore)(nil)
var _ bus.Sized = (*LuaStore)(nil)
