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

package bus

// Backend defines the operations for the storage behind a RAM binding. The
// number in each function name is the width of the access in bits: a byte, a
// word, a dword and a qword. All multi-byte values are little-endian.
// Addresses are offsets into the storage and the whole of an access is
// always inside the RAM region.
type Backend interface {
	Read8(address uint64) uint8
	Read16(address uint64) uint16
	Read32(address uint64) uint32
	Read64(address uint64) uint64

	Write8(address uint64, data uint8)
	Write16(address uint64, data uint16)
	Write32(address uint64, data uint32)
	Write64(address uint64, data uint64)
}

// Sized is implemented by a Backend that knows its own capacity. The memory
// package uses it to check that a RAM size fits the storage at configuration
// time.
type Sized interface {
	Size() uint64
}

// CPUBus defines the operations for the memory system when accessed from the
// instruction engine. Addresses are undecoded machine addresses. The
// implementation applies the address mask and resolves each byte to RAM,
// ROM or the open bus.
type CPUBus interface {
	Backend

	// ReadAddr reads a 64-bit address stored at the address. It is the same
	// as Read64()
	ReadAddr(address uint64) uint64
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebuggerBus interface {
	Peek(address uint64) (uint8, error)
	Poke(address uint64, value uint8) error
}
