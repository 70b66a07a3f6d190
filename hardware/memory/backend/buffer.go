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

package backend

import "encoding/binary"

// Buffer implements the bus.Backend interface for a slice of bytes.
type Buffer []byte

// Size implements the bus.Sized interface.
func (b Buffer) Size() uint64 {
	return uint64(len(b))
}

// Read8 implements the bus.Backend interface.
func (b Buffer) Read8(address uint64) uint8 {
	return b[address]
}

// Read16 implements the bus.Backend interface.
func (b Buffer) Read16(address uint64) uint16 {
	return binary.LittleEndian.Uint16(b[address:])
}

// Read32 implements the bus.Backend interface.
func (b Buffer) Read32(address uint64) uint32 {
	return binary.LittleEndian.Uint32(b[address:])
}

// Read64 implements the bus.Backend interface.
func (b Buffer) Read64(address uint64) uint64 {
	return binary.LittleEndian.Uint64(b[address:])
}

// Write8 implements the bus.Backend interface.
func (b Buffer) Write8(address uint64, data uint8) {
	b[address] = data
}

// Write16 implements the bus.Backend interface.
func (b Buffer) Write16(address uint64, data uint16) {
	binary.LittleEndian.PutUint16(b[address:], data)
}

// Write32 implements the bus.Backend interface.
func (b Buffer) Write32(address uint64, data uint32) {
	binary.LittleEndian.PutUint32(b[address:], data)
}

// Write64 implements the bus.Backend interface.
func (b Buffer) Write64(address uint64, data uint64) {
	binary.LittleEndian.PutUint64(b[address:], data)
}
