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

// Package memory implements the memory bus of the 65x64. The bus decodes an
// address into RAM, ROM or the open bus and provides access at four widths.
//
//	                         debugger bus
//	                              |
//	                              |
//	    CPU ---- cpu bus ---- MEMORY ---- backend ---- RAM storage
//	                              |
//	                              |
//	                             ROM
//
// Decoding works as follows. Every address is first ANDed with the address
// mask. This models a machine with an address space smaller than 64 bits,
// with the upper address lines not connected. The masked address is then
// compared with the RAM size:
//
//	0 .. ramSize-1                  RAM
//	ramSize .. ramSize+len(rom)-1   ROM
//	everything else                 open bus
//
// Reading the open bus returns the value OpenBus (0xff) for every byte.
// Writing to ROM or to the open bus has no effect and is not reported. The
// only way for a program to see that a write has failed is to read the
// location back.
//
// Multi-byte accesses are little-endian. Each byte of a multi-byte access is
// decoded on its own, so an access can start in RAM and end in ROM, or wrap
// around the top of the masked address space back to zero. When the whole
// of an access is in RAM the access is forwarded to the RAM backend in a
// single call at the full width. This is important for backends that model
// memory-mapped devices, where the number and width of accesses is
// significant. The bus never caches a value read from a backend.
//
// The bus has no locking. The host must not access a backend from another
// goroutine while the CPU is stepping.
package memory
