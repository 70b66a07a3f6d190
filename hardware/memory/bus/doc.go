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

// Package bus defines the access patterns for the different users of the
// 65x64 memory.
//
// Backend is the capability that RAM storage must provide. The memory
// package decodes an address and then forwards the access to the Backend at
// the width the instruction engine asked for. Any type implementing Backend
// can be bound as RAM, including host objects that perform memory-mapped I/O
// in response to an access.
//
// CPUBus is the view of memory given to an instruction engine during a step.
// It is a Backend with the addition of ReadAddr(), which reads a 64-bit
// address from memory.
//
// DebuggerBus is for the exclusive use of monitors and debuggers. Peek and
// Poke are byte accesses that do not count towards access statistics.
package bus
