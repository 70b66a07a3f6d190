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

// Package reference is a small instruction engine for the 65x64. It
// implements the cpu.Engine interface and is enough to run simple programs
// and to exercise the control interface and the memory bus from the command
// line. It is not the full 65x64 instruction set.
//
// The registers are 64 bits wide except for the stack pointer and the
// status register. Absolute addresses are 8 bytes long. Immediate operands
// are a single byte and are zero extended.
//
//	opcode  mnemonic  mode       bytes  cycles
//	0x18    CLC       implied    1      2
//	0x38    SEC       implied    1      2
//	0x4c    JMP       absolute   9      3
//	0x69    ADC       immediate  2      2
//	0x8d    STA       absolute   9      5
//	0xa9    LDA       immediate  2      2
//	0xad    LDA       absolute   9      5
//	0xdb    STP       implied    1      3
//	0xea    NOP       implied    1      2
//
// Any other opcode is treated as a single byte NOP taking 2 cycles.
//
// On reset the program counter is loaded from the address stored at
// ResetVector, the stack pointer is set to 0x100 and the status register to
// 0x34. STP stops the CPU and leaves the program counter pointing at the STP
// instruction.
//
// ADC is binary only. The decimal flag is ignored.
//
// When the trace flag is set by the reset, the engine writes a line to its
// trace writer for every instruction executed.
package reference
