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

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Absolute
)

// operand size in bytes for each addressing mode
var operandBytes = map[AddressingMode]int{
	Implied:   0,
	Immediate: 1,
	Absolute:  8,
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Undefined      bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Undefined {
		return fmt.Sprintf("%02x undefined (NOP)", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode)
}

// list of defined instructions. the table is indexed by opcode in init()
var defined = []Definition{
	{OpCode: 0x18, Mnemonic: "CLC", Cycles: 2, AddressingMode: Implied},
	{OpCode: 0x38, Mnemonic: "SEC", Cycles: 2, AddressingMode: Implied},
	{OpCode: 0x4c, Mnemonic: "JMP", Cycles: 3, AddressingMode: Absolute},
	{OpCode: 0x69, Mnemonic: "ADC", Cycles: 2, AddressingMode: Immediate},
	{OpCode: 0x8d, Mnemonic: "STA", Cycles: 5, AddressingMode: Absolute},
	{OpCode: 0xa9, Mnemonic: "LDA", Cycles: 2, AddressingMode: Immediate},
	{OpCode: 0xad, Mnemonic: "LDA", Cycles: 5, AddressingMode: Absolute},
	{OpCode: 0xdb, Mnemonic: "STP", Cycles: 3, AddressingMode: Implied},
	{OpCode: 0xea, Mnemonic: "NOP", Cycles: 2, AddressingMode: Implied},
}

// Definitions is indexed by opcode. Every entry is populated.
var Definitions [256]Definition

func init() {
	for i := range Definitions {
		Definitions[i] = Definition{
			OpCode:         uint8(i),
			Mnemonic:       "NOP",
			Bytes:          1,
			Cycles:         2,
			AddressingMode: Implied,
			Undefined:      true,
		}
	}
	for _, defn := range defined {
		defn.Bytes = 1 + operandBytes[defn.AddressingMode]
		Definitions[defn.OpCode] = defn
	}
}
