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
	"io"
	"math/bits"

	"github.com/jetsetilly/emu65x64/hardware/cpu"
	"github.com/jetsetilly/emu65x64/hardware/memory/bus"
)

// ResetVector is the address of the qword holding the initial program
// counter.
const ResetVector = 0x3ffffff8

// Engine implements the cpu.Engine interface.
type Engine struct {
	// trace output is written here when the trace flag is set at reset. a
	// nil writer disables tracing regardless of the flag
	Trace io.Writer

	regs Registers
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(trace io.Writer) *Engine {
	return &Engine{
		Trace: trace,
	}
}

// Registers returns a copy of the registers. The contents are consistent
// only between calls to Step().
func (e *Engine) Registers() Registers {
	return e.regs
}

// Reset implements the cpu.Engine interface.
func (e *Engine) Reset(mem bus.CPUBus, state *cpu.State) {
	e.regs = Registers{
		SP: 0x100,
		P:  0x34,
	}
	state.PC = mem.ReadAddr(ResetVector)
}

// Step implements the cpu.Engine interface.
func (e *Engine) Step(mem bus.CPUBus, state *cpu.State) {
	pc := state.PC
	defn := Definitions[mem.Read8(pc)]

	var operand uint64
	switch defn.AddressingMode {
	case Immediate:
		operand = uint64(mem.Read8(pc + 1))
	case Absolute:
		operand = mem.ReadAddr(pc + 1)
	}

	state.PC = pc + uint64(defn.Bytes)

	switch defn.OpCode {
	case 0x18:
		e.regs.P.set(Carry, false)
	case 0x38:
		e.regs.P.set(Carry, true)
	case 0x4c:
		state.PC = operand
	case 0x69:
		e.adc(operand)
	case 0x8d:
		mem.Write64(operand, e.regs.A)
	case 0xa9:
		e.lda(operand)
	case 0xad:
		e.lda(mem.Read64(operand))
	case 0xdb:
		state.Stopped = true
		state.PC = pc
	}

	state.Cycles += uint32(defn.Cycles)

	if state.Trace && e.Trace != nil {
		fmt.Fprintf(e.Trace, "%016x  %-26s  %s\n", pc, format(defn, operand), e.regs)
	}
}

func (e *Engine) setNZ(v uint64) {
	e.regs.P.set(Zero, v == 0)
	e.regs.P.set(Sign, v&0x8000000000000000 != 0)
}

func (e *Engine) lda(v uint64) {
	e.regs.A = v
	e.setNZ(v)
}

func (e *Engine) adc(v uint64) {
	var c uint64
	if e.regs.P&Carry == Carry {
		c = 1
	}
	a := e.regs.A
	r, carry := bits.Add64(a, v, c)
	e.regs.P.set(Carry, carry != 0)
	e.regs.P.set(Overflow, (^(a^v))&(a^r)&0x8000000000000000 != 0)
	e.regs.A = r
	e.setNZ(r)
}

// format an instruction and its operand in assembler notation
func format(defn Definition, operand uint64) string {
	switch defn.AddressingMode {
	case Immediate:
		return fmt.Sprintf("%s #$%02x", defn.Mnemonic, operand)
	case Absolute:
		return fmt.Sprintf("%s $%016x", defn.Mnemonic, operand)
	}
	if defn.Undefined {
		return fmt.Sprintf("%s ; undefined $%02x", defn.Mnemonic, defn.OpCode)
	}
	return defn.Mnemonic
}

// Disassemble the instruction at the address. The instruction is read with
// the debugger bus so that no access statistics are changed. Returns the
// assembler notation and the length of the instruction in bytes.
func Disassemble(mem bus.DebuggerBus, address uint64) (string, int, error) {
	opcode, err := mem.Peek(address)
	if err != nil {
		return "", 0, err
	}
	defn := Definitions[opcode]

	var operand uint64
	for i := 0; i < defn.Bytes-1; i++ {
		b, err := mem.Peek(address + 1 + uint64(i))
		if err != nil {
			return "", 0, err
		}
		operand |= uint64(b) << (i * 8)
	}

	return format(defn, operand), defn.Bytes, nil
}
