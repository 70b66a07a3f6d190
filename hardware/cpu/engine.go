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

package cpu

import "github.com/jetsetilly/emu65x64/hardware/memory/bus"

// State is the execution state of the CPU. It is owned by the CPU type and
// is only changed by an Engine during a call to Reset() or Step().
type State struct {
	PC uint64

	// the cycle count wraps around on overflow
	Cycles uint32

	// once set only a reset will clear it
	Stopped bool

	// set by the CPU at reset. how the engine uses it is up to the engine
	Trace bool
}

// Engine is the instruction decoder and executor of the 65x64. An engine is
// free to keep whatever private state it needs, such as the registers of the
// CPU, but the state shared with the control interface is in the State type.
type Engine interface {
	// Reset is called after the CPU has cleared the cycle count and the
	// stopped flag and has set the trace flag. The engine should set the
	// program counter to its reset vector and initialise its own state.
	Reset(mem bus.CPUBus, state *State)

	// Step executes one instruction. The engine advances the program
	// counter, adds the cost of the instruction to the cycle count and sets
	// the stopped flag if the instruction halts the CPU.
	//
	// Step is never called when the stopped flag is set.
	Step(mem bus.CPUBus, state *State)
}
