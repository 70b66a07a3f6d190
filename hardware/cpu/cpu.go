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

import (
	"fmt"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/jetsetilly/emu65x64/hardware/memory"
	"github.com/jetsetilly/emu65x64/hardware/memory/bus"
	"github.com/jetsetilly/emu65x64/logger"
)

// PreconditionViolation is returned when a control function is called
// before the memory has been configured.
const PreconditionViolation = "cpu: precondition violation: %v"

// Phase is the position of the CPU in its lifecycle.
type Phase int

// List of valid Phase values.
const (
	Unconfigured Phase = iota
	Ready
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Unconfigured:
		return "unconfigured"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown phase"
}

// CPU is the control interface for the 65x64.
type CPU struct {
	// the memory bus is exposed so that a host can inspect and change memory
	// between steps. use the Configure functions of the CPU rather than
	// those of the bus in order to keep the phase of the CPU correct
	Mem *memory.Bus

	engine Engine
	state  State

	// has Reset() been called since the last configuration
	reset bool

	// whether the CPU should make entries in the central log
	logging bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(engine Engine) *CPU {
	return &CPU{
		Mem:     memory.NewBus(),
		engine:  engine,
		logging: true,
	}
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.logging
}

// SetLogging turns log entries made by the CPU on or off. Useful when the
// CPU is being stepped many times by a test harness.
func (mc *CPU) SetLogging(logging bool) {
	mc.logging = logging
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%016x cycles=%d %s", mc.state.PC, mc.state.Cycles, mc.Phase())
}

// Phase returns the current position of the CPU in its lifecycle.
func (mc *CPU) Phase() Phase {
	switch {
	case !mc.Mem.IsConfigured():
		return Unconfigured
	case !mc.reset:
		return Ready
	case mc.state.Stopped:
		return Stopped
	}
	return Running
}

// ConfigureROM binds a read-only memory map. See memory.Bus.Configure().
func (mc *CPU) ConfigureROM(mask uint64, ramSize uint64, rom []byte) error {
	return mc.configured(mc.Mem.Configure(mask, ramSize, rom))
}

// ConfigureRAM binds a slice of bytes as RAM and an optional ROM. See
// memory.Bus.ConfigureWithRAM().
func (mc *CPU) ConfigureRAM(mask uint64, ramSize uint64, ram []byte, rom []byte) error {
	return mc.configured(mc.Mem.ConfigureWithRAM(mask, ramSize, ram, rom))
}

// ConfigureStore binds a host object as RAM and an optional ROM. See
// memory.Bus.ConfigureWithStore().
func (mc *CPU) ConfigureStore(mask uint64, ramSize uint64, store bus.Backend, rom []byte) error {
	return mc.configured(mc.Mem.ConfigureWithStore(mask, ramSize, store, rom))
}

// a successful configuration moves the CPU to the Ready phase. a failed
// configuration leaves the CPU as it was
func (mc *CPU) configured(err error) error {
	if err != nil {
		return err
	}
	mc.reset = false
	return nil
}

// Reset the CPU. The cycle count is cleared, the stopped flag is cleared and
// the program counter is set to the reset vector of the engine. The trace
// flag is passed to the engine.
func (mc *CPU) Reset(trace bool) error {
	if !mc.Mem.IsConfigured() {
		return curated.Errorf(PreconditionViolation, "reset before memory configuration")
	}

	mc.state = State{
		Trace: trace,
	}
	mc.engine.Reset(mc.Mem, &mc.state)
	mc.reset = true

	logger.Logf(mc, "cpu", "reset: PC=%#016x trace=%v", mc.state.PC, trace)

	return nil
}

// Step executes one instruction. If the CPU has stopped then Step() does
// nothing.
func (mc *CPU) Step() error {
	if !mc.Mem.IsConfigured() {
		return curated.Errorf(PreconditionViolation, "step before memory configuration")
	}

	if mc.state.Stopped {
		return nil
	}

	pc := mc.state.PC
	mc.engine.Step(mc.Mem, &mc.state)

	if mc.state.Stopped {
		logger.Logf(mc, "cpu", "stopped by instruction at %#016x (cycles=%d)", pc, mc.state.Cycles)
	}

	return nil
}

// SetProgramCounter changes the program counter. Execution continues from
// the new value on the next Step(). It does not restart a stopped CPU.
func (mc *CPU) SetProgramCounter(value uint64) error {
	if !mc.Mem.IsConfigured() {
		return curated.Errorf(PreconditionViolation, "program counter set before memory configuration")
	}
	mc.state.PC = value
	return nil
}

// ProgramCounter returns the current value of the program counter.
func (mc *CPU) ProgramCounter() uint64 {
	return mc.state.PC
}

// Cycles returns the number of cycles since the last reset. The value wraps
// around on overflow.
func (mc *CPU) Cycles() uint32 {
	return mc.state.Cycles
}

// IsStopped returns true if the CPU has been stopped by the engine.
func (mc *CPU) IsStopped() bool {
	return mc.state.Stopped
}

// State returns a copy of the execution state.
func (mc *CPU) State() State {
	return mc.state
}
