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

package reference_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/emu65x64/hardware/cpu"
	"github.com/jetsetilly/emu65x64/hardware/cpu/reference"
	"github.com/jetsetilly/emu65x64/hardware/memory/backend"
	"github.com/jetsetilly/emu65x64/test"
)

// the 1GiB machine used by the scenarios below
const (
	gigMask = 0x3fff_ffff
	gigSize = 0x4000_0000
)

func newGigMachine(t *testing.T, trace *test.CompareWriter) (*cpu.CPU, *reference.Engine, []byte) {
	t.Helper()

	ram, release, err := backend.AllocateRAM(gigSize)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		test.ExpectSuccess(t, release())
	})

	var w io.Writer
	if trace != nil {
		w = trace
	}

	e := reference.NewEngine(w)
	mc := cpu.NewCPU(e)
	mc.SetLogging(false)
	test.DemandSuccess(t, mc.ConfigureRAM(gigMask, gigSize, ram, nil))

	return mc, e, ram
}

func TestAddImmediate(t *testing.T) {
	trace := &test.CompareWriter{}
	mc, e, ram := newGigMachine(t, trace)

	ram[0] = 0x69
	ram[1] = 0x01

	test.DemandSuccess(t, mc.Reset(true))
	test.DemandSuccess(t, mc.SetProgramCounter(0))
	test.ExpectEquality(t, mc.Cycles(), uint32(0))
	test.ExpectEquality(t, mc.IsStopped(), false)

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.Cycles(), uint32(reference.Definitions[0x69].Cycles))
	test.ExpectEquality(t, mc.ProgramCounter(), uint64(2))
	test.ExpectEquality(t, mc.IsStopped(), false)
	test.ExpectEquality(t, e.Registers().A, uint64(1))

	// trace was requested at reset
	test.ExpectSuccess(t, trace.Contains("ADC #$01"))
	test.ExpectSuccess(t, trace.Contains("A=0000000000000001"))
}

func TestStop(t *testing.T) {
	mc, _, ram := newGigMachine(t, nil)

	ram[11] = 0xdb

	test.DemandSuccess(t, mc.Reset(false))
	test.DemandSuccess(t, mc.SetProgramCounter(11))
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.IsStopped(), true)

	cycles := mc.Cycles()
	test.ExpectEquality(t, cycles, uint32(3))

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.Cycles(), cycles)
	test.ExpectEquality(t, mc.ProgramCounter(), uint64(11))

	test.DemandSuccess(t, mc.Reset(false))
	test.ExpectEquality(t, mc.IsStopped(), false)
	test.ExpectEquality(t, mc.Cycles(), uint32(0))
}

func TestResetVector(t *testing.T) {
	mc, e, ram := newGigMachine(t, nil)

	backend.Buffer(ram).Write64(reference.ResetVector, 0x1000)
	test.DemandSuccess(t, mc.Reset(false))
	test.ExpectEquality(t, mc.ProgramCounter(), uint64(0x1000))
	test.ExpectEquality(t, e.Registers().SP, uint64(0x100))
	test.ExpectEquality(t, e.Registers().P, reference.StatusRegister(0x34))
	test.ExpectEquality(t, e.Registers().P.String(), "nv-BdIzc")
}

func TestNoTraceWithoutFlag(t *testing.T) {
	trace := &test.CompareWriter{}
	mc, _, ram := newGigMachine(t, trace)
	ram[0] = 0xea

	test.DemandSuccess(t, mc.Reset(false))
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, trace.String(), "")
}

func TestProgram(t *testing.T) {
	ram := make([]byte, 0x100)
	rom := []byte{
		0x18,                               // CLC
		0xa9, 0xff,                         // LDA #$ff
		0x69, 0x01,                         // ADC #$01
		0x8d, 0x20, 0, 0, 0, 0, 0, 0, 0,    // STA $20
		0x38,                               // SEC
		0x69, 0x00,                         // ADC #$00
		0x4c, 0x1a, 0x01, 0, 0, 0, 0, 0, 0, // JMP $11a
		0xdb,                               // STP (at $11a)
	}

	e := reference.NewEngine(nil)
	mc := cpu.NewCPU(e)
	mc.SetLogging(false)
	test.DemandSuccess(t, mc.ConfigureRAM(0xffff, uint64(len(ram)), ram, rom))
	test.DemandSuccess(t, mc.Reset(false))
	test.DemandSuccess(t, mc.SetProgramCounter(0x100))

	for i := 0; i < 100 && !mc.IsStopped(); i++ {
		test.DemandSuccess(t, mc.Step())
	}
	test.DemandEquality(t, mc.IsStopped(), true)

	test.ExpectEquality(t, mc.ProgramCounter(), uint64(0x11a))
	test.ExpectEquality(t, backend.Buffer(ram).Read64(0x20), uint64(0x100))
	test.ExpectEquality(t, e.Registers().A, uint64(0x101))
	test.ExpectEquality(t, mc.Cycles(), uint32(2+2+2+5+2+2+3+3))
}

func TestAddFlags(t *testing.T) {
	ram := make([]byte, 0x100)
	e := reference.NewEngine(nil)
	mc := cpu.NewCPU(e)
	mc.SetLogging(false)
	test.DemandSuccess(t, mc.ConfigureRAM(0xff, uint64(len(ram)), ram, nil))

	// A = 0xffffffffffffffff then add one
	backend.Buffer(ram).Write64(0x80, 0xffffffffffffffff)
	copy(ram, []byte{0xad, 0x80, 0, 0, 0, 0, 0, 0, 0, 0x69, 0x01})
	test.DemandSuccess(t, mc.Reset(false))
	test.DemandSuccess(t, mc.SetProgramCounter(0))

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, e.Registers().P&reference.Sign, reference.Sign)

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, e.Registers().A, uint64(0))
	test.ExpectEquality(t, e.Registers().P&reference.Carry, reference.Carry)
	test.ExpectEquality(t, e.Registers().P&reference.Zero, reference.Zero)
	test.ExpectEquality(t, e.Registers().P&reference.Overflow, reference.StatusRegister(0))
}

func TestUndefinedOpcode(t *testing.T) {
	ram := make([]byte, 0x10)
	ram[0] = 0x02
	mc := cpu.NewCPU(reference.NewEngine(nil))
	mc.SetLogging(false)
	test.DemandSuccess(t, mc.ConfigureRAM(0xff, uint64(len(ram)), ram, nil))
	test.DemandSuccess(t, mc.Reset(false))
	test.DemandSuccess(t, mc.SetProgramCounter(0))

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.ProgramCounter(), uint64(1))
	test.ExpectEquality(t, mc.Cycles(), uint32(2))
}

func TestDisassemble(t *testing.T) {
	ram := []byte{0x69, 0x05, 0x4c, 0x00, 0x10, 0, 0, 0, 0, 0, 0, 0x02}
	mc := cpu.NewCPU(reference.NewEngine(nil))
	mc.SetLogging(false)
	test.DemandSuccess(t, mc.ConfigureRAM(0xff, uint64(len(ram)), ram, nil))

	s, n, err := reference.Disassemble(mc.Mem, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "ADC #$05")
	test.ExpectEquality(t, n, 2)

	s, n, err = reference.Disassemble(mc.Mem, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "JMP $0000000000001000")
	test.ExpectEquality(t, n, 9)

	s, _, err = reference.Disassemble(mc.Mem, 11)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "NOP ; undefined $02")

	// disassembly does not count as an access
	test.ExpectEquality(t, mc.Mem.Stats.Reads, uint64(0))
}
