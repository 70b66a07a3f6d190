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

package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/emu65x64/hardware/cpu"
	"github.com/jetsetilly/emu65x64/hardware/cpu/reference"
	"github.com/jetsetilly/emu65x64/logger"
	"github.com/jetsetilly/emu65x64/monitor/easyterm"
)

// ContinueLimit is the maximum number of instructions executed by the
// continue command.
const ContinueLimit = 1000000

// Monitor is a simple, single key, interface to a CPU.
type Monitor struct {
	mc     *cpu.CPU
	engine *reference.Engine
	output io.Writer

	// the trace flag to use when resetting
	Trace bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The engine is used to display the registers and may be nil.
func NewMonitor(mc *cpu.CPU, engine *reference.Engine, output io.Writer) *Monitor {
	return &Monitor{
		mc:     mc,
		engine: engine,
		output: output,
	}
}

// Run the monitor using the terminal for input and output. Returns when the
// quit command is given or the terminal cannot be read.
func (mon *Monitor) Run(term *easyterm.Terminal) error {
	term.RawMode()
	defer term.CleanUp()

	mon.output = term
	mon.Status()

	for {
		k, err := term.ReadKey()
		if err != nil {
			return err
		}
		if mon.Command(k) {
			return nil
		}
	}
}

// Status prints a single line describing the CPU and the next instruction.
func (mon *Monitor) Status() {
	s := strings.Builder{}
	s.WriteString(mon.mc.String())

	if d, _, err := reference.Disassemble(mon.mc.Mem, mon.mc.ProgramCounter()); err == nil {
		s.WriteString(fmt.Sprintf("  next: %s", d))
	}
	if mon.engine != nil {
		s.WriteString(fmt.Sprintf("\n%s", mon.engine.Registers()))
	}

	fmt.Fprintln(mon.output, s.String())
}

// Command performs the command for the key. Returns true if the key was
// the quit command.
func (mon *Monitor) Command(key byte) bool {
	switch key {
	case 'q', easyterm.KeyInterrupt, easyterm.KeyEOF:
		return true

	case 's', ' ':
		if mon.mc.IsStopped() {
			fmt.Fprintln(mon.output, "CPU is stopped. reset with 'r'")
			return false
		}
		if err := mon.mc.Step(); err != nil {
			fmt.Fprintln(mon.output, err)
			return false
		}
		mon.Status()

	case 'c':
		n := 0
		for ; n < ContinueLimit && !mon.mc.IsStopped(); n++ {
			if err := mon.mc.Step(); err != nil {
				fmt.Fprintln(mon.output, err)
				return false
			}
		}
		fmt.Fprintf(mon.output, "%d instructions\n", n)
		mon.Status()

	case 'r':
		if err := mon.mc.Reset(mon.Trace); err != nil {
			fmt.Fprintln(mon.output, err)
			return false
		}
		mon.Status()

	case 'm':
		mon.dump(mon.mc.ProgramCounter(), 32)

	case 'i':
		st := mon.mc.Mem.Stats
		fmt.Fprintln(mon.output, mon.mc.Mem.Summary())
		fmt.Fprintf(mon.output, "reads=%d writes=%d open bus reads=%d discarded writes=%d\n",
			st.Reads, st.Writes, st.OpenBusReads, st.DiscardedWrites)

	case 'l':
		logger.Tail(mon.output, 10)

	case 'h', '?':
		fmt.Fprintln(mon.output, "s/space: step  c: continue  r: reset  m: memory  i: info  l: log  q: quit")

	default:
		fmt.Fprintf(mon.output, "unknown command (%q). h for help\n", key)
	}

	return false
}

// dump memory in rows of 16 bytes
func (mon *Monitor) dump(address uint64, n int) {
	for row := 0; row < n; row += 16 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%016x ", address+uint64(row)))
		for i := 0; i < 16 && row+i < n; i++ {
			v, err := mon.mc.Mem.Peek(address + uint64(row+i))
			if err != nil {
				fmt.Fprintln(mon.output, err)
				return
			}
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		fmt.Fprintln(mon.output, s.String())
	}
}
