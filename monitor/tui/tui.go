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

// Package tui is a full-screen viewer for the 65x64. It shows the state of
// the CPU, the registers of the reference engine and the memory around the
// program counter. It is used by the TUI mode of the emu65x64 command.
//
// Keys are the same as for the monitor package: s or space to step, c to
// continue, r to reset and q or escape to quit.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/jetsetilly/emu65x64/hardware/cpu"
	"github.com/jetsetilly/emu65x64/hardware/cpu/reference"
)

// ContinueLimit is the maximum number of instructions executed by the
// continue key.
const ContinueLimit = 1000000

// number of instructions shown in the disassembly
const disasmLines = 8

// TUI draws the state of a CPU on a tcell.Screen.
type TUI struct {
	screen tcell.Screen
	mc     *cpu.CPU
	engine *reference.Engine

	// the trace flag to use when resetting
	Trace bool

	message string
}

// NewTUI is the preferred method of initialisation for the TUI type. The
// screen must have been initialised. The engine may be nil.
func NewTUI(screen tcell.Screen, mc *cpu.CPU, engine *reference.Engine) *TUI {
	return &TUI{
		screen: screen,
		mc:     mc,
		engine: engine,
	}
}

// Run the event loop. Returns when the quit key is pressed.
func (ui *TUI) Run() {
	ui.draw()
	for {
		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ui.screen.Sync()
			ui.draw()
		case *tcell.EventKey:
			if ui.key(ev) {
				return
			}
			ui.draw()
		case nil:
			// the screen has been finalised
			return
		}
	}
}

// returns true if the key is the quit key
func (ui *TUI) key(ev *tcell.EventKey) bool {
	ui.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	var err error

	switch ev.Rune() {
	case 'q':
		return true
	case 's', ' ':
		err = ui.mc.Step()
	case 'c':
		n := 0
		for ; n < ContinueLimit && !ui.mc.IsStopped() && err == nil; n++ {
			err = ui.mc.Step()
		}
		ui.message = fmt.Sprintf("%d instructions", n)
	case 'r':
		err = ui.mc.Reset(ui.Trace)
	}

	if err != nil {
		ui.message = err.Error()
	}

	return false
}

func (ui *TUI) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		ui.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (ui *TUI) draw() {
	ui.screen.Clear()

	normal := tcell.StyleDefault
	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	ui.print(0, 0, bold, "emu65x64")
	ui.print(10, 0, normal, ui.mc.Mem.Summary())

	y := 2
	ui.print(0, y, normal, fmt.Sprintf("PC      %016x", ui.mc.ProgramCounter()))
	y++
	ui.print(0, y, normal, fmt.Sprintf("cycles  %d", ui.mc.Cycles()))
	y++
	ui.print(0, y, normal, fmt.Sprintf("phase   %s", ui.mc.Phase()))
	y++

	if ui.engine != nil {
		r := ui.engine.Registers()
		y++
		ui.print(0, y, normal, fmt.Sprintf("A       %016x", r.A))
		y++
		ui.print(0, y, normal, fmt.Sprintf("X       %016x", r.X))
		y++
		ui.print(0, y, normal, fmt.Sprintf("Y       %016x", r.Y))
		y++
		ui.print(0, y, normal, fmt.Sprintf("SP      %04x", r.SP))
		y++
		ui.print(0, y, normal, fmt.Sprintf("P       %s", r.P))
		y++
	}

	y++
	addr := ui.mc.ProgramCounter()
	for i := 0; i < disasmLines; i++ {
		d, n, err := reference.Disassemble(ui.mc.Mem, addr)
		if err != nil {
			break // for loop
		}
		style := dim
		if i == 0 {
			style = bold
		}
		ui.print(0, y, style, fmt.Sprintf("%016x  %s", addr, d))
		addr += uint64(n)
		y++
	}

	y++
	ui.print(0, y, normal, ui.message)

	_, h := ui.screen.Size()
	ui.print(0, h-1, dim, "s: step  c: continue  r: reset  q: quit")

	ui.screen.Show()
}
