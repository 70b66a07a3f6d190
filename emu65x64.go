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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gdamore/tcell"
	"github.com/jetsetilly/emu65x64/curated"
	"github.com/jetsetilly/emu65x64/hardware/cpu"
	"github.com/jetsetilly/emu65x64/hardware/cpu/reference"
	"github.com/jetsetilly/emu65x64/hardware/memory/backend"
	"github.com/jetsetilly/emu65x64/imageloader"
	"github.com/jetsetilly/emu65x64/logger"
	"github.com/jetsetilly/emu65x64/modalflag"
	"github.com/jetsetilly/emu65x64/monitor"
	"github.com/jetsetilly/emu65x64/monitor/easyterm"
	"github.com/jetsetilly/emu65x64/monitor/tui"
	"github.com/jetsetilly/emu65x64/statsview"
	"github.com/jetsetilly/emu65x64/version"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// setting this environment variable to 1 forces tracing in every mode that
// supports it
const traceEnv = "EMU65X64_TRACE"

// the number of log entries printed at the end of RUN mode
const logTail = 10

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, afero.NewOsFs()))
}

// launch parses the arguments and runs the selected mode. the return value is
// the exit code of the process.
func launch(args []string, output io.Writer, fs afero.Fs) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "TUI", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, fs)

	case "MONITOR":
		err = monitorMode(md, fs)

	case "TUI":
		err = tuiMode(md, fs)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// machineFlags are the flags common to every mode that creates a machine.
type machineFlags struct {
	mask    *uint64
	ramSize *uint64
	rom     *bool
	origin  *uint64
	pc      *uint64
	trace   *bool
	store   *string
	ramFile *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		mask:    md.AddAddress("mask", 0x3fffffff, "address mask applied to every access"),
		ramSize: md.AddAddress("ramsize", 0x40000000, "size of RAM in bytes"),
		rom:     md.AddBool("rom", false, "map the image as ROM directly above RAM"),
		origin:  md.AddAddress("origin", 0, "RAM address at which to place the image"),
		pc:      md.AddAddress("pc", 0, "program counter after reset (defaults to origin for RAM images)"),
		trace:   md.AddBool("trace", false, "print a trace line for every instruction"),
		store:   md.AddString("store", "", "lua script implementing RAM (read and write functions)"),
		ramFile: md.AddString("ramfile", "", "file to use as RAM"),
	}
}

// machine is a CPU with the reference engine and the resources allocated
// for its RAM.
type machine struct {
	mc     *cpu.CPU
	engine *reference.Engine
	trace  bool
	closer []func() error
}

// end releases the resources allocated for RAM. the CPU must not be used
// afterwards.
func (m *machine) end() {
	for i := len(m.closer) - 1; i >= 0; i-- {
		if err := m.closer[i](); err != nil {
			logger.Log(logger.Allow, "emu65x64", err.Error())
		}
	}
	m.closer = nil
}

// newMachine creates a configured and reset machine from the flags and the
// (optional) image named in the remaining arguments.
func newMachine(md *modalflag.Modes, fl machineFlags, fs afero.Fs, trace io.Writer) (*machine, error) {
	var image imageloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		if *fl.rom {
			return nil, fmt.Errorf("ROM image required for -rom")
		}
	case 1:
		image = imageloader.NewLoader(fs, md.GetArg(0))
		if err := image.Load(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *fl.store != "" && *fl.ramFile != "" {
		return nil, fmt.Errorf("-store and -ramfile cannot be used together")
	}

	m := &machine{
		engine: reference.NewEngine(trace),
	}
	m.mc = cpu.NewCPU(m.engine)

	if v, ok := os.LookupEnv(traceEnv); ok && v == "1" {
		m.trace = true
	} else {
		m.trace = *fl.trace
	}

	var rom []byte
	if *fl.rom {
		rom = image.Data
	}

	var err error

	switch {
	case *fl.store != "":
		var st *backend.LuaStore
		st, err = backend.NewLuaStoreFromFile(fs, *fl.store, *fl.ramSize)
		if err != nil {
			return nil, err
		}
		m.closer = append(m.closer, func() error {
			st.Close()
			return nil
		})
		err = m.mc.ConfigureStore(*fl.mask, *fl.ramSize, st, rom)

	case *fl.ramFile != "":
		var st *backend.FileStore
		st, err = backend.NewFileStore(fs, *fl.ramFile, *fl.ramSize)
		if err != nil {
			return nil, err
		}
		m.closer = append(m.closer, st.Close)
		err = m.mc.ConfigureStore(*fl.mask, *fl.ramSize, st, rom)

	default:
		var ram []byte
		var release func() error
		ram, release, err = backend.AllocateRAM(*fl.ramSize)
		if err != nil {
			return nil, err
		}
		m.closer = append(m.closer, release)

		if image.HasLoaded() && !*fl.rom {
			err = image.Place(ram, *fl.origin)
			if err != nil {
				m.end()
				return nil, err
			}
		}
		err = m.mc.ConfigureRAM(*fl.mask, *fl.ramSize, ram, rom)
	}

	if err != nil {
		m.end()
		return nil, err
	}

	// images destined for a store are written through the bus so that the
	// store sees every byte
	if image.HasLoaded() && !*fl.rom && (*fl.store != "" || *fl.ramFile != "") {
		for i, v := range image.Data {
			err = m.mc.Mem.Poke(*fl.origin+uint64(i), v)
			if err != nil {
				m.end()
				return nil, err
			}
		}
	}

	err = m.mc.Reset(m.trace)
	if err != nil {
		m.end()
		return nil, err
	}

	// a ROM image supplies its own reset vector. a RAM image starts at its
	// origin unless the program counter is given explicitly
	if md.IsSet("pc") {
		err = m.mc.SetProgramCounter(*fl.pc)
	} else if image.HasLoaded() && !*fl.rom {
		err = m.mc.SetProgramCounter(*fl.origin)
	}
	if err != nil {
		m.end()
		return nil, err
	}

	return m, nil
}

func run(md *modalflag.Modes, output io.Writer, fs afero.Fs) error {
	md.NewMode()

	fl := addMachineFlags(md)
	steps := md.AddInt("steps", monitor.ContinueLimit, "maximum number of instructions to execute")
	memvizFile := md.AddString("memviz", "", "write a graphviz description of the machine to file")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")
	log := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output, true)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output)
	}

	m, err := newMachine(md, fl, fs, output)
	if err != nil {
		return err
	}
	defer m.end()

	for i := 0; i < *steps && !m.mc.IsStopped(); i++ {
		err = m.mc.Step()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(output, m.mc.String())
	fmt.Fprintln(output, m.engine.Registers().String())

	if *memvizFile != "" {
		f, err := fs.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, m.mc.Snapshot())
	}

	if !*log {
		logger.Tail(output, logTail)
	}

	return nil
}

func monitorMode(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	fl := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	var pt easyterm.Terminal
	err = pt.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer pt.CleanUp()

	m, err := newMachine(md, fl, fs, &pt)
	if err != nil {
		return err
	}
	defer m.end()

	mon := monitor.NewMonitor(m.mc, m.engine, &pt)
	mon.Trace = m.trace

	return mon.Run(&pt)
}

func tuiMode(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	fl := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	// trace output would corrupt the screen
	m, err := newMachine(md, fl, fs, nil)
	if err != nil {
		return err
	}
	defer m.end()

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	err = scr.Init()
	if err != nil {
		return err
	}
	defer scr.Fini()

	ui := tui.NewTUI(scr, m.mc, m.engine)
	ui.Trace = m.trace
	ui.Run()

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Banner())
	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(output, r)
	}

	return nil
}
