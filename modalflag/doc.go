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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// sub-modes, along with flags for each mode.
//
// A mode is a plain word on the command line that selects what the program
// should do. The first mode given to AddSubModes() is the default and is
// selected when no mode is named on the command line. For example, the
// emu65x64 command has the modes RUN, MONITOR, TUI and VERSION, with RUN as
// the default. The following are equivalent:
//
//	emu65x64 run -rom program.bin
//	emu65x64 -rom program.bin
//
// The idiomatic pattern is to create a Modes instance, call NewArgs() with
// the command line, add the sub-modes and any top-level flags, and then call
// Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		rom := md.AddString("rom", "", "ROM image")
//		...
//	}
//
// Once a mode has been selected, NewMode() begins a new set of flags for that
// mode. Parse() is then called again to parse the remaining arguments.
//
// Machine addresses are common on the emu65x64 command line so AddAddress()
// provides a flag type that accepts hexadecimal (with the 0x prefix), octal
// or decimal values for the full 64-bit range.
package modalflag
