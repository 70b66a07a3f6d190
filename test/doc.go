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

// Package test contains helper functions to remove common boilerplate from
// the package tests of the emulator.
//
// The Expect functions report a failed expectation with t.Errorf() and allow
// the test to continue. The Demand functions use t.Fatalf() and should be
// used when later parts of the test depend on the value being correct. For
// example, demanding that a configuration call succeeded before testing
// memory access through it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// It is worth noting that an untyped nil is considered a success. This is
// because of how error values work in Go and is what we want in practice.
//
// CompareWriter and CappedWriter implement io.Writer and are used to capture
// output from the logger and the monitor.
package test
