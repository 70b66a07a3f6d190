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

// Package hardware is the base package for the 65x64 machine. The machine
// is made of two parts that are found in the sub-packages:
//
//	cpu      the control interface for the CPU and the Engine interface
//	         through which an instruction engine is injected
//
//	memory   the memory bus with mask based address decoding over RAM,
//	         an optional ROM overlay and the open bus
//
// The hardware package itself contains no code. The CPU type in the cpu
// package is the point of entry for a host application.
package hardware
