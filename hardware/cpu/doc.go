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

// Package cpu is the control interface of the 65x64 CPU. It owns the
// execution state of the machine (the program counter, the cycle count and
// the stopped flag) and drives an instruction engine one instruction at a
// time.
//
// The instruction engine is not part of this package. It is injected with
// the Engine interface when the CPU is created:
//
//	mc := cpu.NewCPU(reference.NewEngine())
//
// The CPU moves through the following phases:
//
//	Unconfigured --Configure--> Ready --Reset--> Running <--> Stopped
//
// Calling Reset(), Step() or SetProgramCounter() before the memory has been
// configured is a programming error and returns a PreconditionViolation
// error. After configuration none of the control functions fail.
//
// Once the engine has stopped the CPU, Step() does nothing until the next
// call to Reset(). Stepping a stopped CPU is safe and the cycle count does
// not change.
//
// The CPU is not safe for concurrent use. A step always completes, including
// all of its memory accesses, before Step() returns.
package cpu
