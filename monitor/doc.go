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

// Package monitor is a simple single-key monitor for the 65x64. It is used
// by the MONITOR mode of the emu65x64 command.
//
// Commands are single keys and take effect immediately:
//
//	s or space    step one instruction
//	c             continue until the CPU stops (or the step limit)
//	r             reset the CPU
//	m             show the memory at the program counter
//	i             show the memory map and access statistics
//	l             show the most recent log entries
//	h or ?        show help
//	q             quit
//
// The Command() function is independent of the terminal and can be driven
// by any source of keys. Run() reads keys from an easyterm.Terminal.
package monitor
