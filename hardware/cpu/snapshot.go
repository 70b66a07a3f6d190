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

import "github.com/jetsetilly/emu65x64/hardware/memory"

// Snapshot is a copy of the observable state of the CPU and its memory
// map. It contains no references to RAM or ROM so it is safe to keep after
// the CPU has been reconfigured.
type Snapshot struct {
	Phase  string
	State  State
	Layout memory.Layout
	Stats  memory.Stats
}

// Snapshot returns a copy of the observable state of the CPU.
func (mc *CPU) Snapshot() *Snapshot {
	return &Snapshot{
		Phase:  mc.Phase().String(),
		State:  mc.state,
		Layout: mc.Mem.Layout(),
		Stats:  mc.Mem.Stats,
	}
}
