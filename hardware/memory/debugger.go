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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emu65x64/curated"
)

// Sentinal errors returned by the debugger bus.
const (
	NotConfigured = "memory: not configured"
	PokeError     = "memory: cannot poke %#x (%s)"
)

// Region identifies the part of the memory map an address decodes to.
type Region int

// List of valid Region values.
const (
	RegionRAM Region = iota
	RegionROM
	RegionOpenBus
)

func (r Region) String() string {
	switch r {
	case RegionRAM:
		return "RAM"
	case RegionROM:
		return "ROM"
	}
	return "open bus"
}

// Decode returns the masked address and the region that an address decodes
// to. It makes no access to memory.
func (mem *Bus) Decode(address uint64) (uint64, Region) {
	ea := address & mem.mask
	if ea < mem.ramSize {
		if mem.ram == nil {
			return ea, RegionOpenBus
		}
		return ea, RegionRAM
	}
	if ea-mem.ramSize < uint64(len(mem.rom)) {
		return ea, RegionROM
	}
	return ea, RegionOpenBus
}

// Peek implements the bus.DebuggerBus interface. Peeking does not count
// towards the access statistics. However, a peek of a RAM address bound to
// a host object is forwarded to the object as a normal read and so may have
// side effects.
func (mem *Bus) Peek(address uint64) (uint8, error) {
	if !mem.configured {
		return 0, curated.Errorf(NotConfigured)
	}

	ea, region := mem.Decode(address)
	switch region {
	case RegionRAM:
		return mem.ram.Read8(ea), nil
	case RegionROM:
		return mem.rom[ea-mem.ramSize], nil
	}
	return OpenBus, nil
}

// Poke implements the bus.DebuggerBus interface. Only RAM can be poked. The
// ROM belongs to the host and is never changed by the bus.
func (mem *Bus) Poke(address uint64, value uint8) error {
	if !mem.configured {
		return curated.Errorf(NotConfigured)
	}

	ea, region := mem.Decode(address)
	if region != RegionRAM {
		return curated.Errorf(PokeError, address, region)
	}
	mem.ram.Write8(ea, value)
	return nil
}

// Layout describes the configured memory map.
type Layout struct {
	Mask      uint64
	RAMSize   uint64
	RAMBacked bool
	ROMOrigin uint64
	ROMSize   uint64
}

// Layout returns a description of the configured memory map.
func (mem *Bus) Layout() Layout {
	return Layout{
		Mask:      mem.mask,
		RAMSize:   mem.ramSize,
		RAMBacked: mem.ram != nil,
		ROMOrigin: mem.ramSize,
		ROMSize:   uint64(len(mem.rom)),
	}
}

// Summary returns a single line describing the configured memory map.
func (mem *Bus) Summary() string {
	if !mem.configured {
		return "not configured"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("mask=%#x ", mem.mask))
	if mem.ram == nil {
		s.WriteString(fmt.Sprintf("ram=%#x (unbacked) ", mem.ramSize))
	} else {
		s.WriteString(fmt.Sprintf("ram=%#x ", mem.ramSize))
	}
	if len(mem.rom) == 0 {
		s.WriteString("rom=none")
	} else {
		s.WriteString(fmt.Sprintf("rom=%#x-%#x", mem.ramSize, mem.ramSize+uint64(len(mem.rom))-1))
	}
	return s.String()
}
