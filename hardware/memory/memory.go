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
	"math/bits"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/jetsetilly/emu65x64/hardware/memory/backend"
	"github.com/jetsetilly/emu65x64/hardware/memory/bus"
	"github.com/jetsetilly/emu65x64/logger"
)

// OpenBus is the value of every byte read from an address that is not
// mapped to RAM or ROM.
const OpenBus = uint8(0xff)

// ConfigurationError is returned by the Configure functions when the
// configuration cannot be bound. The existing configuration is unchanged.
const ConfigurationError = "memory configuration: %v"

// Stats counts accesses made through the CPU bus. Multi-byte accesses that
// are decoded byte by byte count once in Reads or Writes and once for each
// byte in OpenBusReads or DiscardedWrites.
type Stats struct {
	Reads           uint64
	Writes          uint64
	OpenBusReads    uint64
	DiscardedWrites uint64
}

// Bus is the memory bus of the 65x64. It implements the bus.CPUBus and
// bus.DebuggerBus interfaces.
type Bus struct {
	configured bool

	mask    uint64
	ramSize uint64

	// nil if the RAM window is not backed by any storage
	ram bus.Backend

	// the ROM is not copied. the host must not change it while it is bound
	rom []byte

	Stats Stats
}

// NewBus is the preferred method of initialisation for the Bus type. The
// bus is not usable until one of the Configure functions has been called.
func NewBus() *Bus {
	return &Bus{}
}

func (mem *Bus) String() string {
	return mem.Summary()
}

// IsConfigured returns true if one of the Configure functions has succeeded.
func (mem *Bus) IsConfigured() bool {
	return mem.configured
}

// Configure binds a read-only memory map. The RAM window of ramSize bytes
// still occupies the bottom of the address space, pushing the ROM up to
// start at ramSize, but it is not backed by storage. Reads from the RAM
// window return the open bus value and writes are discarded.
//
// The rom argument may be nil.
func (mem *Bus) Configure(mask uint64, ramSize uint64, rom []byte) error {
	return mem.bind(mask, ramSize, nil, rom)
}

// ConfigureWithRAM binds a slice of bytes as RAM and an optional ROM. The
// RAM slice must be at least ramSize bytes long. Neither slice is copied.
func (mem *Bus) ConfigureWithRAM(mask uint64, ramSize uint64, ram []byte, rom []byte) error {
	if ram == nil {
		return curated.Errorf(ConfigurationError, "no RAM buffer")
	}
	if uint64(len(ram)) < ramSize {
		return curated.Errorf(ConfigurationError,
			fmt.Sprintf("RAM buffer (%d bytes) is smaller than RAM size (%d bytes)", len(ram), ramSize))
	}
	return mem.bind(mask, ramSize, backend.Buffer(ram), rom)
}

// ConfigureWithStore binds a host object as RAM and an optional ROM. If the
// store implements the bus.Sized interface then its size must be at least
// ramSize bytes.
func (mem *Bus) ConfigureWithStore(mask uint64, ramSize uint64, store bus.Backend, rom []byte) error {
	if store == nil {
		return curated.Errorf(ConfigurationError, "no RAM store")
	}
	if sz, ok := store.(bus.Sized); ok && sz.Size() < ramSize {
		return curated.Errorf(ConfigurationError,
			fmt.Sprintf("RAM store (%d bytes) is smaller than RAM size (%d bytes)", sz.Size(), ramSize))
	}
	return mem.bind(mask, ramSize, store, rom)
}

func (mem *Bus) bind(mask uint64, ramSize uint64, ram bus.Backend, rom []byte) error {
	if _, carry := bits.Add64(ramSize, uint64(len(rom)), 0); carry != 0 {
		return curated.Errorf(ConfigurationError, "ROM does not fit above RAM in a 64-bit address space")
	}

	mem.mask = mask
	mem.ramSize = ramSize
	mem.ram = ram
	mem.rom = rom
	mem.configured = true
	mem.Stats = Stats{}

	logger.Logf(logger.Allow, "memory", "configured: %s", mem.Summary())

	// parts of the memory map that cannot be reached through the mask are not
	// an error but they are probably not what was intended
	if ramSize > 0 && ramSize-1 > mask {
		logger.Logf(logger.Allow, "memory", "RAM above %#x is unreachable with mask %#x", mask, mask)
	}
	if len(rom) > 0 && ramSize > mask {
		logger.Logf(logger.Allow, "memory", "ROM at %#x is unreachable with mask %#x", ramSize, mask)
	} else if len(rom) > 0 && ramSize+uint64(len(rom))-1 > mask {
		logger.Logf(logger.Allow, "memory", "ROM above %#x is unreachable with mask %#x", mask, mask)
	}

	return nil
}

// contiguous returns the masked address and true if an access of n bytes at
// address is wholly inside RAM without wrapping at the mask.
func (mem *Bus) contiguous(address uint64, n uint64) (uint64, bool) {
	if mem.ram == nil {
		return 0, false
	}
	ea := address & mem.mask
	last := (address + n - 1) & mem.mask
	if last < ea || last-ea != n-1 || last >= mem.ramSize {
		return ea, false
	}
	return ea, true
}

// decode and read a single byte. used for byte accesses and for multi-byte
// accesses that are not wholly inside RAM
func (mem *Bus) read(address uint64) uint8 {
	ea := address & mem.mask
	if ea < mem.ramSize {
		if mem.ram != nil {
			return mem.ram.Read8(ea)
		}
	} else if ea-mem.ramSize < uint64(len(mem.rom)) {
		return mem.rom[ea-mem.ramSize]
	}
	mem.Stats.OpenBusReads++
	return OpenBus
}

// decode and write a single byte. used for byte accesses and for multi-byte
// accesses that are not wholly inside RAM
func (mem *Bus) write(address uint64, data uint8) {
	ea := address & mem.mask
	if ea < mem.ramSize && mem.ram != nil {
		mem.ram.Write8(ea, data)
		return
	}
	mem.Stats.DiscardedWrites++
}

// Read8 implements the bus.CPUBus interface.
func (mem *Bus) Read8(address uint64) uint8 {
	mem.Stats.Reads++
	return mem.read(address)
}

// Read16 implements the bus.CPUBus interface.
func (mem *Bus) Read16(address uint64) uint16 {
	mem.Stats.Reads++
	if ea, ok := mem.contiguous(address, 2); ok {
		return mem.ram.Read16(ea)
	}
	return uint16(mem.read(address)) | uint16(mem.read(address+1))<<8
}

// Read32 implements the bus.CPUBus interface.
func (mem *Bus) Read32(address uint64) uint32 {
	mem.Stats.Reads++
	if ea, ok := mem.contiguous(address, 4); ok {
		return mem.ram.Read32(ea)
	}
	var v uint32
	for i := uint64(0); i < 4; i++ {
		v |= uint32(mem.read(address+i)) << (i * 8)
	}
	return v
}

// Read64 implements the bus.CPUBus interface.
func (mem *Bus) Read64(address uint64) uint64 {
	mem.Stats.Reads++
	if ea, ok := mem.contiguous(address, 8); ok {
		return mem.ram.Read64(ea)
	}
	var v uint64
	for i := uint64(0); i < 8; i++ {
		v |= uint64(mem.read(address+i)) << (i * 8)
	}
	return v
}

// ReadAddr implements the bus.CPUBus interface.
func (mem *Bus) ReadAddr(address uint64) uint64 {
	return mem.Read64(address)
}

// Write8 implements the bus.CPUBus interface.
func (mem *Bus) Write8(address uint64, data uint8) {
	mem.Stats.Writes++
	mem.write(address, data)
}

// Write16 implements the bus.CPUBus interface.
func (mem *Bus) Write16(address uint64, data uint16) {
	mem.Stats.Writes++
	if ea, ok := mem.contiguous(address, 2); ok {
		mem.ram.Write16(ea, data)
		return
	}
	mem.write(address, uint8(data))
	mem.write(address+1, uint8(data>>8))
}

// Write32 implements the bus.CPUBus interface.
func (mem *Bus) Write32(address uint64, data uint32) {
	mem.Stats.Writes++
	if ea, ok := mem.contiguous(address, 4); ok {
		mem.ram.Write32(ea, data)
		return
	}
	for i := uint64(0); i < 4; i++ {
		mem.write(address+i, uint8(data>>(i*8)))
	}
}

// Write64 implements the bus.CPUBus interface.
func (mem *Bus) Write64(address uint64, data uint64) {
	mem.Stats.Writes++
	if ea, ok := mem.contiguous(address, 8); ok {
		mem.ram.Write64(ea, data)
		return
	}
	for i := uint64(0); i < 8; i++ {
		mem.write(address+i, uint8(data>>(i*8)))
	}
}
