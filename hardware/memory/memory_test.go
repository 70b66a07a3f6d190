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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/jetsetilly/emu65x64/hardware/memory"
	"github.com/jetsetilly/emu65x64/hardware/memory/backend"
	"github.com/jetsetilly/emu65x64/test"
)

func newBus(t *testing.T, mask uint64, ram []byte, rom []byte) *memory.Bus {
	t.Helper()
	mem := memory.NewBus()
	test.DemandSuccess(t, mem.ConfigureWithRAM(mask, uint64(len(ram)), ram, rom))
	return mem
}

func TestRoundTrip(t *testing.T) {
	ram := make([]byte, 256)
	mem := newBus(t, 0xffff, ram, nil)

	// every width at every alignment
	for a := uint64(0); a < 16; a++ {
		mem.Write8(a, uint8(a)|0x80)
		test.ExpectEquality(t, mem.Read8(a), uint8(a)|0x80, a)

		mem.Write16(0x20+a, 0x1234+uint16(a))
		test.ExpectEquality(t, mem.Read16(0x20+a), 0x1234+uint16(a), a)

		mem.Write32(0x40+a, 0x89abcdef-uint32(a))
		test.ExpectEquality(t, mem.Read32(0x40+a), 0x89abcdef-uint32(a), a)

		mem.Write64(0x80+a, 0x0123456789abcdef+uint64(a))
		test.ExpectEquality(t, mem.Read64(0x80+a), 0x0123456789abcdef+uint64(a), a)
		test.ExpectEquality(t, mem.ReadAddr(0x80+a), 0x0123456789abcdef+uint64(a), a)
	}
}

func TestLittleEndian(t *testing.T) {
	ram := make([]byte, 16)
	mem := newBus(t, 0xffff, ram, nil)

	mem.Write64(0, 0x0807060504030201)
	for i := 0; i < 8; i++ {
		test.ExpectEquality(t, ram[i], uint8(i+1))
	}
	test.ExpectEquality(t, mem.Read16(1), uint16(0x0302))
	test.ExpectEquality(t, mem.Read32(3), uint32(0x07060504))

	// the host sees the write immediately and the bus sees the host's
	ram[15] = 0xaa
	test.ExpectEquality(t, mem.Read8(15), uint8(0xaa))
}

func TestOpenBus(t *testing.T) {
	ram := make([]byte, 16)
	rom := []byte{0x10, 0x11, 0x12, 0x13}
	mem := newBus(t, 0xffff, ram, rom)

	// beyond the end of ROM
	for _, a := range []uint64{20, 21, 0x100, 0xffff} {
		test.ExpectEquality(t, mem.Read8(a), memory.OpenBus, a)
		mem.Write8(a, 0x00)
		test.ExpectEquality(t, mem.Read8(a), memory.OpenBus, a)
	}
	test.ExpectEquality(t, mem.Read16(0x100), uint16(0xffff))
	test.ExpectEquality(t, mem.Read32(0x100), uint32(0xffffffff))
	test.ExpectEquality(t, mem.Read64(0x100), uint64(0xffffffffffffffff))
}

func TestROMWritesDiscarded(t *testing.T) {
	ram := make([]byte, 16)
	rom := []byte{0x10, 0x11, 0x12, 0x13}
	mem := newBus(t, 0xffff, ram, rom)

	test.ExpectEquality(t, mem.Read8(16), uint8(0x10))
	test.ExpectEquality(t, mem.Read32(16), uint32(0x13121110))

	mem.Write8(16, 0xff)
	mem.Write32(16, 0)
	test.ExpectEquality(t, mem.Read32(16), uint32(0x13121110))
	test.ExpectEquality(t, rom[0], uint8(0x10))

	test.ExpectEquality(t, mem.Stats.DiscardedWrites, uint64(5))
}

func TestMaskWrap(t *testing.T) {
	ram := make([]byte, 0x100)
	rom := []byte{0xa0, 0xa1}
	mem := newBus(t, 0x1ff, ram, rom)

	for i := range ram {
		ram[i] = uint8(i)
	}

	for _, a := range []uint64{0, 1, 0xff, 0x100, 0x101, 0x102, 0x1ff, 0x200, 0x2ff, 0x301,
		0x1234_5678_9abc_def0, 0xffff_ffff_ffff_ffff} {
		test.ExpectEquality(t, mem.Read8(a), mem.Read8(a&0x1ff), a)
		test.ExpectEquality(t, mem.Read16(a), mem.Read16(a&0x1ff), a)
		test.ExpectEquality(t, mem.Read64(a), mem.Read64(a&0x1ff), a)
	}

	// a write through a mirror is seen at the masked address
	mem.Write8(0x1000_0010, 0x55)
	test.ExpectEquality(t, ram[0x10], uint8(0x55))
}

func TestWrapAtTopOfAddressSpace(t *testing.T) {
	ram := make([]byte, 0x100)
	mem := newBus(t, 0xff, ram, nil)

	// a dword at the top of the masked space wraps to address zero
	mem.Write32(0xfe, 0x44332211)
	test.ExpectEquality(t, ram[0xfe], uint8(0x11))
	test.ExpectEquality(t, ram[0xff], uint8(0x22))
	test.ExpectEquality(t, ram[0x00], uint8(0x33))
	test.ExpectEquality(t, ram[0x01], uint8(0x44))
	test.ExpectEquality(t, mem.Read32(0xfe), uint32(0x44332211))

	// and the same at the top of the unmasked 64-bit space
	mem.Write16(0xffff_ffff_ffff_ffff, 0xbbaa)
	test.ExpectEquality(t, ram[0xff], uint8(0xaa))
	test.ExpectEquality(t, ram[0x00], uint8(0xbb))
}

func TestBoundarySpan(t *testing.T) {
	ram := make([]byte, 16)
	rom := []byte{0xc0, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7}
	mem := newBus(t, 0xffff, ram, rom)

	// qword straddling the RAM/ROM boundary. only the RAM half is written
	mem.Write64(12, 0x1111111144332211)
	test.ExpectEquality(t, mem.Read64(12), uint64(0xc3c2c1c044332211))

	// qword straddling the end of ROM and the open bus
	test.ExpectEquality(t, mem.Read64(20), uint64(0xffffffffc7c6c5c4))

	// word straddling
	test.ExpectEquality(t, mem.Read16(15), uint16(0xc044))
}

func TestConfigure(t *testing.T) {
	rom := []byte{0xea, 0xdb}
	mem := memory.NewBus()
	test.ExpectEquality(t, mem.IsConfigured(), false)

	test.DemandSuccess(t, mem.Configure(0xffff, 0x100, rom))
	test.ExpectEquality(t, mem.IsConfigured(), true)

	// the RAM window is not backed
	test.ExpectEquality(t, mem.Read8(0), memory.OpenBus)
	mem.Write8(0, 0x00)
	test.ExpectEquality(t, mem.Read8(0), memory.OpenBus)
	test.ExpectEquality(t, mem.Read64(0), uint64(0xffffffffffffffff))

	// the ROM is above it
	test.ExpectEquality(t, mem.Read16(0x100), uint16(0xdbea))
	test.ExpectEquality(t, mem.Read8(0x102), memory.OpenBus)

	// no ROM at all
	test.DemandSuccess(t, mem.Configure(0xffff, 0, nil))
	test.ExpectEquality(t, mem.Read8(0), memory.OpenBus)
}

func TestConfigurationErrors(t *testing.T) {
	ram := make([]byte, 16)
	mem := newBus(t, 0xffff, ram, nil)

	err := mem.ConfigureWithRAM(0xffff, 32, make([]byte, 16), nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ConfigurationError))

	err = mem.ConfigureWithRAM(0xffff, 0, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ConfigurationError))

	err = mem.ConfigureWithStore(0xffff, 32, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ConfigurationError))

	err = mem.ConfigureWithStore(0xffff, 32, make(backend.Buffer, 16), nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ConfigurationError))

	err = mem.Configure(0xffff, 0xffff_ffff_ffff_fffe, []byte{0, 1, 2})
	test.ExpectSuccess(t, curated.Is(err, memory.ConfigurationError))

	// the previous configuration survives a failed configuration
	mem.Write8(3, 0x33)
	test.ExpectEquality(t, ram[3], uint8(0x33))
	test.ExpectEquality(t, mem.Layout().RAMSize, uint64(16))

	// a RAM buffer bigger than the RAM size is fine
	test.ExpectSuccess(t, mem.ConfigureWithRAM(0xffff, 8, ram, nil))
	test.ExpectEquality(t, mem.Read8(8), memory.OpenBus)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewBus()
	_, err := mem.Peek(0)
	test.ExpectSuccess(t, curated.Is(err, memory.NotConfigured))
	test.ExpectSuccess(t, curated.Is(mem.Poke(0, 0), memory.NotConfigured))

	ram := make([]byte, 16)
	rom := []byte{0x99}
	mem = newBus(t, 0xffff, ram, rom)

	test.ExpectSuccess(t, mem.Poke(0x10003, 0x42))
	test.ExpectEquality(t, ram[3], uint8(0x42))

	v, err := mem.Peek(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	v, err = mem.Peek(16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))

	v, err = mem.Peek(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, memory.OpenBus)

	err = mem.Poke(16, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.PokeError))
	test.ExpectEquality(t, rom[0], uint8(0x99))

	// peek and poke are not counted
	test.ExpectEquality(t, mem.Stats, memory.Stats{})
}

func TestDecode(t *testing.T) {
	mem := newBus(t, 0xff, make([]byte, 16), []byte{0, 0})

	ea, r := mem.Decode(0x105)
	test.ExpectEquality(t, ea, uint64(5))
	test.ExpectEquality(t, r, memory.RegionRAM)

	_, r = mem.Decode(17)
	test.ExpectEquality(t, r, memory.RegionROM)

	_, r = mem.Decode(18)
	test.ExpectEquality(t, r, memory.RegionOpenBus)
	test.ExpectEquality(t, r.String(), "open bus")
}

func TestStats(t *testing.T) {
	mem := newBus(t, 0xffff, make([]byte, 16), nil)

	mem.Read8(0)
	mem.Read64(0)
	mem.Read16(100)
	mem.Write8(1, 0)
	mem.Write32(14, 0)

	test.ExpectEquality(t, mem.Stats.Reads, uint64(3))
	test.ExpectEquality(t, mem.Stats.Writes, uint64(2))
	test.ExpectEquality(t, mem.Stats.OpenBusReads, uint64(2))
	test.ExpectEquality(t, mem.Stats.DiscardedWrites, uint64(2))

	// reconfiguration resets the statistics
	test.DemandSuccess(t, mem.Configure(0xffff, 0, nil))
	test.ExpectEquality(t, mem.Stats, memory.Stats{})
}

func TestSummary(t *testing.T) {
	mem := memory.NewBus()
	test.ExpectEquality(t, mem.Summary(), "not configured")

	mem = newBus(t, 0x3fffffff, make([]byte, 0x10), []byte{1, 2, 3, 4})
	test.ExpectEquality(t, mem.Summary(), "mask=0x3fffffff ram=0x10 rom=0x10-0x13")

	test.DemandSuccess(t, mem.Configure(0xffff, 0x100, nil))
	test.ExpectEquality(t, mem.Summary(), "mask=0xffff ram=0x100 (unbacked) rom=none")
}
