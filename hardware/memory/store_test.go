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
	"fmt"
	"testing"

	"github.com/jetsetilly/emu65x64/hardware/memory"
	"github.com/jetsetilly/emu65x64/hardware/memory/backend"
	"github.com/jetsetilly/emu65x64/test"
)

// recordingStore is a host object that records every access made to it
type recordingStore struct {
	ram      backend.Buffer
	accesses []string
}

func (st *recordingStore) record(op string, width int, address uint64) {
	st.accesses = append(st.accesses, fmt.Sprintf("%s%d@%#x", op, width, address))
}

func (st *recordingStore) Read8(address uint64) uint8 {
	st.record("r", 8, address)
	return st.ram.Read8(address)
}

func (st *recordingStore) Read16(address uint64) uint16 {
	st.record("r", 16, address)
	return st.ram.Read16(address)
}

func (st *recordingStore) Read32(address uint64) uint32 {
	st.record("r", 32, address)
	return st.ram.Read32(address)
}

func (st *recordingStore) Read64(address uint64) uint64 {
	st.record("r", 64, address)
	return st.ram.Read64(address)
}

func (st *recordingStore) Write8(address uint64, data uint8) {
	st.record("w", 8, address)
	st.ram.Write8(address, data)
}

func (st *recordingStore) Write16(address uint64, data uint16) {
	st.record("w", 16, address)
	st.ram.Write16(address, data)
}

func (st *recordingStore) Write32(address uint64, data uint32) {
	st.record("w", 32, address)
	st.ram.Write32(address, data)
}

func (st *recordingStore) Write64(address uint64, data uint64) {
	st.record("w", 64, address)
	st.ram.Write64(address, data)
}

func (st *recordingStore) reset() {
	st.accesses = st.accesses[:0]
}

func (st *recordingStore) compare(t *testing.T, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(st.accesses), len(expected)) {
		t.Logf("accesses: %v", st.accesses)
		return
	}
	for i := range expected {
		test.ExpectEquality(t, st.accesses[i], expected[i], i)
	}
}

func TestStoreForwarding(t *testing.T) {
	st := &recordingStore{ram: make(backend.Buffer, 32)}
	mem := memory.NewBus()

	// recordingStore does not implement bus.Sized so any RAM size is accepted
	test.DemandSuccess(t, mem.ConfigureWithStore(0xffff, 32, st, []byte{0xee}))

	// one call at the full width for accesses wholly inside RAM
	mem.Write64(0x10001, 0x0102030405060708)
	st.compare(t, "w64@0x1")
	st.reset()

	mem.Read8(1)
	mem.Read16(2)
	mem.Read32(3)
	mem.Read64(1)
	st.compare(t, "r8@0x1", "r16@0x2", "r32@0x3", "r64@0x1")
	st.reset()

	// values are never cached. every read reaches the store
	mem.Read32(4)
	mem.Read32(4)
	st.compare(t, "r32@0x4", "r32@0x4")
	st.reset()

	// accesses outside RAM never reach the store
	mem.Read64(32)
	mem.Write8(40, 0)
	st.compare(t)

	// accesses straddling the end of RAM are made one byte at a time for the
	// bytes that are in RAM
	v := mem.Read32(30)
	st.compare(t, "r8@0x1e", "r8@0x1f")
	test.ExpectEquality(t, v&0x00ff0000, uint32(0x00ee0000))
	st.reset()

	mem.Write16(31, 0xffff)
	st.compare(t, "w8@0x1f")
}

func TestStoreWrapsAtMask(t *testing.T) {
	st := &recordingStore{ram: make(backend.Buffer, 16)}
	mem := memory.NewBus()
	test.DemandSuccess(t, mem.ConfigureWithStore(0x0f, 16, st, nil))

	mem.Write32(14, 0xaabbccdd)
	st.compare(t, "w8@0xe", "w8@0xf", "w8@0x0", "w8@0x1")
	test.ExpectEquality(t, mem.Read32(14), uint32(0xaabbccdd))
}

func TestSizedStore(t *testing.T) {
	st, err := backend.NewLuaStore(`
mem = {}
function read(a, w) return mem[a] or 0 end
function write(a, w, v) mem[a] = v end
`, 8)
	test.DemandSuccess(t, err)
	defer st.Close()

	mem := memory.NewBus()
	test.ExpectFailure(t, mem.ConfigureWithStore(0xffff, 16, st, nil))
	test.DemandSuccess(t, mem.ConfigureWithStore(0xffff, 8, st, nil))

	mem.Write16(2, 0x1234)
	test.ExpectEquality(t, mem.Read16(2), uint16(0x1234))
}
