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

package backend

import (
	"github.com/jetsetilly/emu65x64/curated"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

// LuaStore implements the bus.Backend interface by calling functions in a
// Lua script. The script must define two global functions:
//
//	function read(address, width)
//		return value
//	end
//
//	function write(address, width, value)
//	end
//
// The width is the size of the access in bits. Lua numbers cannot hold every
// 64-bit value so 64-bit accesses are made as two 32-bit calls, the low half
// at the address and the high half at address+4.
//
// The script is called for every access. This means the script can model
// devices with side effects on read, such as a status register that is
// cleared when it is read.
type LuaStore struct {
	state *lua.LState
	size  uint64
	read  lua.LValue
	write lua.LValue
	err   error
}

// NewLuaStore is the preferred method of initialisation for the LuaStore
// type. The script argument is the source of the script, not a filename.
func NewLuaStore(script string, size uint64) (*LuaStore, error) {
	L := lua.NewState()

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	st := &LuaStore{
		state: L,
		size:  size,
		read:  L.GetGlobal("read"),
		write: L.GetGlobal("write"),
	}

	if st.read.Type() != lua.LTFunction {
		L.Close()
		return nil, curated.Errorf(StoreError, "script does not define a read() function")
	}
	if st.write.Type() != lua.LTFunction {
		L.Close()
		return nil, curated.Errorf(StoreError, "script does not define a write() function")
	}

	return st, nil
}

// NewLuaStoreFromFile reads the script from the named file before calling
// NewLuaStore().
func NewLuaStoreFromFile(fs afero.Fs, filename string, size uint64) (*LuaStore, error) {
	script, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	return NewLuaStore(string(script), size)
}

// Close the Lua state.
func (st *LuaStore) Close() {
	st.state.Close()
}

// Err returns the first error raised by the script during a read or write.
func (st *LuaStore) Err() error {
	return st.err
}

// Size implements the bus.Sized interface.
func (st *LuaStore) Size() uint64 {
	return st.size
}

func (st *LuaStore) call(fn lua.LValue, nret int, args ...lua.LValue) bool {
	err := st.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    nret,
		Protect: true,
	}, args...)
	if err != nil {
		if st.err == nil {
			st.err = curated.Errorf(StoreError, err)
		}
		return false
	}
	return true
}

// a value that cannot be read is returned with all bits set
func (st *LuaStore) readWidth(address uint64, width int) uint32 {
	if !st.call(st.read, 1, lua.LNumber(address), lua.LNumber(width)) {
		return 0xffffffff
	}
	ret := st.state.Get(-1)
	st.state.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		if st.err == nil {
			st.err = curated.Errorf(StoreError, "read() did not return a number")
		}
		return 0xffffffff
	}
	return uint32(int64(n))
}

func (st *LuaStore) writeWidth(address uint64, width int, data uint32) {
	st.call(st.write, 0, lua.LNumber(address), lua.LNumber(width), lua.LNumber(data))
}

// Read8 implements the bus.Backend interface.
func (st *LuaStore) Read8(address uint64) uint8 {
	return uint8(st.readWidth(address, 8))
}

// Read16 implements the bus.Backend interface.
func (st *LuaStore) Read16(address uint64) uint16 {
	return uint16(st.readWidth(address, 16))
}

// Read32 implements the bus.Backend interface.
func (st *LuaStore) Read32(address uint64) uint32 {
	return st.readWidth(address, 32)
}

// Read64 implements the bus.Backend interface.
func (st *LuaStore) Read64(address uint64) uint64 {
	lo := st.readWidth(address, 32)
	hi := st.readWidth(address+4, 32)
	return uint64(hi)<<32 | uint64(lo)
}

// Write8 implements the bus.Backend interface.
func (st *LuaStore) Write8(address uint64, data uint8) {
	st.writeWidth(address, 8, uint32(data))
}

// Write16 implements the bus.Backend interface.
func (st *LuaStore) Write16(address uint64, data uint16) {
	st.writeWidth(address, 16, uint32(data))
}

// Write32 implements the bus.Backend interface.
func (st *LuaStore) Write32(address uint64, data uint32) {
	st.writeWidth(address, 32, data)
}

// Write64 implements the bus.Backend interface.
func (st *LuaStore) Write64(address uint64, data uint64) {
	st.writeWidth(address, 32, uint32(data))
	st.writeWidth(address+4, 32, uint32(data>>32))
}
