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
	"encoding/binary"
	"os"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/spf13/afero"
)

// FileStore implements the bus.Backend interface for a file. The file is
// opened on an afero.Fs so that the store can be backed by the host
// filesystem or by memory.
//
// Accesses are made with ReadAt() and WriteAt() on the file every time. The
// store does not buffer. An access that fails is not reported to the CPU,
// in the same way that a failing memory chip is not reported, but the first
// failure is recorded and is available with the Err() function.
type FileStore struct {
	file afero.File
	size uint64
	err  error
	data [8]byte
}

// NewFileStore is the preferred method of initialisation for the FileStore
// type. The named file is created if it does not exist and is extended with
// zero bytes if it is shorter than size.
func NewFileStore(fs afero.Fs, name string, size uint64) (*FileStore, error) {
	f, err := fs.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	if uint64(info.Size()) < size {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, curated.Errorf(StoreError, err)
		}
	}

	return &FileStore{
		file: f,
		size: size,
	}, nil
}

// Close the underlying file.
func (st *FileStore) Close() error {
	if err := st.file.Close(); err != nil {
		return curated.Errorf(StoreError, err)
	}
	return nil
}

// Err returns the first error encountered during a read or write.
func (st *FileStore) Err() error {
	return st.err
}

// Size implements the bus.Sized interface.
func (st *FileStore) Size() uint64 {
	return st.size
}

// bytes that cannot be read are returned as 0xff
func (st *FileStore) read(address uint64, n int) []byte {
	d := st.data[:n]
	for i := range d {
		d[i] = 0xff
	}
	if _, err := st.file.ReadAt(d, int64(address)); err != nil && st.err == nil {
		st.err = curated.Errorf(StoreError, err)
	}
	return d
}

func (st *FileStore) write(address uint64, d []byte) {
	if _, err := st.file.WriteAt(d, int64(address)); err != nil && st.err == nil {
		st.err = curated.Errorf(StoreError, err)
	}
}

// Read8 implements the bus.Backend interface.
func (st *FileStore) Read8(address uint64) uint8 {
	return st.read(address, 1)[0]
}

// Read16 implements the bus.Backend interface.
func (st *FileStore) Read16(address uint64) uint16 {
	return binary.LittleEndian.Uint16(st.read(address, 2))
}

// Read32 implements the bus.Backend interface.
func (st *FileStore) Read32(address uint64) uint32 {
	return binary.LittleEndian.Uint32(st.read(address, 4))
}

// Read64 implements the bus.Backend interface.
func (st *FileStore) Read64(address uint64) uint64 {
	return binary.LittleEndian.Uint64(st.read(address, 8))
}

// Write8 implements the bus.Backend interface.
func (st *FileStore) Write8(address uint64, data uint8) {
	st.data[0] = data
	st.write(address, st.data[:1])
}

// Write16 implements the bus.Backend interface.
func (st *FileStore) Write16(address uint64, data uint16) {
	binary.LittleEndian.PutUint16(st.data[:], data)
	st.write(address, st.data[:2])
}

// Write32 implements the bus.Backend interface.
func (st *FileStore) Write32(address uint64, data uint32) {
	binary.LittleEndian.PutUint32(st.data[:], data)
	st.write(address, st.data[:4])
}

// Write64 implements the bus.Backend interface.
func (st *FileStore) Write64(address uint64, data uint64) {
	binary.LittleEndian.PutUint64(st.data[:], data)
	st.write(address, st.data[:8])
}
