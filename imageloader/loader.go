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

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/emu65x64/curated"
	"github.com/spf13/afero"
)

// Sentinal error patterns for the imageloader package.
const (
	LoadError  = "imageloader: %v"
	PlaceError = "imageloader: cannot place image: %v"
)

// Loader is used to specify the memory image to load.
type Loader struct {
	// filename of the image to load
	Filename string

	// the filesystem the image is read from. not used for http images
	Fs afero.Fs

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(fs afero.Fs, filename string) Loader {
	return Loader{
		Filename: filename,
		Fs:       fs,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// Load the image data. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	scheme := ""
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	default:
		if ld.Fs == nil {
			return curated.Errorf(LoadError, "no filesystem")
		}
		data, err = afero.ReadFile(ld.Fs, ld.Filename)
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func fetch(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// Place copies the loaded image into RAM at the origin. The image must fit
// entirely inside the RAM slice.
func (ld Loader) Place(ram []byte, origin uint64) error {
	if !ld.HasLoaded() {
		return curated.Errorf(PlaceError, "image not loaded")
	}
	if origin > uint64(len(ram)) || uint64(len(ld.Data)) > uint64(len(ram))-origin {
		return curated.Errorf(PlaceError,
			fmt.Sprintf("%d bytes at %#x does not fit in %#x bytes of RAM", len(ld.Data), origin, len(ram)))
	}
	copy(ram[origin:], ld.Data)
	return nil
}
