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

// Package imageloader loads binary memory images for the 65x64. An image is
// either bound as ROM or copied into RAM at an origin address.
//
// Images are read from an afero.Fs, which is normally the host filesystem.
// Filenames with an http or https scheme are fetched over the network
// instead. Loaded images are hashed with SHA1 so that a host can check that
// it is running the image it expects.
package imageloader
