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

// Package statsview offers a locally running HTTP server showing runtime
// statistics of the emulator process. It is useful when watching the
// allocation behaviour of a long run against a large RAM image.
//
// The server is only compiled in when the statsview build tag is present:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() reports that the
// server is not present. With the tag, graphical statistics are found at:
//
//	localhost:16564/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:16564/debug/pprof/
package statsview

// Address is the local address the stats server listens on.
const Address = "localhost:16564"

const url = "/debug/statsview"
