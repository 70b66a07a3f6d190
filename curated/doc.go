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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want to
// expose a kind of error export the pattern as a const string. For example,
// the memory package exports:
//
//	const ConfigurationError = "memory configuration: %v"
//
// and callers test for it with the Is() function:
//
//	err := mem.ConfigureWithRAM(mask, size, ram, nil)
//	if curated.Is(err, memory.ConfigurationError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. Errors are chained by passing one curated error as a value
// to another:
//
//	e := curated.Errorf(memory.ConfigurationError, "ram is nil")
//	f := curated.Errorf("emu65x64: %v", e)
//
//	curated.Is(f, memory.ConfigurationError)  // false
//	curated.Has(f, memory.ConfigurationError) // true
//
// The Error() function normalises the message so that the chain does not
// contain duplicate adjacent parts. Parts of a chain are separated by the
// sub-string ": ", which means that wrapping an error in a pattern with the
// same prefix does not result in messages like "cpu: cpu: not configured".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see any error value that was passed to Errorf().
package curated
