// This file is part of Zed180.
//
// Zed180 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zed180 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zed180.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), and returns
// an error. The pattern string is also the identity of the error:
//
//	e := curated.Errorf("mmu: bank %d out of range", b)
//
//	if curated.Is(e, "mmu: bank %d out of range") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the outermost wrapping.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being 'expected'
// and 'unexpected' errors, depending on how the caller chooses to handle the
// result of a function call.
//
// The Error() implementation normalises the error chain so that it does not
// contain duplicate adjacent parts. Wrapping the same pattern twice down a
// call chain therefore does not produce messages of the form:
//
//	error: error: timer not enabled
//
// Chains are considered to be composed of parts separated by the sub-string
// ': ', as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, near the code that creates them.
package curated
