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

// Package registers implements the architectural register set of the core.
// The Pair type is a 16 bit register addressable as two 8 bit halves; the
// File type gathers the pairs with the interrupt and refresh state.
//
// The types here carry no instruction semantics. Arithmetic, flag handling
// and the exchange of values between registers and memory belong to the
// parent package.
package registers
