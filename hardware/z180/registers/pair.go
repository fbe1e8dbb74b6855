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

package registers

import "fmt"

// Pair is a 16 bit register pair addressable as two 8 bit halves.
type Pair struct {
	value uint16
	label string
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(val uint16, label string) Pair {
	return Pair{
		value: val,
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.value)
}

// Label returns the name the pair was created with.
func (p Pair) Label() string {
	return p.label
}

// Value returns the current 16 bit value of the pair.
func (p Pair) Value() uint16 {
	return p.value
}

// Hi returns the most significant byte of the pair.
func (p Pair) Hi() uint8 {
	return uint8(p.value >> 8)
}

// Lo returns the least significant byte of the pair.
func (p Pair) Lo() uint8 {
	return uint8(p.value)
}

// Load value into the pair.
func (p *Pair) Load(val uint16) {
	p.value = val
}

// SetHi replaces the most significant byte of the pair.
func (p *Pair) SetHi(val uint8) {
	p.value = (p.value & 0x00ff) | (uint16(val) << 8)
}

// SetLo replaces the least significant byte of the pair.
func (p *Pair) SetLo(val uint8) {
	p.value = (p.value & 0xff00) | uint16(val)
}

// Add a value to the pair, wrapping at 16 bits.
func (p *Pair) Add(val uint16) {
	p.value += val
}

// Inc the pair by one, wrapping at 16 bits.
func (p *Pair) Inc() {
	p.value++
}

// Dec the pair by one, wrapping at 16 bits.
func (p *Pair) Dec() {
	p.value--
}
