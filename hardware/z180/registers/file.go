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

import (
	"fmt"
	"strings"
)

// File is the architectural register set of the core: the working pairs, the
// alternate bank, the index and pointer registers and the interrupt state.
// The internal peripheral registers are not part of the File. They belong to
// the core's I/O port contract.
type File struct {
	AF Pair
	BC Pair
	DE Pair
	HL Pair

	// the alternate bank. only ever accessed through the exchange
	// instructions
	AF2 Pair
	BC2 Pair
	DE2 Pair
	HL2 Pair

	IX Pair
	IY Pair
	SP Pair
	PC Pair

	// interrupt vector base. the high byte of mode 2 vector table addresses
	// and of internally generated vectors
	I uint8

	// R is the refresh counter, incremented once for every opcode byte
	// fetched. only the low 7 bits count; R2 preserves bit 7 as written by
	// LD R,A
	R  uint8
	R2 uint8

	IFF1 bool
	IFF2 bool

	// interrupt mode. 0, 1 or 2
	IM uint8

	// the core is executing the halt loop. cleared by interrupt service
	Halted bool
}

// NewFile is the preferred method of initialisation for the File type. All
// values are zero until the core's reset sequence loads the architectural
// defaults.
func NewFile() File {
	return File{
		AF:  NewPair(0, "AF"),
		BC:  NewPair(0, "BC"),
		DE:  NewPair(0, "DE"),
		HL:  NewPair(0, "HL"),
		AF2: NewPair(0, "AF'"),
		BC2: NewPair(0, "BC'"),
		DE2: NewPair(0, "DE'"),
		HL2: NewPair(0, "HL'"),
		IX:  NewPair(0, "IX"),
		IY:  NewPair(0, "IY"),
		SP:  NewPair(0, "SP"),
		PC:  NewPair(0, "PC"),
	}
}

// ExchangeAF swaps AF with the alternate bank copy. The EX AF,AF'
// instruction.
func (f *File) ExchangeAF() {
	f.AF.value, f.AF2.value = f.AF2.value, f.AF.value
}

// Exchange swaps BC, DE and HL with the alternate bank copies. The EXX
// instruction.
func (f *File) Exchange() {
	f.BC.value, f.BC2.value = f.BC2.value, f.BC.value
	f.DE.value, f.DE2.value = f.DE2.value, f.DE.value
	f.HL.value, f.HL2.value = f.HL2.value, f.HL.value
}

// Refresh composes the value returned by LD A,R: the live 7 bit counter with
// bit 7 as most recently written.
func (f *File) Refresh() uint8 {
	return (f.R & 0x7f) | (f.R2 & 0x80)
}

func (f *File) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s %s %s %s  %s %s", f.PC, f.SP, f.AF, f.BC, f.DE, f.HL, f.IX, f.IY))
	s.WriteString(fmt.Sprintf("  I=%#02x R=%#02x IM=%d", f.I, f.Refresh(), f.IM))
	if f.IFF1 {
		s.WriteString(" EI")
	} else {
		s.WriteString(" DI")
	}
	if f.Halted {
		s.WriteString(" HALT")
	}
	return s.String()
}
