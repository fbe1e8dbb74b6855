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

package bus

import "strings"

// Line identifies an input pin on the core. Lines are level sensitive except
// for NMI, which is latched by the core on the rising edge.
type Line int

// List of valid Line values. NMI through DREQ1 take part in interrupt and
// DMA handling. The remaining pins are latched and readable but drive no
// internal machinery.
const (
	NMI Line = iota
	IRQ0
	IRQ1
	IRQ2
	DREQ0
	DREQ1
	CKA0
	CKA1
	CKS
	CTS0
	CTS1
	DCD0
	RXA0
	RXA1
	RXS
	NumLines
)

func (l Line) String() string {
	switch l {
	case NMI:
		return "NMI"
	case IRQ0:
		return "IRQ0"
	case IRQ1:
		return "IRQ1"
	case IRQ2:
		return "IRQ2"
	case DREQ0:
		return "DREQ0"
	case DREQ1:
		return "DREQ1"
	case CKA0:
		return "CKA0"
	case CKA1:
		return "CKA1"
	case CKS:
		return "CKS"
	case CTS0:
		return "CTS0"
	case CTS1:
		return "CTS1"
	case DCD0:
		return "DCD0"
	case RXA0:
		return "RXA0"
	case RXA1:
		return "RXA1"
	case RXS:
		return "RXS"
	}
	return "unknown line"
}

// LineByName returns the Line with the given name. The comparison is case
// insensitive. The second return value is false if the name matches no line.
func LineByName(name string) (Line, bool) {
	for l := NMI; l < NumLines; l++ {
		if strings.EqualFold(l.String(), name) {
			return l, true
		}
	}
	return NumLines, false
}
