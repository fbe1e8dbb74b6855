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

package z180

import "github.com/zedemu/zed180/hardware/bus"

// SetLine asserts or releases one of the named input lines. The NMI line
// is edge triggered, latching on the rising transition only. Every other
// line is level sensitive and is sampled when the relevant peripheral or
// the interrupt controller next looks at it.
func (z *Z180) SetLine(line bus.Line, asserted bool) {
	if line < 0 || line >= bus.NumLines {
		return
	}

	if line == bus.NMI && asserted && !z.nmiState {
		z.pending[IntNMI] = true
	}
	if line == bus.NMI {
		z.nmiState = asserted
	}

	z.lines[line] = asserted
}

// LineState returns the most recent state asserted on the named line.
func (z *Z180) LineState(line bus.Line) bool {
	if line < 0 || line >= bus.NumLines {
		return false
	}
	return z.lines[line]
}
