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

// the displaced bit manipulation instructions operate on memory through the
// effective address latched by the dispatcher. the register field of the
// final opcode byte is ignored, every column behaves as the memory column.
func buildXYCBTable() {
	for op := 0; op < 8; op++ {
		for r := 0; r < 8; r++ {
			op := op
			opXYCB[op<<3|r] = opcode{19, func(z *Z180) { z.wm(z.ea, z.shiftOp(op, z.rm(z.ea))) }}
		}
	}

	for b := 0; b < 8; b++ {
		for r := 0; r < 8; r++ {
			b := b
			opXYCB[0x40|b<<3|r] = opcode{15, func(z *Z180) { z.bit(b, z.rm(z.ea)) }}
			opXYCB[0x80|b<<3|r] = opcode{19, func(z *Z180) { z.wm(z.ea, z.rm(z.ea)&^(1<<b)) }}
			opXYCB[0xc0|b<<3|r] = opcode{19, func(z *Z180) { z.wm(z.ea, z.rm(z.ea)|1<<b) }}
		}
	}
}
