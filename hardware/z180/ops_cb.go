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

// dispatchCB fetches and executes the second byte of a bit manipulation
// instruction.
func (z *Z180) dispatchCB() {
	code := z.rop()
	op := opCB[code]
	op.do(z)
	z.extraCycles += op.cycles
}

// shiftOp dispatches on the operation encoded in the top row of the bit
// manipulation table.
func (z *Z180) shiftOp(code int, v uint8) uint8 {
	switch code {
	case 0:
		return z.rlc(v)
	case 1:
		return z.rrc(v)
	case 2:
		return z.rl(v)
	case 3:
		return z.rr(v)
	case 4:
		return z.sla(v)
	case 5:
		return z.sra(v)
	case 6:
		return z.sll(v)
	}
	return z.srl(v)
}

func buildCBTable() {
	// rotates and shifts
	for op := 0; op < 8; op++ {
		for r := 0; r < 8; r++ {
			code := op<<3 | r
			if r == 6 {
				op := op
				opCB[code] = opcode{13, func(z *Z180) {
					addr := z.Reg.HL.Value()
					z.wm(addr, z.shiftOp(op, z.rm(addr)))
				}}
			} else {
				op := op
				r := r
				opCB[code] = opcode{7, func(z *Z180) { z.setr(r, z.shiftOp(op, z.getr(r))) }}
			}
		}
	}

	// bit test, reset and set
	for b := 0; b < 8; b++ {
		for r := 0; r < 8; r++ {
			b := b
			if r == 6 {
				opCB[0x46|b<<3] = opcode{9, func(z *Z180) { z.bit(b, z.rm(z.Reg.HL.Value())) }}
				opCB[0x86|b<<3] = opcode{13, func(z *Z180) {
					addr := z.Reg.HL.Value()
					z.wm(addr, z.rm(addr)&^(1<<b))
				}}
				opCB[0xc6|b<<3] = opcode{13, func(z *Z180) {
					addr := z.Reg.HL.Value()
					z.wm(addr, z.rm(addr)|1<<b)
				}}
				continue
			}

			r := r
			opCB[0x40|b<<3|r] = opcode{6, func(z *Z180) { z.bit(b, z.getr(r)) }}
			opCB[0x80|b<<3|r] = opcode{7, func(z *Z180) { z.setr(r, z.getr(r)&^(1<<b)) }}
			opCB[0xc0|b<<3|r] = opcode{7, func(z *Z180) { z.setr(r, z.getr(r)|1<<b) }}
		}
	}
}
