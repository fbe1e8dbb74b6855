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

import (
	"github.com/zedemu/zed180/hardware/z180/registers"
	"github.com/zedemu/zed180/logger"
)

// dispatchIndex fetches and executes the second byte of an index register
// instruction. The isIY argument selects which of the two index registers
// the instruction body works with.
func (z *Z180) dispatchIndex(isIY bool) {
	z.idxIsIY = isIY

	code := z.rop()
	if code == 0xcb {
		// the displacement precedes the final opcode byte and neither
		// fetch refreshes R
		d := int8(z.arg())
		inner := z.arg()
		z.ea = uint16(int32(z.idxPair().Value()) + int32(d))
		op := opXYCB[inner]
		op.do(z)
		z.extraCycles += op.cycles
		return
	}

	op := opIndex[code]
	op.do(z)
	z.extraCycles += op.cycles
}

// pairIdx is the pair decode used by the index register instructions, with
// the active index register in the third slot.
func (z *Z180) pairIdx(code int) *registers.Pair {
	if code == 2 {
		return z.idxPair()
	}
	return z.pair(code)
}

func buildIndexTable() {
	for p := 0; p < 4; p++ {
		p := p
		opIndex[0x09|p<<4] = opcode{10, func(z *Z180) { z.add16(z.idxPair(), z.pairIdx(p).Value()) }}
	}

	opIndex[0x21] = opcode{12, func(z *Z180) { z.idxPair().Load(z.arg16()) }}
	opIndex[0x22] = opcode{19, func(z *Z180) { z.wm16(z.arg16(), z.idxPair().Value()) }}
	opIndex[0x23] = opcode{7, func(z *Z180) { z.idxPair().Inc() }}
	opIndex[0x2a] = opcode{18, func(z *Z180) { z.idxPair().Load(z.rm16(z.arg16())) }}
	opIndex[0x2b] = opcode{7, func(z *Z180) { z.idxPair().Dec() }}

	opIndex[0x34] = opcode{18, func(z *Z180) {
		addr := z.eaIndex()
		z.wm(addr, z.inc8(z.rm(addr)))
	}}
	opIndex[0x35] = opcode{18, func(z *Z180) {
		addr := z.eaIndex()
		z.wm(addr, z.dec8(z.rm(addr)))
	}}
	opIndex[0x36] = opcode{15, func(z *Z180) {
		addr := z.eaIndex()
		z.wm(addr, z.arg())
	}}

	for r := 0; r < 8; r++ {
		if r == 6 {
			continue
		}
		r := r
		opIndex[0x46|r<<3] = opcode{14, func(z *Z180) { z.setr(r, z.rm(z.eaIndex())) }}
		opIndex[0x70|r] = opcode{15, func(z *Z180) { z.wm(z.eaIndex(), z.getr(r)) }}
	}

	for op := 0; op < 8; op++ {
		op := op
		opIndex[0x86|op<<3] = opcode{14, func(z *Z180) { z.aluOp(op, z.rm(z.eaIndex())) }}
	}

	opIndex[0xe1] = opcode{12, func(z *Z180) { z.idxPair().Load(z.pop()) }}
	opIndex[0xe3] = opcode{19, func(z *Z180) {
		sp := z.Reg.SP.Value()
		tmp := z.rm16(sp)
		z.wm16(sp, z.idxPair().Value())
		z.idxPair().Load(tmp)
	}}
	opIndex[0xe5] = opcode{14, func(z *Z180) { z.push(z.idxPair().Value()) }}
	opIndex[0xe9] = opcode{6, func(z *Z180) { z.Reg.PC.Load(z.idxPair().Value()) }}
	opIndex[0xf9] = opcode{7, func(z *Z180) { z.Reg.SP.Load(z.idxPair().Value()) }}

	// an index prefix on an instruction with no indexed form has no
	// effect. the instruction runs as if unprefixed, with the prefix
	// fetch charged on top
	for i := range opIndex {
		if opIndex[i].do != nil {
			continue
		}
		i := i
		opIndex[i] = opcode{opBase[i].cycles + 3, func(z *Z180) {
			logger.Logf(logger.Allow, "z180", "index prefix ignored (op=%02x)", i)
			opBase[i].do(z)
		}}
	}
}
