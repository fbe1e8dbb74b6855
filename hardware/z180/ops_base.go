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

import "github.com/zedemu/zed180/hardware/z180/registers"

// opcode pairs the base cycle cost of an instruction with its
// implementation. Conditional costs and wait states accumulate in the
// extraCycles field during execution. The cost in a prefix family table is
// the full cost of the instruction including the prefix fetch.
type opcode struct {
	cycles int
	do     func(*Z180)
}

// the six instruction tables. the prefix entries of opBase dispatch into
// the other five
var (
	opBase  [256]opcode
	opCB    [256]opcode
	opED    [256]opcode
	opIndex [256]opcode
	opXYCB  [256]opcode
)

func init() {
	buildBaseTable()
	buildCBTable()
	buildEDTable()
	buildIndexTable()
	buildXYCBTable()
}

// getr reads the 8 bit register encoded in an opcode's register field.
// Code 6 is the memory slot and is handled by each instruction
// individually.
func (z *Z180) getr(code int) uint8 {
	switch code {
	case 0:
		return z.Reg.BC.Hi()
	case 1:
		return z.Reg.BC.Lo()
	case 2:
		return z.Reg.DE.Hi()
	case 3:
		return z.Reg.DE.Lo()
	case 4:
		return z.Reg.HL.Hi()
	case 5:
		return z.Reg.HL.Lo()
	case 7:
		return z.Reg.AF.Hi()
	}
	return 0
}

func (z *Z180) setr(code int, v uint8) {
	switch code {
	case 0:
		z.Reg.BC.SetHi(v)
	case 1:
		z.Reg.BC.SetLo(v)
	case 2:
		z.Reg.DE.SetHi(v)
	case 3:
		z.Reg.DE.SetLo(v)
	case 4:
		z.Reg.HL.SetHi(v)
	case 5:
		z.Reg.HL.SetLo(v)
	case 7:
		z.Reg.AF.SetHi(v)
	}
}

// pair returns the 16 bit register pair encoded in an opcode's pair field,
// with SP in the fourth slot.
func (z *Z180) pair(code int) *registers.Pair {
	switch code {
	case 0:
		return &z.Reg.BC
	case 1:
		return &z.Reg.DE
	case 2:
		return &z.Reg.HL
	}
	return &z.Reg.SP
}

// pairAF is the pair decode used by PUSH and POP, with AF in the fourth
// slot.
func (z *Z180) pairAF(code int) *registers.Pair {
	if code == 3 {
		return &z.Reg.AF
	}
	return z.pair(code)
}

// cond evaluates the condition encoded in an opcode's condition field.
func (z *Z180) cond(code int) bool {
	switch code {
	case 0:
		return z.f()&FlagZ == 0
	case 1:
		return z.f()&FlagZ != 0
	case 2:
		return z.f()&FlagC == 0
	case 3:
		return z.f()&FlagC != 0
	case 4:
		return z.f()&FlagP == 0
	case 5:
		return z.f()&FlagP != 0
	case 6:
		return z.f()&FlagS == 0
	}
	return z.f()&FlagS != 0
}

// aluOp dispatches on the operation encoded in an opcode's ALU field.
func (z *Z180) aluOp(code int, v uint8) {
	switch code {
	case 0:
		z.addA(v)
	case 1:
		z.adcA(v)
	case 2:
		z.subA(v)
	case 3:
		z.sbcA(v)
	case 4:
		z.andA(v)
	case 5:
		z.xorA(v)
	case 6:
		z.orA(v)
	case 7:
		z.cpA(v)
	}
}

// jr applies a relative jump displacement to PC.
func (z *Z180) jr(d int8) {
	z.Reg.PC.Load(uint16(int32(z.Reg.PC.Value()) + int32(d)))
}

func buildBaseTable() {
	// the 8 bit load group
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			if dst == 6 && src == 6 {
				continue // 0x76 is HALT
			}

			code := 0x40 | dst<<3 | src
			switch {
			case dst == 6:
				src := src
				opBase[code] = opcode{7, func(z *Z180) { z.wm(z.Reg.HL.Value(), z.getr(src)) }}
			case src == 6:
				dst := dst
				opBase[code] = opcode{6, func(z *Z180) { z.setr(dst, z.rm(z.Reg.HL.Value())) }}
			default:
				dst := dst
				src := src
				opBase[code] = opcode{4, func(z *Z180) { z.setr(dst, z.getr(src)) }}
			}
		}
	}

	// the 8 bit arithmetic group
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			code := 0x80 | op<<3 | src
			if src == 6 {
				op := op
				opBase[code] = opcode{6, func(z *Z180) { z.aluOp(op, z.rm(z.Reg.HL.Value())) }}
			} else {
				op := op
				src := src
				opBase[code] = opcode{4, func(z *Z180) { z.aluOp(op, z.getr(src)) }}
			}
		}
	}
	for op := 0; op < 8; op++ {
		op := op
		opBase[0xc6|op<<3] = opcode{6, func(z *Z180) { z.aluOp(op, z.arg()) }}
	}

	// increment, decrement and immediate load
	for r := 0; r < 8; r++ {
		if r == 6 {
			opBase[0x34] = opcode{10, func(z *Z180) {
				addr := z.Reg.HL.Value()
				z.wm(addr, z.inc8(z.rm(addr)))
			}}
			opBase[0x35] = opcode{10, func(z *Z180) {
				addr := z.Reg.HL.Value()
				z.wm(addr, z.dec8(z.rm(addr)))
			}}
			opBase[0x36] = opcode{9, func(z *Z180) { z.wm(z.Reg.HL.Value(), z.arg()) }}
			continue
		}

		r := r
		opBase[0x04|r<<3] = opcode{4, func(z *Z180) { z.setr(r, z.inc8(z.getr(r))) }}
		opBase[0x05|r<<3] = opcode{4, func(z *Z180) { z.setr(r, z.dec8(z.getr(r))) }}
		opBase[0x06|r<<3] = opcode{6, func(z *Z180) { z.setr(r, z.arg()) }}
	}

	// the 16 bit group
	for p := 0; p < 4; p++ {
		p := p
		opBase[0x01|p<<4] = opcode{9, func(z *Z180) { z.pair(p).Load(z.arg16()) }}
		opBase[0x03|p<<4] = opcode{4, func(z *Z180) { z.pair(p).Inc() }}
		opBase[0x09|p<<4] = opcode{7, func(z *Z180) { z.add16(&z.Reg.HL, z.pair(p).Value()) }}
		opBase[0x0b|p<<4] = opcode{4, func(z *Z180) { z.pair(p).Dec() }}
		opBase[0xc1|p<<4] = opcode{9, func(z *Z180) { z.pairAF(p).Load(z.pop()) }}
		opBase[0xc5|p<<4] = opcode{11, func(z *Z180) { z.push(z.pairAF(p).Value()) }}
	}

	// conditional flow
	for c := 0; c < 8; c++ {
		c := c
		opBase[0xc0|c<<3] = opcode{5, func(z *Z180) {
			if z.cond(c) {
				z.Reg.PC.Load(z.pop())
				z.extraCycles += 5
			}
		}}
		opBase[0xc2|c<<3] = opcode{6, func(z *Z180) {
			nn := z.arg16()
			if z.cond(c) {
				z.Reg.PC.Load(nn)
				z.extraCycles += 3
			}
		}}
		opBase[0xc4|c<<3] = opcode{6, func(z *Z180) {
			nn := z.arg16()
			if z.cond(c) {
				z.push(z.Reg.PC.Value())
				z.Reg.PC.Load(nn)
				z.extraCycles += 10
			}
		}}
		opBase[0xc7|c<<3] = opcode{11, func(z *Z180) {
			z.push(z.Reg.PC.Value())
			z.Reg.PC.Load(uint16(c << 3))
		}}
	}
	for c := 0; c < 4; c++ {
		c := c
		opBase[0x20|c<<3] = opcode{6, func(z *Z180) {
			d := int8(z.arg())
			if z.cond(c) {
				z.jr(d)
				z.extraCycles += 2
			}
		}}
	}

	opBase[0x00] = opcode{3, func(z *Z180) {}}
	opBase[0x02] = opcode{7, func(z *Z180) { z.wm(z.Reg.BC.Value(), z.a()) }}
	opBase[0x07] = opcode{3, (*Z180).rlca}
	opBase[0x08] = opcode{4, func(z *Z180) { z.Reg.ExchangeAF() }}
	opBase[0x0a] = opcode{6, func(z *Z180) { z.setA(z.rm(z.Reg.BC.Value())) }}
	opBase[0x0f] = opcode{3, (*Z180).rrca}

	opBase[0x10] = opcode{7, func(z *Z180) {
		d := int8(z.arg())
		b := z.Reg.BC.Hi() - 1
		z.Reg.BC.SetHi(b)
		if b != 0 {
			z.jr(d)
			z.extraCycles += 2
		}
	}}
	opBase[0x12] = opcode{7, func(z *Z180) { z.wm(z.Reg.DE.Value(), z.a()) }}
	opBase[0x17] = opcode{3, (*Z180).rla}
	opBase[0x18] = opcode{8, func(z *Z180) { z.jr(int8(z.arg())) }}
	opBase[0x1a] = opcode{6, func(z *Z180) { z.setA(z.rm(z.Reg.DE.Value())) }}
	opBase[0x1f] = opcode{3, (*Z180).rra}

	opBase[0x22] = opcode{16, func(z *Z180) { z.wm16(z.arg16(), z.Reg.HL.Value()) }}
	opBase[0x27] = opcode{4, (*Z180).daa}
	opBase[0x2a] = opcode{15, func(z *Z180) { z.Reg.HL.Load(z.rm16(z.arg16())) }}
	opBase[0x2f] = opcode{3, func(z *Z180) {
		z.setA(^z.a())
		z.setF((z.f() & (FlagS | FlagZ | FlagP | FlagC)) | FlagH | FlagN | (z.a() & (FlagY | FlagX)))
	}}

	opBase[0x32] = opcode{13, func(z *Z180) { z.wm(z.arg16(), z.a()) }}
	opBase[0x37] = opcode{3, func(z *Z180) {
		z.setF((z.f() & (FlagS | FlagZ | FlagP)) | FlagC | (z.a() & (FlagY | FlagX)))
	}}
	opBase[0x3a] = opcode{12, func(z *Z180) { z.setA(z.rm(z.arg16())) }}
	opBase[0x3f] = opcode{3, func(z *Z180) {
		z.setF(((z.f() & (FlagS | FlagZ | FlagP | FlagC)) | (z.f()&FlagC)<<4 | (z.a() & (FlagY | FlagX))) ^ FlagC)
	}}

	opBase[0x76] = opcode{3, (*Z180).enterHalt}

	opBase[0xc3] = opcode{9, func(z *Z180) { z.Reg.PC.Load(z.arg16()) }}
	opBase[0xc9] = opcode{9, func(z *Z180) { z.Reg.PC.Load(z.pop()) }}
	opBase[0xcb] = opcode{0, (*Z180).dispatchCB}

	opBase[0xd3] = opcode{10, func(z *Z180) {
		port := uint16(z.arg()) | uint16(z.a())<<8
		z.out(port, z.a())
	}}
	opBase[0xd9] = opcode{3, func(z *Z180) { z.Reg.Exchange() }}
	opBase[0xdb] = opcode{9, func(z *Z180) {
		port := uint16(z.arg()) | uint16(z.a())<<8
		z.setA(z.in(port))
	}}
	opBase[0xdd] = opcode{0, func(z *Z180) { z.dispatchIndex(false) }}

	opBase[0xe3] = opcode{16, func(z *Z180) {
		sp := z.Reg.SP.Value()
		tmp := z.rm16(sp)
		z.wm16(sp, z.Reg.HL.Value())
		z.Reg.HL.Load(tmp)
	}}
	opBase[0xe9] = opcode{3, func(z *Z180) { z.Reg.PC.Load(z.Reg.HL.Value()) }}
	opBase[0xeb] = opcode{3, func(z *Z180) {
		de := z.Reg.DE.Value()
		z.Reg.DE.Load(z.Reg.HL.Value())
		z.Reg.HL.Load(de)
	}}
	opBase[0xed] = opcode{0, (*Z180).dispatchED}

	opBase[0xf3] = opcode{3, func(z *Z180) {
		z.Reg.IFF1 = false
		z.Reg.IFF2 = false
	}}
	opBase[0xf9] = opcode{4, func(z *Z180) { z.Reg.SP.Load(z.Reg.HL.Value()) }}
	opBase[0xfb] = opcode{3, func(z *Z180) {
		z.Reg.IFF1 = true
		z.Reg.IFF2 = true
		z.afterEI = true
	}}
	opBase[0xfd] = opcode{0, func(z *Z180) { z.dispatchIndex(true) }}
}
