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

func (z *Z180) a() uint8 {
	return z.Reg.AF.Hi()
}

func (z *Z180) f() uint8 {
	return z.Reg.AF.Lo()
}

func (z *Z180) setA(v uint8) {
	z.Reg.AF.SetHi(v)
}

func (z *Z180) setF(v uint8) {
	z.Reg.AF.SetLo(v)
}

func (z *Z180) addA(v uint8) {
	a := z.a()
	r := a + v
	z.setF(szhvcAdd[uint32(a)<<8|uint32(r)])
	z.setA(r)
}

func (z *Z180) adcA(v uint8) {
	a := z.a()
	c := uint32(z.f() & FlagC)
	r := a + v + uint8(c)
	z.setF(szhvcAdd[c<<16|uint32(a)<<8|uint32(r)])
	z.setA(r)
}

func (z *Z180) subA(v uint8) {
	a := z.a()
	r := a - v
	z.setF(szhvcSub[uint32(a)<<8|uint32(r)])
	z.setA(r)
}

func (z *Z180) sbcA(v uint8) {
	a := z.a()
	c := uint32(z.f() & FlagC)
	r := a - v - uint8(c)
	z.setF(szhvcSub[c<<16|uint32(a)<<8|uint32(r)])
	z.setA(r)
}

func (z *Z180) cpA(v uint8) {
	a := z.a()
	r := a - v

	// the undocumented bits come from the operand, not the result
	z.setF((szhvcSub[uint32(a)<<8|uint32(r)] &^ (FlagY | FlagX)) | (v & (FlagY | FlagX)))
}

func (z *Z180) andA(v uint8) {
	r := z.a() & v
	z.setA(r)
	z.setF(tabSZP[r] | FlagH)
}

func (z *Z180) orA(v uint8) {
	r := z.a() | v
	z.setA(r)
	z.setF(tabSZP[r])
}

func (z *Z180) xorA(v uint8) {
	r := z.a() ^ v
	z.setA(r)
	z.setF(tabSZP[r])
}

// inc8 and dec8 preserve the carry flag.

func (z *Z180) inc8(v uint8) uint8 {
	v++
	z.setF((z.f() & FlagC) | tabInc[v])
	return v
}

func (z *Z180) dec8(v uint8) uint8 {
	v--
	z.setF((z.f() & FlagC) | tabDec[v])
	return v
}

// add16 sets only the carry related flags. The sign, zero and parity flags
// are untouched.
func (z *Z180) add16(dst *registers.Pair, v uint16) {
	d := uint32(dst.Value())
	r := d + uint32(v)

	z.setF((z.f() & (FlagS | FlagZ | FlagP)) |
		uint8(((d^r^uint32(v))>>8)&FlagH) |
		uint8((r>>16)&FlagC) |
		uint8((r>>8)&(FlagY|FlagX)))
	dst.Load(uint16(r))
}

func (z *Z180) adcHL(v uint16) {
	hl := uint32(z.Reg.HL.Value())
	r := hl + uint32(v) + uint32(z.f()&FlagC)

	f := uint8(((hl^r^uint32(v))>>8)&FlagH) |
		uint8((r>>16)&FlagC) |
		uint8((r>>8)&(FlagS|FlagY|FlagX)) |
		uint8(((uint32(v)^hl^0x8000)&(uint32(v)^r)&0x8000)>>13)
	if r&0xffff == 0 {
		f |= FlagZ
	}
	z.setF(f)
	z.Reg.HL.Load(uint16(r))
}

func (z *Z180) sbcHL(v uint16) {
	hl := uint32(z.Reg.HL.Value())
	r := hl - uint32(v) - uint32(z.f()&FlagC)

	f := uint8(((hl^r^uint32(v))>>8)&FlagH) | FlagN |
		uint8((r>>16)&FlagC) |
		uint8((r>>8)&(FlagS|FlagY|FlagX)) |
		uint8(((uint32(v)^hl)&(hl^r)&0x8000)>>13)
	if r&0xffff == 0 {
		f |= FlagZ
	}
	z.setF(f)
	z.Reg.HL.Load(uint16(r))
}

// accumulator rotates. only the carry and undocumented flags change.

func (z *Z180) rlca() {
	a := z.a()
	a = a<<1 | a>>7
	z.setA(a)
	z.setF((z.f() & (FlagS | FlagZ | FlagP)) | (a & (FlagY | FlagX | FlagC)))
}

func (z *Z180) rrca() {
	a := z.a()
	f := (z.f() & (FlagS | FlagZ | FlagP)) | (a & FlagC)
	a = a>>1 | a<<7
	z.setA(a)
	z.setF(f | (a & (FlagY | FlagX)))
}

func (z *Z180) rla() {
	a := z.a()
	r := a<<1 | z.f()&FlagC

	c := uint8(0)
	if a&0x80 != 0 {
		c = FlagC
	}
	z.setF((z.f() & (FlagS | FlagZ | FlagP)) | c | (r & (FlagY | FlagX)))
	z.setA(r)
}

func (z *Z180) rra() {
	a := z.a()
	r := a>>1 | (z.f()&FlagC)<<7

	c := uint8(0)
	if a&0x01 != 0 {
		c = FlagC
	}
	z.setF((z.f() & (FlagS | FlagZ | FlagP)) | c | (r & (FlagY | FlagX)))
	z.setA(r)
}

// the full rotate and shift group used by the cb prefix family.

func (z *Z180) rlc(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | c
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) rrc(v uint8) uint8 {
	c := v & FlagC
	v = v>>1 | c<<7
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) rl(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | z.f()&FlagC
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) rr(v uint8) uint8 {
	c := v & FlagC
	v = v>>1 | (z.f()&FlagC)<<7
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) sla(v uint8) uint8 {
	c := v >> 7
	v <<= 1
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) sra(v uint8) uint8 {
	c := v & FlagC
	v = v>>1 | v&0x80
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) sll(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | 0x01
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) srl(v uint8) uint8 {
	c := v & FlagC
	v >>= 1
	z.setF(tabSZP[v] | c)
	return v
}

func (z *Z180) bit(b int, v uint8) {
	z.setF((z.f() & FlagC) | FlagH | tabSZBit[v&(1<<b)])
}

func (z *Z180) daa() {
	a := z.a()
	f := z.f()
	r := a

	if f&FlagN != 0 {
		if f&FlagH != 0 || a&0x0f > 9 {
			r -= 6
		}
		if f&FlagC != 0 || a > 0x99 {
			r -= 0x60
		}
	} else {
		if f&FlagH != 0 || a&0x0f > 9 {
			r += 6
		}
		if f&FlagC != 0 || a > 0x99 {
			r += 0x60
		}
	}

	nf := f & (FlagC | FlagN)
	if a > 0x99 {
		nf |= FlagC
	}
	nf |= (a ^ r) & FlagH
	nf |= tabSZP[r]
	z.setF(nf)
	z.setA(r)
}

func (z *Z180) neg() {
	v := z.a()
	z.setA(0)
	z.subA(v)
}

func (z *Z180) rrd() {
	addr := z.Reg.HL.Value()
	v := z.rm(addr)
	a := z.a()

	z.wm(addr, v>>4|a<<4)
	a = a&0xf0 | v&0x0f
	z.setA(a)
	z.setF((z.f() & FlagC) | tabSZP[a])
}

func (z *Z180) rld() {
	addr := z.Reg.HL.Value()
	v := z.rm(addr)
	a := z.a()

	z.wm(addr, v<<4|a&0x0f)
	a = a&0xf0 | v>>4
	z.setA(a)
	z.setF((z.f() & FlagC) | tabSZP[a])
}

// tst is the non-destructive AND against the accumulator.
func (z *Z180) tst(v uint8) {
	z.setF(tabSZP[z.a()&v] | FlagH)
}

// mlt replaces a register pair with the product of its two halves.
func (z *Z180) mlt(p *registers.Pair) {
	p.Load(uint16(p.Hi()) * uint16(p.Lo()))
}
