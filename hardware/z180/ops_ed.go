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

// dispatchED fetches and executes the second byte of an extended
// instruction. Undefined extended instructions raise the trap.
func (z *Z180) dispatchED() {
	code := z.rop()
	op := opED[code]
	op.do(z)
	z.extraCycles += op.cycles
}

// repeat rewinds PC to the start of a block instruction and charges the
// continuation cost.
func (z *Z180) repeat() {
	z.Reg.PC.Dec()
	z.Reg.PC.Dec()
	z.extraCycles += 2
}

func (z *Z180) ldi() {
	v := z.rm(z.Reg.HL.Value())
	z.wm(z.Reg.DE.Value(), v)
	z.Reg.HL.Inc()
	z.Reg.DE.Inc()
	z.Reg.BC.Dec()

	f := z.f() & (FlagS | FlagZ | FlagC)
	if (z.a()+v)&0x02 != 0 {
		f |= FlagY
	}
	if (z.a()+v)&0x08 != 0 {
		f |= FlagX
	}
	if z.Reg.BC.Value() != 0 {
		f |= FlagP
	}
	z.setF(f)
}

func (z *Z180) ldd() {
	v := z.rm(z.Reg.HL.Value())
	z.wm(z.Reg.DE.Value(), v)
	z.Reg.HL.Dec()
	z.Reg.DE.Dec()
	z.Reg.BC.Dec()

	f := z.f() & (FlagS | FlagZ | FlagC)
	if (z.a()+v)&0x02 != 0 {
		f |= FlagY
	}
	if (z.a()+v)&0x08 != 0 {
		f |= FlagX
	}
	if z.Reg.BC.Value() != 0 {
		f |= FlagP
	}
	z.setF(f)
}

func (z *Z180) cpi() {
	v := z.rm(z.Reg.HL.Value())
	res := z.a() - v
	z.Reg.HL.Inc()
	z.Reg.BC.Dec()

	f := (z.f() & FlagC) | (tabSZ[res] &^ (FlagY | FlagX)) | ((z.a() ^ v ^ res) & FlagH) | FlagN
	if f&FlagH != 0 {
		res--
	}
	if res&0x02 != 0 {
		f |= FlagY
	}
	if res&0x08 != 0 {
		f |= FlagX
	}
	if z.Reg.BC.Value() != 0 {
		f |= FlagP
	}
	z.setF(f)
}

func (z *Z180) cpd() {
	v := z.rm(z.Reg.HL.Value())
	res := z.a() - v
	z.Reg.HL.Dec()
	z.Reg.BC.Dec()

	f := (z.f() & FlagC) | (tabSZ[res] &^ (FlagY | FlagX)) | ((z.a() ^ v ^ res) & FlagH) | FlagN
	if f&FlagH != 0 {
		res--
	}
	if res&0x02 != 0 {
		f |= FlagY
	}
	if res&0x08 != 0 {
		f |= FlagX
	}
	if z.Reg.BC.Value() != 0 {
		f |= FlagP
	}
	z.setF(f)
}

func (z *Z180) ini() {
	v := z.in(z.Reg.BC.Value())
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.wm(z.Reg.HL.Value(), v)
	z.Reg.HL.Inc()

	f := tabSZ[z.Reg.BC.Hi()]
	if v&0x80 != 0 {
		f |= FlagN
	}
	t := uint16(z.Reg.BC.Lo()+1) + uint16(v)
	if t&0x100 != 0 {
		f |= FlagH | FlagC
	}
	z.setF((f &^ FlagP) | (tabSZP[uint8(t&0x07)^z.Reg.BC.Hi()] & FlagP))
}

func (z *Z180) ind() {
	v := z.in(z.Reg.BC.Value())
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.wm(z.Reg.HL.Value(), v)
	z.Reg.HL.Dec()

	f := tabSZ[z.Reg.BC.Hi()]
	if v&0x80 != 0 {
		f |= FlagN
	}
	t := uint16(z.Reg.BC.Lo()-1) + uint16(v)
	if t&0x100 != 0 {
		f |= FlagH | FlagC
	}
	z.setF((f &^ FlagP) | (tabSZP[uint8(t&0x07)^z.Reg.BC.Hi()] & FlagP))
}

func (z *Z180) outi() {
	v := z.rm(z.Reg.HL.Value())
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.out(z.Reg.BC.Value(), v)
	z.Reg.HL.Inc()

	f := tabSZ[z.Reg.BC.Hi()]
	if v&0x80 != 0 {
		f |= FlagN
	}
	t := uint16(z.Reg.HL.Lo()) + uint16(v)
	if t&0x100 != 0 {
		f |= FlagH | FlagC
	}
	z.setF((f &^ FlagP) | (tabSZP[uint8(t&0x07)^z.Reg.BC.Hi()] & FlagP))
}

func (z *Z180) outd() {
	v := z.rm(z.Reg.HL.Value())
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.out(z.Reg.BC.Value(), v)
	z.Reg.HL.Dec()

	f := tabSZ[z.Reg.BC.Hi()]
	if v&0x80 != 0 {
		f |= FlagN
	}
	t := uint16(z.Reg.HL.Lo()) + uint16(v)
	if t&0x100 != 0 {
		f |= FlagH | FlagC
	}
	z.setF((f &^ FlagP) | (tabSZP[uint8(t&0x07)^z.Reg.BC.Hi()] & FlagP))
}

// otim and otdm address the internal port file through C alone, with the
// upper address byte zero. C walks the port file while HL walks memory.
func (z *Z180) otim() {
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.out(uint16(z.Reg.BC.Lo()), z.rm(z.Reg.HL.Value()))
	z.Reg.HL.Inc()
	z.Reg.BC.SetLo(z.Reg.BC.Lo() + 1)

	f := uint8(FlagN)
	if z.Reg.BC.Hi() == 0 {
		f |= FlagZ
	}
	z.setF(f)
}

func (z *Z180) otdm() {
	z.Reg.BC.SetHi(z.Reg.BC.Hi() - 1)
	z.out(uint16(z.Reg.BC.Lo()), z.rm(z.Reg.HL.Value()))
	z.Reg.HL.Dec()
	z.Reg.BC.SetLo(z.Reg.BC.Lo() - 1)

	f := uint8(FlagN)
	if z.Reg.BC.Hi() == 0 {
		f |= FlagZ
	}
	z.setF(f)
}

func buildEDTable() {
	for i := range opED {
		opED[i] = opcode{6, (*Z180).trap}
	}

	// input, output and test through a port named in the instruction
	// stream. the upper address byte is zero
	for r := 0; r < 8; r++ {
		r := r
		if r == 6 {
			opED[0x30] = opcode{12, func(z *Z180) {
				v := z.in(uint16(z.arg()))
				z.setF((z.f() & FlagC) | tabSZP[v])
			}}
			opED[0x34] = opcode{10, func(z *Z180) { z.tst(z.rm(z.Reg.HL.Value())) }}
			continue
		}
		opED[r<<3] = opcode{12, func(z *Z180) {
			v := z.in(uint16(z.arg()))
			z.setr(r, v)
			z.setF((z.f() & FlagC) | tabSZP[v])
		}}
		opED[0x01|r<<3] = opcode{13, func(z *Z180) { z.out(uint16(z.arg()), z.getr(r)) }}
		opED[0x04|r<<3] = opcode{7, func(z *Z180) { z.tst(z.getr(r)) }}
	}

	// input and output through the port in BC
	for r := 0; r < 8; r++ {
		r := r
		if r == 6 {
			opED[0x70] = opcode{9, func(z *Z180) {
				v := z.in(z.Reg.BC.Value())
				z.setF((z.f() & FlagC) | tabSZP[v])
			}}
			opED[0x71] = opcode{10, func(z *Z180) { z.out(z.Reg.BC.Value(), 0) }}
			continue
		}
		opED[0x40|r<<3] = opcode{9, func(z *Z180) {
			v := z.in(z.Reg.BC.Value())
			z.setr(r, v)
			z.setF((z.f() & FlagC) | tabSZP[v])
		}}
		opED[0x41|r<<3] = opcode{10, func(z *Z180) { z.out(z.Reg.BC.Value(), z.getr(r)) }}
	}

	// the 16 bit group
	for p := 0; p < 4; p++ {
		p := p
		opED[0x42|p<<4] = opcode{10, func(z *Z180) { z.sbcHL(z.pair(p).Value()) }}
		opED[0x43|p<<4] = opcode{19, func(z *Z180) { z.wm16(z.arg16(), z.pair(p).Value()) }}
		opED[0x4a|p<<4] = opcode{10, func(z *Z180) { z.adcHL(z.pair(p).Value()) }}
		opED[0x4b|p<<4] = opcode{18, func(z *Z180) { z.pair(p).Load(z.rm16(z.arg16())) }}
		opED[0x4c|p<<4] = opcode{17, func(z *Z180) { z.mlt(z.pair(p)) }}
	}

	retn := func(z *Z180) {
		z.Reg.PC.Load(z.pop())
		z.Reg.IFF1 = z.Reg.IFF2
	}
	opED[0x45] = opcode{12, retn}
	opED[0x4d] = opcode{12, retn}

	opED[0x44] = opcode{6, (*Z180).neg}
	opED[0x46] = opcode{6, func(z *Z180) { z.Reg.IM = 0 }}
	opED[0x47] = opcode{6, func(z *Z180) { z.Reg.I = z.a() }}
	opED[0x4f] = opcode{6, func(z *Z180) {
		z.Reg.R = z.a()
		z.Reg.R2 = z.a()
	}}
	opED[0x56] = opcode{6, func(z *Z180) { z.Reg.IM = 1 }}
	opED[0x57] = opcode{6, func(z *Z180) {
		z.setA(z.Reg.I)
		f := (z.f() & FlagC) | tabSZ[z.a()]
		if z.Reg.IFF2 {
			f |= FlagP
		}
		z.setF(f)
	}}
	opED[0x5e] = opcode{6, func(z *Z180) { z.Reg.IM = 2 }}
	opED[0x5f] = opcode{6, func(z *Z180) {
		z.setA(z.Reg.Refresh())
		f := (z.f() & FlagC) | tabSZ[z.a()]
		if z.Reg.IFF2 {
			f |= FlagP
		}
		z.setF(f)
	}}

	opED[0x64] = opcode{9, func(z *Z180) { z.tst(z.arg()) }}
	opED[0x67] = opcode{16, (*Z180).rrd}
	opED[0x6f] = opcode{16, (*Z180).rld}
	opED[0x74] = opcode{12, func(z *Z180) {
		n := z.arg()
		z.setF(tabSZP[z.in(uint16(z.Reg.BC.Lo()))&n] | FlagH)
	}}
	opED[0x76] = opcode{8, (*Z180).enterSleep}

	opED[0x83] = opcode{14, (*Z180).otim}
	opED[0x8b] = opcode{14, (*Z180).otdm}
	opED[0x93] = opcode{14, func(z *Z180) {
		z.otim()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}
	opED[0x9b] = opcode{14, func(z *Z180) {
		z.otdm()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}

	// the block transfer group
	opED[0xa0] = opcode{12, (*Z180).ldi}
	opED[0xa1] = opcode{12, (*Z180).cpi}
	opED[0xa2] = opcode{12, (*Z180).ini}
	opED[0xa3] = opcode{12, (*Z180).outi}
	opED[0xa8] = opcode{12, (*Z180).ldd}
	opED[0xa9] = opcode{12, (*Z180).cpd}
	opED[0xaa] = opcode{12, (*Z180).ind}
	opED[0xab] = opcode{12, (*Z180).outd}
	opED[0xb0] = opcode{12, func(z *Z180) {
		z.ldi()
		if z.Reg.BC.Value() != 0 {
			z.repeat()
		}
	}}
	opED[0xb1] = opcode{12, func(z *Z180) {
		z.cpi()
		if z.Reg.BC.Value() != 0 && z.f()&FlagZ == 0 {
			z.repeat()
		}
	}}
	opED[0xb2] = opcode{12, func(z *Z180) {
		z.ini()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}
	opED[0xb3] = opcode{12, func(z *Z180) {
		z.outi()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}
	opED[0xb8] = opcode{12, func(z *Z180) {
		z.ldd()
		if z.Reg.BC.Value() != 0 {
			z.repeat()
		}
	}}
	opED[0xb9] = opcode{12, func(z *Z180) {
		z.cpd()
		if z.Reg.BC.Value() != 0 && z.f()&FlagZ == 0 {
			z.repeat()
		}
	}}
	opED[0xba] = opcode{12, func(z *Z180) {
		z.ind()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}
	opED[0xbb] = opcode{12, func(z *Z180) {
		z.outd()
		if z.Reg.BC.Hi() != 0 {
			z.repeat()
		}
	}}
}
