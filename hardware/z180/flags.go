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

// Flag bits in the F register.
const (
	FlagC = 0x01 // carry
	FlagN = 0x02 // subtract
	FlagP = 0x04 // parity/overflow
	FlagX = 0x08 // undocumented. copy of result bit 3
	FlagH = 0x10 // half carry
	FlagY = 0x20 // undocumented. copy of result bit 5
	FlagZ = 0x40 // zero
	FlagS = 0x80 // sign
)

// flag lookup tables. built once by buildFlagTables() and never mutated.
//
// the szhvcAdd and szhvcSub tables cover every (operand, result) byte pair
// with and without an incoming carry: index is carry<<16 | operand<<8 |
// result. the executor computes the result byte first and uses the pair to
// recover all flags in one lookup.
var (
	tabSZ    [256]uint8
	tabSZBit [256]uint8
	tabSZP   [256]uint8
	tabInc   [256]uint8
	tabDec   [256]uint8

	szhvcAdd [2 * 256 * 256]uint8
	szhvcSub [2 * 256 * 256]uint8
)

func init() {
	buildFlagTables()
}

func buildFlagTables() {
	for oldval := 0; oldval < 256; oldval++ {
		for newval := 0; newval < 256; newval++ {
			// add or adc without carry set
			val := newval - oldval
			f := uint8(0)
			if newval == 0 {
				f = FlagZ
			} else {
				f = uint8(newval) & FlagS
			}
			f |= uint8(newval) & (FlagY | FlagX)
			if (newval & 0x0f) < (oldval & 0x0f) {
				f |= FlagH
			}
			if newval < oldval {
				f |= FlagC
			}
			if (val^oldval^0x80)&(val^newval)&0x80 != 0 {
				f |= FlagP
			}
			szhvcAdd[(oldval<<8)|newval] = f

			// adc with carry set
			val = newval - oldval - 1
			f = 0
			if newval == 0 {
				f = FlagZ
			} else {
				f = uint8(newval) & FlagS
			}
			f |= uint8(newval) & (FlagY | FlagX)
			if (newval & 0x0f) <= (oldval & 0x0f) {
				f |= FlagH
			}
			if newval <= oldval {
				f |= FlagC
			}
			if (val^oldval^0x80)&(val^newval)&0x80 != 0 {
				f |= FlagP
			}
			szhvcAdd[(1<<16)|(oldval<<8)|newval] = f

			// sub or sbc without carry set
			val = oldval - newval
			f = FlagN
			if newval == 0 {
				f |= FlagZ
			} else {
				f |= uint8(newval) & FlagS
			}
			f |= uint8(newval) & (FlagY | FlagX)
			if (newval & 0x0f) > (oldval & 0x0f) {
				f |= FlagH
			}
			if newval > oldval {
				f |= FlagC
			}
			if (val^oldval)&(oldval^newval)&0x80 != 0 {
				f |= FlagP
			}
			szhvcSub[(oldval<<8)|newval] = f

			// sbc with carry set
			val = oldval - newval - 1
			f = FlagN
			if newval == 0 {
				f |= FlagZ
			} else {
				f |= uint8(newval) & FlagS
			}
			f |= uint8(newval) & (FlagY | FlagX)
			if (newval & 0x0f) >= (oldval & 0x0f) {
				f |= FlagH
			}
			if newval >= oldval {
				f |= FlagC
			}
			if (val^oldval)&(oldval^newval)&0x80 != 0 {
				f |= FlagP
			}
			szhvcSub[(1<<16)|(oldval<<8)|newval] = f
		}
	}

	for i := 0; i < 256; i++ {
		var p uint8
		if i&0x01 != 0 {
			p++
		}
		if i&0x02 != 0 {
			p++
		}
		if i&0x04 != 0 {
			p++
		}
		if i&0x08 != 0 {
			p++
		}
		if i&0x10 != 0 {
			p++
		}
		if i&0x20 != 0 {
			p++
		}
		if i&0x40 != 0 {
			p++
		}
		if i&0x80 != 0 {
			p++
		}

		if i == 0 {
			tabSZ[i] = FlagZ
		} else {
			tabSZ[i] = uint8(i) & FlagS
		}
		tabSZ[i] |= uint8(i) & (FlagY | FlagX)

		tabSZBit[i] = tabSZ[i]
		if i == 0 {
			tabSZBit[i] |= FlagP
		}

		tabSZP[i] = tabSZ[i]
		if p&1 == 0 {
			tabSZP[i] |= FlagP
		}

		tabInc[i] = tabSZ[i]
		if i == 0x80 {
			tabInc[i] |= FlagP
		}
		if i&0x0f == 0x00 {
			tabInc[i] |= FlagH
		}

		tabDec[i] = tabSZ[i] | FlagN
		if i == 0x7f {
			tabDec[i] |= FlagP
		}
		if i&0x0f == 0x0f {
			tabDec[i] |= FlagH
		}
	}
}
