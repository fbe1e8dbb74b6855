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
	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/logger"
)

// TEND returns the transfer-end state for a DMA channel. The state is true
// while the channel's final transfer is in flight.
func (z *Z180) TEND(ch int) bool {
	if ch < 0 || ch > 1 {
		return false
	}
	return z.tend[ch]
}

// dma0 runs channel 0. In burst mode transfers continue until terminal
// count or until the cycle budget is exhausted, otherwise a single
// transfer is performed. DMA addresses are physical and bypass the MMU.
func (z *Z180) dma0(maxCycles int) int {
	if z.dstat&dstatDE0 == 0 {
		return 0
	}

	sar0 := z.sar0
	dar0 := z.dar0
	bcr0 := int(z.bcr0)
	if bcr0 == 0 {
		bcr0 = 0x10000
	}

	count := 1
	if z.dmode&dmodeMMOD != 0 {
		count = bcr0
	}

	cycles := 0
	for count > 0 {
		z.extraCycles = 0

		// last transfer happening now?
		if bcr0 == 1 {
			z.tend[0] = true
		}

		switch z.dmode & (dmodeDM1 | dmodeDM0 | dmodeSM1 | dmodeSM0) {
		case 0x00: // memory SAR0+1 to memory DAR0+1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0++
			dar0++
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x04: // memory SAR0-1 to memory DAR0+1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0--
			dar0++
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x08: // memory SAR0 fixed to memory DAR0+1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			dar0++
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x0c: // I/O SAR0 fixed to memory DAR0+1
			if z.lines[bus.DREQ0] {
				z.mem.WriteByte(dar0&0xfffff, z.in(uint16(sar0)))
				dar0++
				cycles += z.memoryWaitStates()
				bcr0--
				if z.dcntl&dcntlDMS0 != 0 {
					// edge sensitive request. consume it
					z.lines[bus.DREQ0] = false
					count = 0
				}
			}

		case 0x10: // memory SAR0+1 to memory DAR0-1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0++
			dar0--
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x14: // memory SAR0-1 to memory DAR0-1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0--
			dar0--
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x18: // memory SAR0 fixed to memory DAR0-1
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			dar0--
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x1c: // I/O SAR0 fixed to memory DAR0-1
			if z.lines[bus.DREQ0] {
				z.mem.WriteByte(dar0&0xfffff, z.in(uint16(sar0)))
				dar0--
				cycles += z.memoryWaitStates()
				bcr0--
				if z.dcntl&dcntlDMS0 != 0 {
					z.lines[bus.DREQ0] = false
					count = 0
				}
			}

		case 0x20: // memory SAR0+1 to memory DAR0 fixed
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0++
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x24: // memory SAR0-1 to memory DAR0 fixed
			z.mem.WriteByte(dar0&0xfffff, z.mem.ReadByte(sar0&0xfffff))
			sar0--
			cycles += z.memoryWaitStates() * 2
			bcr0--

		case 0x28, 0x2c: // reserved

		case 0x30: // memory SAR0+1 to I/O DAR0 fixed
			if z.lines[bus.DREQ0] {
				z.out(uint16(dar0), z.mem.ReadByte(sar0&0xfffff))
				sar0++
				cycles += z.memoryWaitStates()
				bcr0--
				if z.dcntl&dcntlDMS0 != 0 {
					z.lines[bus.DREQ0] = false
					count = 0
				}
			}

		case 0x34: // memory SAR0-1 to I/O DAR0 fixed
			if z.lines[bus.DREQ0] {
				z.out(uint16(dar0), z.mem.ReadByte(sar0&0xfffff))
				sar0--
				cycles += z.memoryWaitStates()
				bcr0--
				if z.dcntl&dcntlDMS0 != 0 {
					z.lines[bus.DREQ0] = false
					count = 0
				}
			}

		case 0x38, 0x3c: // reserved
		}

		count--
		cycles += 6 + z.extraCycles
		if cycles > maxCycles {
			break
		}
	}

	z.sar0 = sar0
	z.dar0 = dar0
	z.bcr0 = uint16(bcr0)

	if bcr0 == 0 {
		z.tend[0] = false
		z.dstat &^= dstatDE0
		logger.Logf(logger.Allow, "z180", "dma0: terminal count (dar=%#05x)", dar0&0xfffff)
		if z.dstat&dstatDIE0 != 0 && z.Reg.IFF1 {
			z.pending[IntDMA0] = true
		}
	}

	return cycles
}

// dma1 performs a single channel 1 transfer between memory and a fixed
// I/O address. The channel only runs while the DREQ1 line is asserted.
func (z *Z180) dma1() int {
	mar1 := z.mar1
	iar1 := uint16(z.iar1)
	bcr1 := int(z.bcr1)
	if bcr1 == 0 {
		bcr1 = 0x10000
	}

	if !z.lines[bus.DREQ1] {
		return 0
	}
	if z.dstat&dstatDE1 == 0 {
		return 0
	}

	// last transfer happening now?
	if bcr1 == 1 {
		z.tend[1] = true
	}

	z.extraCycles = 0
	cycles := 0

	switch z.dcntl & (dcntlDIM1 | dcntlDIM0) {
	case 0x00: // memory MAR1+1 to I/O IAR1 fixed
		z.out(iar1, z.mem.ReadByte(mar1&0xfffff))
		mar1++
	case 0x01: // memory MAR1-1 to I/O IAR1 fixed
		z.out(iar1, z.mem.ReadByte(mar1&0xfffff))
		mar1--
	case 0x02: // I/O IAR1 fixed to memory MAR1+1
		z.mem.WriteByte(mar1&0xfffff, z.in(iar1))
		mar1++
	case 0x03: // I/O IAR1 fixed to memory MAR1-1
		z.mem.WriteByte(mar1&0xfffff, z.in(iar1))
		mar1--
	}
	bcr1--

	cycles += z.memoryWaitStates()
	cycles += z.extraCycles

	// edge sensitive request. consume it
	if z.dcntl&dcntlDMS1 != 0 {
		z.lines[bus.DREQ1] = false
	}

	z.mar1 = mar1
	z.bcr1 = uint16(bcr1)

	if bcr1 == 0 {
		z.tend[1] = false
		z.dstat &^= dstatDE1
		logger.Logf(logger.Allow, "z180", "dma1: terminal count (mar=%#05x)", mar1&0xfffff)
		if z.dstat&dstatDIE1 != 0 && z.Reg.IFF1 {
			z.pending[IntDMA1] = true
		}
	}

	// six cycles per transfer minimum
	return 6 + cycles
}
