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

// memoryWaitStates is the number of additional cycles inserted into every
// external memory access, as programmed in DCNTL.
func (z *Z180) memoryWaitStates() int {
	return int(z.dcntl>>6) & 0x03
}

// ioWaitStates is the number of additional cycles inserted into every
// external I/O access, as programmed in DCNTL.
func (z *Z180) ioWaitStates() int {
	n := int(z.dcntl>>4) & 0x03
	if n == 0 {
		return 0
	}
	return n + 1
}

// in performs a read on the I/O space. Reads that fall inside the
// relocated internal register block are routed to the on-chip peripherals.
func (z *Z180) in(port uint16) uint8 {
	if (port^uint16(z.iocr&0xc0))&0xffc0 == 0 {
		return z.readControl(port)
	}
	z.extraCycles += z.ioWaitStates()
	return z.io.ReadPort(port)
}

// out performs a write on the I/O space. Writes that fall inside the
// relocated internal register block are routed to the on-chip peripherals.
func (z *Z180) out(port uint16, data uint8) {
	if (port^uint16(z.iocr&0xc0))&0xffc0 == 0 {
		z.writeControl(port, data)
		return
	}
	z.extraCycles += z.ioWaitStates()
	z.io.WritePort(port, data)
}

// PortRead presents a read to the I/O space exactly as an IN instruction
// would, including the internal register decode.
func (z *Z180) PortRead(port uint16) uint8 {
	return z.in(port)
}

// PortWrite presents a write to the I/O space exactly as an OUT instruction
// would, including the internal register decode.
func (z *Z180) PortWrite(port uint16, data uint8) {
	z.out(port, data)
}

// timerFlagRead implements the alternate-read protocol on the timer
// underflow flags. The first read of TCR or either TMDR byte arms the
// protocol for the channel and the second read clears the flag.
func (z *Z180) timerFlagRead(ch int) {
	if z.tcrToggle[ch] {
		if ch == 0 {
			z.tcr &^= tcrTIF0
		} else {
			z.tcr &^= tcrTIF1
		}
		z.tcrToggle[ch] = false
	} else {
		z.tcrToggle[ch] = true
	}
}

// readControl reads an internal control register. The read is also
// presented to the external bus but an internal register supplies the
// data, except for the nonexistent ports which read as all ones.
func (z *Z180) readControl(port uint16) uint8 {
	data := z.io.ReadPort(port)

	if port&uint16(z.iocr&0xc0) == uint16(z.iocr&0xc0) {
		port -= uint16(z.iocr & 0xc0)
	}

	switch port {
	case CNTLA0:
		data = z.cntla[0]

	case CNTLA1:
		data = z.cntla[1]

	case CNTLB0:
		data = z.cntlb[0]

	case CNTLB1:
		data = z.cntlb[1]

	case STAT0:
		// the stub transmitter is always ready
		data = z.stat[0] | statTDRE

	case STAT1:
		data = z.stat[1]

	case TDR0:
		data = z.tdr[0]

	case TDR1:
		data = z.tdr[1]

	case RDR0:
		data = z.rdr[0]

	case RDR1:
		data = z.rdr[1]

	case CNTR:
		data = z.cntr | ^uint8(maskCNTR)

	case TRDR:
		data = z.trdr

	case TMDR0L:
		data = uint8(z.tmdr[0])

		// reading the low byte of a running timer latches the high byte
		if z.tcr&tcrTDE0 != 0 {
			z.tmdrLatch[0] = true
			z.tmdrh[0] = uint8(z.tmdr[0] >> 8)
		}
		z.timerFlagRead(0)

	case TMDR0H:
		if z.tmdrLatch[0] {
			z.tmdrLatch[0] = false
			data = z.tmdrh[0]
		} else {
			data = uint8(z.tmdr[0] >> 8)
		}
		z.timerFlagRead(0)

	case RLDR0L:
		data = uint8(z.rldr[0])

	case RLDR0H:
		data = uint8(z.rldr[0] >> 8)

	case TCR:
		data = z.tcr
		z.timerFlagRead(0)
		z.timerFlagRead(1)

	case ASEXT0:
		data = z.asext[0]

	case ASEXT1:
		data = z.asext[1]

	case TMDR1L:
		data = uint8(z.tmdr[1])

		// reading the low byte of a running timer latches the high byte
		if z.tcr&tcrTDE1 != 0 {
			z.tmdrLatch[1] = true
			z.tmdrh[1] = uint8(z.tmdr[1] >> 8)
		}
		z.timerFlagRead(1)

	case TMDR1H:
		if z.tmdrLatch[1] {
			z.tmdrLatch[1] = false
			data = z.tmdrh[1]
		} else {
			data = uint8(z.tmdr[1] >> 8)
		}
		z.timerFlagRead(1)

	case RLDR1L:
		data = uint8(z.rldr[1])

	case RLDR1H:
		data = uint8(z.rldr[1] >> 8)

	case FRC:
		data = z.frc

	case ASTC0L:
		data = uint8(z.astc[0])

	case ASTC0H:
		data = uint8(z.astc[0] >> 8)

	case ASTC1L:
		data = uint8(z.astc[1])

	case ASTC1H:
		data = uint8(z.astc[1] >> 8)

	case CMR:
		data = z.cmr | ^uint8(maskCMR)

	case CCR:
		data = z.ccr

	case SAR0L:
		data = uint8(z.sar0)

	case SAR0H:
		data = uint8(z.sar0 >> 8)

	case SAR0B:
		data = uint8(z.sar0>>16) & maskAddrB

	case DAR0L:
		data = uint8(z.dar0)

	case DAR0H:
		data = uint8(z.dar0 >> 8)

	case DAR0B:
		data = uint8(z.dar0>>16) & maskAddrB

	case BCR0L:
		data = uint8(z.bcr0)

	case BCR0H:
		data = uint8(z.bcr0 >> 8)

	case MAR1L:
		data = uint8(z.mar1)

	case MAR1H:
		data = uint8(z.mar1 >> 8)

	case MAR1B:
		data = uint8(z.mar1>>16) & maskAddrB

	case IAR1L:
		data = uint8(z.iar1)

	case IAR1H:
		data = uint8(z.iar1 >> 8)

	case IAR1B:
		data = uint8(z.iar1>>16) & maskAddrB

	case BCR1L:
		data = uint8(z.bcr1)

	case BCR1H:
		data = uint8(z.bcr1 >> 8)

	case DSTAT:
		data = z.dstat | ^uint8(maskDSTAT)

	case DMODE:
		data = z.dmode | ^uint8(maskDMODE)

	case DCNTL:
		data = z.dcntl

	case IL:
		data = z.il & maskIL

	case ITC:
		data = z.itc | ^uint8(maskITC)

	case RCR:
		data = z.rcr | ^uint8(maskRCR)

	case CBR:
		data = z.cbr

	case BBR:
		data = z.bbr

	case CBAR:
		data = z.cbar

	case OMCR:
		// M1TE is write only and always reads as one
		data = z.omcr | omcrM1TE | ^uint8(maskOMCR)

	case IOCR:
		data = z.iocr | ^uint8(maskIOCR)

	case 0x11, 0x19, 0x35, 0x37, 0x3b, 0x3c, 0x3d:
		// nonexistent ports read as all ones
		data = 0xff
	}

	return data
}

// writeControl writes an internal control register. The write is always
// presented to the external bus as well, the internal registers do not
// mask the I/O space.
func (z *Z180) writeControl(port uint16, data uint8) {
	z.io.WritePort(port, data)

	if port&uint16(z.iocr&0xc0) == uint16(z.iocr&0xc0) {
		port -= uint16(z.iocr & 0xc0)
	}

	switch port {
	case CNTLA0:
		z.cntla[0] = data

	case CNTLA1:
		z.cntla[1] = data

	case CNTLB0:
		z.cntlb[0] = data

	case CNTLB1:
		z.cntlb[1] = data

	case STAT0:
		// only the interrupt enable bits are writable
		z.stat[0] = (z.stat[0] &^ (statRIE | statTIE)) | (data & (statRIE | statTIE))

	case STAT1:
		z.stat[1] = (z.stat[1] &^ (statRIE | statCTS1E | statTIE)) | (data & (statRIE | statCTS1E | statTIE))

	case TDR0:
		z.tdr[0] = data

	case TDR1:
		z.tdr[1] = data

	case RDR0:
		z.rdr[0] = data

	case RDR1:
		z.rdr[1] = data

	case CNTR:
		// the end and enable flags are maintained by the channel
		z.cntr = (z.cntr & (cntrEF | cntrRE | cntrTE)) | (data &^ (cntrEF | cntrRE | cntrTE))

	case TRDR:
		z.trdr = data

	case TMDR0L:
		z.tmdr[0] = (z.tmdr[0] & 0xff00) | uint16(data)

	case TMDR0H:
		z.tmdr[0] = (z.tmdr[0] & 0x00ff) | uint16(data)<<8

	case RLDR0L:
		z.rldr[0] = (z.rldr[0] & 0xff00) | uint16(data)

	case RLDR0H:
		z.rldr[0] = (z.rldr[0] & 0x00ff) | uint16(data)<<8

	case TCR:
		old := z.tcr
		z.tcr = (z.tcr & (tcrTIF1 | tcrTIF0)) | (data &^ (tcrTIF1 | tcrTIF0))

		// enabling a stopped timer restarts the count from zero
		if old&tcrTDE0 == 0 && z.tcr&tcrTDE0 != 0 {
			z.tmdr[0] = 0
		}
		if old&tcrTDE1 == 0 && z.tcr&tcrTDE1 != 0 {
			z.tmdr[1] = 0
		}

	case ASEXT0:
		// break detect is maintained by the channel
		z.asext[0] = (z.asext[0] & asextBreakDetect) | (data & maskASEXT0 &^ asextBreakDetect)

	case ASEXT1:
		z.asext[1] = (z.asext[1] & asextBreakDetect) | (data & maskASEXT1 &^ asextBreakDetect)

	case TMDR1L:
		z.tmdr[1] = (z.tmdr[1] & 0xff00) | uint16(data)

	case TMDR1H:
		z.tmdr[1] = (z.tmdr[1] & 0x00ff) | uint16(data)<<8

	case RLDR1L:
		z.rldr[1] = (z.rldr[1] & 0xff00) | uint16(data)

	case RLDR1H:
		z.rldr[1] = (z.rldr[1] & 0x00ff) | uint16(data)<<8

	case FRC:
		// the free running counter is read only

	case ASTC0L:
		z.astc[0] = (z.astc[0] & 0xff00) | uint16(data)

	case ASTC0H:
		z.astc[0] = (z.astc[0] & 0x00ff) | uint16(data)<<8

	case ASTC1L:
		z.astc[1] = (z.astc[1] & 0xff00) | uint16(data)

	case ASTC1H:
		z.astc[1] = (z.astc[1] & 0x00ff) | uint16(data)<<8

	case CMR:
		z.cmr = data & maskCMR

	case CCR:
		z.ccr = data

	case SAR0L:
		z.sar0 = (z.sar0 & 0xfff00) | uint32(data)

	case SAR0H:
		z.sar0 = (z.sar0 & 0xf00ff) | uint32(data)<<8

	case SAR0B:
		z.sar0 = (z.sar0 & 0x0ffff) | uint32(data&maskAddrB)<<16

	case DAR0L:
		z.dar0 = (z.dar0 & 0xfff00) | uint32(data)

	case DAR0H:
		z.dar0 = (z.dar0 & 0xf00ff) | uint32(data)<<8

	case DAR0B:
		z.dar0 = (z.dar0 & 0x0ffff) | uint32(data&maskAddrB)<<16

	case BCR0L:
		z.bcr0 = (z.bcr0 & 0xff00) | uint16(data)

	case BCR0H:
		z.bcr0 = (z.bcr0 & 0x00ff) | uint16(data)<<8

	case MAR1L:
		z.mar1 = (z.mar1 & 0xfff00) | uint32(data)

	case MAR1H:
		z.mar1 = (z.mar1 & 0xf00ff) | uint32(data)<<8

	case MAR1B:
		z.mar1 = (z.mar1 & 0x0ffff) | uint32(data&maskAddrB)<<16

	case IAR1L:
		z.iar1 = (z.iar1 & 0xfff00) | uint32(data)

	case IAR1H:
		z.iar1 = (z.iar1 & 0xf00ff) | uint32(data)<<8

	case IAR1B:
		z.iar1 = (z.iar1 & 0x0ffff) | uint32(data&maskAddrB)<<16

	case BCR1L:
		z.bcr1 = (z.bcr1 & 0xff00) | uint16(data)

	case BCR1H:
		z.bcr1 = (z.bcr1 & 0x00ff) | uint16(data)<<8

	case DSTAT:
		z.dstat = (z.dstat & dstatDME) | (data & maskDSTAT &^ dstatDME)

		// writing an enable bit with its write-enable mask bit low commits
		// the enable and raises the master enable
		if data&(dstatDE1|dstatDWE1) == dstatDE1 {
			z.dstat |= dstatDME
		}
		if data&(dstatDE0|dstatDWE0) == dstatDE0 {
			z.dstat |= dstatDME
		}

	case DMODE:
		z.dmode = data & maskDMODE

	case DCNTL:
		z.dcntl = data

	case IL:
		z.il = data & maskIL

	case ITC:
		// TRAP clears on a zero write but cannot be set by software. the
		// undefined fetch flag can only be changed by the trap itself
		z.itc = (z.itc & (itcUFO | itcTRAP)) | (data & maskITC &^ (itcUFO | itcTRAP))
		if data&itcTRAP == 0 {
			z.itc &^= itcTRAP
		}

	case RCR:
		z.rcr = data & maskRCR

	case CBR:
		z.cbr = data
		z.rebuildMMU()

	case BBR:
		z.bbr = data
		z.rebuildMMU()

	case CBAR:
		z.cbar = data
		z.rebuildMMU()

	case OMCR:
		z.omcr = data & maskOMCR

	case IOCR:
		z.iocr = data & maskIOCR
	}
}
