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

// Internal register addresses within the 64 port internal I/O space. The
// space sits at ports 0x0000-0x003f after reset and can be relocated in
// steps of 0x40 with the top two bits of the IOCR register.
const (
	CNTLA0 = 0x00
	CNTLA1 = 0x01
	CNTLB0 = 0x02
	CNTLB1 = 0x03
	STAT0  = 0x04
	STAT1  = 0x05
	TDR0   = 0x06
	TDR1   = 0x07
	RDR0   = 0x08
	RDR1   = 0x09
	CNTR   = 0x0a
	TRDR   = 0x0b
	TMDR0L = 0x0c
	TMDR0H = 0x0d
	RLDR0L = 0x0e
	RLDR0H = 0x0f
	TCR    = 0x10
	ASEXT0 = 0x12
	ASEXT1 = 0x13
	TMDR1L = 0x14
	TMDR1H = 0x15
	RLDR1L = 0x16
	RLDR1H = 0x17
	FRC    = 0x18
	ASTC0L = 0x1a
	ASTC0H = 0x1b
	ASTC1L = 0x1c
	ASTC1H = 0x1d
	CMR    = 0x1e
	CCR    = 0x1f
	SAR0L  = 0x20
	SAR0H  = 0x21
	SAR0B  = 0x22
	DAR0L  = 0x23
	DAR0H  = 0x24
	DAR0B  = 0x25
	BCR0L  = 0x26
	BCR0H  = 0x27
	MAR1L  = 0x28
	MAR1H  = 0x29
	MAR1B  = 0x2a
	IAR1L  = 0x2b
	IAR1H  = 0x2c
	IAR1B  = 0x2d
	BCR1L  = 0x2e
	BCR1H  = 0x2f
	DSTAT  = 0x30
	DMODE  = 0x31
	DCNTL  = 0x32
	IL     = 0x33
	ITC    = 0x34
	RCR    = 0x36
	CBR    = 0x38
	BBR    = 0x39
	CBAR   = 0x3a
	OMCR   = 0x3e
	IOCR   = 0x3f
)

// asci CNTLA bits.
const (
	cntlaMPE     = 0x80
	cntlaRE      = 0x40
	cntlaTE      = 0x20
	cntlaRTS0    = 0x10 // channel 0
	cntlaCKA1D   = 0x10 // channel 1
	cntlaMPBR    = 0x08
	cntlaModeBit = 0x07
)

// asci CNTLB bits.
const (
	cntlbMPBT  = 0x80
	cntlbMP    = 0x40
	cntlbCTSPS = 0x20
	cntlbPEO   = 0x10
	cntlbDR    = 0x08
	cntlbSS    = 0x07
)

// asci STAT bits. RIE and TIE are the only writable bits on channel 0;
// channel 1 adds CTS1E.
const (
	statRDRF  = 0x80
	statOVRN  = 0x40
	statPE    = 0x20
	statFE    = 0x10
	statRIE   = 0x08
	statDCD0  = 0x04 // channel 0
	statCTS1E = 0x04 // channel 1
	statTDRE  = 0x02
	statTIE   = 0x01
)

// asci extension control bits.
const (
	asextBreakDetect = 0x02
)

// csio CNTR bits. EF, RE and TE cannot be written directly.
const (
	cntrEF  = 0x80
	cntrEIE = 0x40
	cntrRE  = 0x20
	cntrTE  = 0x10
	cntrSS  = 0x07
)

// timer control register bits.
const (
	tcrTIF1 = 0x80
	tcrTIF0 = 0x40
	tcrTOC1 = 0x20
	tcrTOC0 = 0x10
	tcrTIE1 = 0x08
	tcrTIE0 = 0x04
	tcrTDE1 = 0x02
	tcrTDE0 = 0x01
)

// DMA status register bits. DME is read-only and only ever set as a side
// effect of the enable/write-enable bit pairs.
const (
	dstatDE1  = 0x80
	dstatDE0  = 0x40
	dstatDWE1 = 0x20
	dstatDWE0 = 0x10
	dstatDIE1 = 0x08
	dstatDIE0 = 0x04
	dstatDME  = 0x01
)

// DMA mode register bits.
const (
	dmodeDM1  = 0x20
	dmodeDM0  = 0x10
	dmodeSM1  = 0x08
	dmodeSM0  = 0x04
	dmodeMMOD = 0x02
)

// DMA/WAIT control register bits.
const (
	dcntlMWI1 = 0x80
	dcntlMWI0 = 0x40
	dcntlIWI1 = 0x20
	dcntlIWI0 = 0x10
	dcntlDMS1 = 0x08
	dcntlDMS0 = 0x04
	dcntlDIM1 = 0x02
	dcntlDIM0 = 0x01
)

// interrupt/trap control register bits.
const (
	itcTRAP = 0x80
	itcUFO  = 0x40
	itcITE2 = 0x04
	itcITE1 = 0x02
	itcITE0 = 0x01
)

// refresh control register bits.
const (
	rcrREFE = 0x80
	rcrREFW = 0x40
)

// operation mode control register bits.
const (
	omcrM1E  = 0x80
	omcrM1TE = 0x40
	omcrIOC  = 0x20
)

// architectural width of registers whose storage is wider than the defined
// bits. undefined bits read as one and writes to them are discarded.
const (
	maskCNTR   = 0xf7
	maskASEXT0 = 0x7f
	maskASEXT1 = 0x1f
	maskCMR    = 0x80
	maskDSTAT  = 0xfd
	maskDMODE  = 0x3e
	maskIL     = 0xe0
	maskITC    = 0xc7
	maskRCR    = 0xc3
	maskOMCR   = 0xe0
	maskIOCR   = 0xe0

	// the third byte of a 20 bit DMA address register
	maskAddrB = 0x0f
)
