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
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/hardware/z180/registers"
)

// Var is a named entry in the state registry. Get and Set work on widened
// values regardless of the natural width of the underlying field; Bits
// records that width for display purposes. Mask marks the bits that exist
// in hardware when the architectural width is narrower than the storage
// width. Set discards bits outside the mask.
type Var struct {
	Name string
	Bits int
	Mask uint32
	Get  func() uint32
	Set  func(uint32)
}

// buildStateRegistry creates the Var entries for this instance. The entries
// close over the instance so the registry must be rebuilt whenever the
// instance is copied.
func (z *Z180) buildStateRegistry() {
	pair := func(name string, p *registers.Pair) Var {
		return Var{
			Name: name,
			Bits: 16,
			Mask: 0xffff,
			Get:  func() uint32 { return uint32(p.Value()) },
			Set:  func(v uint32) { p.Load(uint16(v)) },
		}
	}
	reg8 := func(name string, r *uint8) Var {
		return Var{
			Name: name,
			Bits: 8,
			Mask: 0xff,
			Get:  func() uint32 { return uint32(*r) },
			Set:  func(v uint32) { *r = uint8(v) },
		}
	}
	ctl8 := func(name string, r *uint8, mask uint8) Var {
		return Var{
			Name: name,
			Bits: 8,
			Mask: uint32(mask),
			Get:  func() uint32 { return uint32(*r & mask) },
			Set:  func(v uint32) { *r = uint8(v) & mask },
		}
	}
	reg16 := func(name string, r *uint16) Var {
		return Var{
			Name: name,
			Bits: 16,
			Mask: 0xffff,
			Get:  func() uint32 { return uint32(*r) },
			Set:  func(v uint32) { *r = uint16(v) },
		}
	}
	addr20 := func(name string, r *uint32) Var {
		return Var{
			Name: name,
			Bits: 20,
			Mask: 0xfffff,
			Get:  func() uint32 { return *r & 0xfffff },
			Set:  func(v uint32) { *r = v & 0xfffff },
		}
	}
	mmu8 := func(name string, r *uint8) Var {
		return Var{
			Name: name,
			Bits: 8,
			Mask: 0xff,
			Get:  func() uint32 { return uint32(*r) },
			Set: func(v uint32) {
				*r = uint8(v)
				z.rebuildMMU()
			},
		}
	}
	flag := func(name string, f *bool) Var {
		return Var{
			Name: name,
			Bits: 1,
			Mask: 0x01,
			Get: func() uint32 {
				if *f {
					return 1
				}
				return 0
			},
			Set: func(v uint32) { *f = v != 0 },
		}
	}

	z.vars = []Var{
		pair("PC", &z.Reg.PC),
		pair("SP", &z.Reg.SP),
		pair("AF", &z.Reg.AF),
		pair("BC", &z.Reg.BC),
		pair("DE", &z.Reg.DE),
		pair("HL", &z.Reg.HL),
		pair("AF'", &z.Reg.AF2),
		pair("BC'", &z.Reg.BC2),
		pair("DE'", &z.Reg.DE2),
		pair("HL'", &z.Reg.HL2),
		pair("IX", &z.Reg.IX),
		pair("IY", &z.Reg.IY),
		reg8("I", &z.Reg.I),
		{
			Name: "R",
			Bits: 8,
			Mask: 0xff,
			Get:  func() uint32 { return uint32(z.Reg.Refresh()) },
			Set: func(v uint32) {
				z.Reg.R = uint8(v)
				z.Reg.R2 = uint8(v)
			},
		},
		reg8("IM", &z.Reg.IM),
		flag("IFF1", &z.Reg.IFF1),
		flag("IFF2", &z.Reg.IFF2),

		// on-chip peripheral registers. the same set the internal I/O space
		// decodes, addressed here by name for the monitor and for save
		// states
		reg8("CNTLA0", &z.cntla[0]),
		reg8("CNTLA1", &z.cntla[1]),
		reg8("CNTLB0", &z.cntlb[0]),
		reg8("CNTLB1", &z.cntlb[1]),
		reg8("STAT0", &z.stat[0]),
		reg8("STAT1", &z.stat[1]),
		reg8("TDR0", &z.tdr[0]),
		reg8("TDR1", &z.tdr[1]),
		reg8("RDR0", &z.rdr[0]),
		reg8("RDR1", &z.rdr[1]),
		ctl8("ASEXT0", &z.asext[0], maskASEXT0),
		ctl8("ASEXT1", &z.asext[1], maskASEXT1),
		reg16("ASTC0", &z.astc[0]),
		reg16("ASTC1", &z.astc[1]),
		ctl8("CNTR", &z.cntr, maskCNTR),
		reg8("TRDR", &z.trdr),

		reg16("TMDR0", &z.tmdr[0]),
		reg16("TMDR1", &z.tmdr[1]),
		reg16("RLDR0", &z.rldr[0]),
		reg16("RLDR1", &z.rldr[1]),
		reg8("TCR", &z.tcr),
		reg8("FRC", &z.frc),

		addr20("SAR0", &z.sar0),
		addr20("DAR0", &z.dar0),
		reg16("BCR0", &z.bcr0),
		addr20("MAR1", &z.mar1),
		addr20("IAR1", &z.iar1),
		reg16("BCR1", &z.bcr1),
		ctl8("DSTAT", &z.dstat, maskDSTAT),
		ctl8("DMODE", &z.dmode, maskDMODE),
		reg8("DCNTL", &z.dcntl),

		ctl8("IL", &z.il, maskIL),
		ctl8("ITC", &z.itc, maskITC),
		ctl8("RCR", &z.rcr, maskRCR),
		mmu8("CBR", &z.cbr),
		mmu8("BBR", &z.bbr),
		mmu8("CBAR", &z.cbar),
		ctl8("OMCR", &z.omcr, maskOMCR),
		ctl8("IOCR", &z.iocr, maskIOCR),
		ctl8("CMR", &z.cmr, maskCMR),
		reg8("CCR", &z.ccr),
	}
}

// Variables returns the state registry, one entry per named register.
func (z *Z180) Variables() []Var {
	return z.vars
}

// Variable looks up a register by name. Lookup is case insensitive.
func (z *Z180) Variable(name string) (Var, bool) {
	for _, v := range z.vars {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Var{}, false
}

// ControlRegisters returns a formatted dump of the on-chip peripheral
// registers. Unlike PortRead() this touches nothing: no flag clearing, no
// high byte latching.
func (z *Z180) ControlRegisters() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("asci0: CNTLA=%02x CNTLB=%02x STAT=%02x TDR=%02x RDR=%02x ASEXT=%02x ASTC=%04x\n",
		z.cntla[0], z.cntlb[0], z.stat[0], z.tdr[0], z.rdr[0], z.asext[0], z.astc[0]))
	s.WriteString(fmt.Sprintf("asci1: CNTLA=%02x CNTLB=%02x STAT=%02x TDR=%02x RDR=%02x ASEXT=%02x ASTC=%04x\n",
		z.cntla[1], z.cntlb[1], z.stat[1], z.tdr[1], z.rdr[1], z.asext[1], z.astc[1]))
	s.WriteString(fmt.Sprintf("csio:  CNTR=%02x TRDR=%02x\n", z.cntr, z.trdr))
	s.WriteString(fmt.Sprintf("prt0:  TMDR=%04x RLDR=%04x\n", z.tmdr[0], z.rldr[0]))
	s.WriteString(fmt.Sprintf("prt1:  TMDR=%04x RLDR=%04x\n", z.tmdr[1], z.rldr[1]))
	s.WriteString(fmt.Sprintf("timer: TCR=%02x FRC=%02x\n", z.tcr, z.frc))
	s.WriteString(fmt.Sprintf("dma0:  SAR=%05x DAR=%05x BCR=%04x\n", z.sar0&0xfffff, z.dar0&0xfffff, z.bcr0))
	s.WriteString(fmt.Sprintf("dma1:  MAR=%05x IAR=%05x BCR=%04x\n", z.mar1&0xfffff, z.iar1&0xfffff, z.bcr1))
	s.WriteString(fmt.Sprintf("dma:   DSTAT=%02x DMODE=%02x DCNTL=%02x\n", z.dstat&maskDSTAT, z.dmode&maskDMODE, z.dcntl))
	s.WriteString(fmt.Sprintf("int:   IL=%02x ITC=%02x\n", z.il&maskIL, z.itc&maskITC))
	s.WriteString(fmt.Sprintf("mmu:   CBR=%02x BBR=%02x CBAR=%02x\n", z.cbr, z.bbr, z.cbar))
	s.WriteString(fmt.Sprintf("sys:   RCR=%02x OMCR=%02x IOCR=%02x CMR=%02x CCR=%02x",
		z.rcr&maskRCR, z.omcr&maskOMCR, z.iocr&maskIOCR, z.cmr&maskCMR, z.ccr))

	return s.String()
}

var stateMagic = [6]byte{'z', 'e', 'd', '1', '8', '0'}

const stateVersion uint8 = 1

// machineState is the serialised form of the core. Field order is the wire
// order and must not change within a state version.
type machineState struct {
	AF, BC, DE, HL     uint16
	AF2, BC2, DE2, HL2 uint16
	IX, IY, SP, PC     uint16
	I, R, R2, IM       uint8
	IFF1, IFF2, Halted bool

	PPC          uint32
	EA           uint16
	IdxIsIY      bool
	HaltBackstep uint16
	AfterEI      bool

	CNTLA, CNTLB, STAT, TDR, RDR, ASEXT [2]uint8
	ASTC                                [2]uint16
	CNTR, TRDR                          uint8

	TMDR, RLDR           [2]uint16
	TCR                  uint8
	TMDRH                [2]uint8
	TMDRLatch, TCRToggle [2]bool
	TimerCnt             int32
	FRC                  uint8

	SAR0, DAR0           uint32
	BCR0                 uint16
	MAR1, IAR1           uint32
	BCR1                 uint16
	DSTAT, DMODE, DCNTL  uint8
	Tend                 [2]bool
	IL, ITC, RCR         uint8
	CBR, BBR, CBAR       uint8
	OMCR, IOCR, CMR, CCR uint8

	Pending  [numInterrupts]bool
	NMIState bool
	Lines    [bus.NumLines]bool
}

// SaveState writes the complete state of the core and on-chip peripherals.
// The attached address spaces are not part of the stream.
func (z *Z180) SaveState(w io.Writer) error {
	if _, err := w.Write(stateMagic[:]); err != nil {
		return curated.Errorf("z180: %v", err)
	}
	if err := binary.Write(w, binary.LittleEndian, stateVersion); err != nil {
		return curated.Errorf("z180: %v", err)
	}

	s := machineState{
		AF: z.Reg.AF.Value(), BC: z.Reg.BC.Value(), DE: z.Reg.DE.Value(), HL: z.Reg.HL.Value(),
		AF2: z.Reg.AF2.Value(), BC2: z.Reg.BC2.Value(), DE2: z.Reg.DE2.Value(), HL2: z.Reg.HL2.Value(),
		IX: z.Reg.IX.Value(), IY: z.Reg.IY.Value(), SP: z.Reg.SP.Value(), PC: z.Reg.PC.Value(),
		I: z.Reg.I, R: z.Reg.R, R2: z.Reg.R2, IM: z.Reg.IM,
		IFF1: z.Reg.IFF1, IFF2: z.Reg.IFF2, Halted: z.Reg.Halted,

		PPC: z.ppc, EA: z.ea, IdxIsIY: z.idxIsIY,
		HaltBackstep: z.haltBackstep, AfterEI: z.afterEI,

		CNTLA: z.cntla, CNTLB: z.cntlb, STAT: z.stat, TDR: z.tdr, RDR: z.rdr, ASEXT: z.asext,
		ASTC: z.astc, CNTR: z.cntr, TRDR: z.trdr,

		TMDR: z.tmdr, RLDR: z.rldr, TCR: z.tcr, TMDRH: z.tmdrh,
		TMDRLatch: z.tmdrLatch, TCRToggle: z.tcrToggle,
		TimerCnt: int32(z.timerCnt), FRC: z.frc,

		SAR0: z.sar0, DAR0: z.dar0, BCR0: z.bcr0,
		MAR1: z.mar1, IAR1: z.iar1, BCR1: z.bcr1,
		DSTAT: z.dstat, DMODE: z.dmode, DCNTL: z.dcntl, Tend: z.tend,
		IL: z.il, ITC: z.itc, RCR: z.rcr,
		CBR: z.cbr, BBR: z.bbr, CBAR: z.cbar,
		OMCR: z.omcr, IOCR: z.iocr, CMR: z.cmr, CCR: z.ccr,

		Pending: z.pending, NMIState: z.nmiState, Lines: z.lines,
	}

	if err := binary.Write(w, binary.LittleEndian, &s); err != nil {
		return curated.Errorf("z180: %v", err)
	}

	return nil
}

// LoadState replaces the state of the core and on-chip peripherals with a
// stream previously written by SaveState. The attached address spaces are
// untouched.
func (z *Z180) LoadState(r io.Reader) error {
	var magic [6]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return curated.Errorf("z180: %v", err)
	}
	if magic != stateMagic {
		return curated.Errorf("z180: not a state file")
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return curated.Errorf("z180: %v", err)
	}
	if version != stateVersion {
		return curated.Errorf("z180: unsupported state version (%d)", version)
	}

	var s machineState
	if err := binary.Read(r, binary.LittleEndian, &s); err != nil {
		return curated.Errorf("z180: %v", err)
	}

	z.Reg.AF.Load(s.AF)
	z.Reg.BC.Load(s.BC)
	z.Reg.DE.Load(s.DE)
	z.Reg.HL.Load(s.HL)
	z.Reg.AF2.Load(s.AF2)
	z.Reg.BC2.Load(s.BC2)
	z.Reg.DE2.Load(s.DE2)
	z.Reg.HL2.Load(s.HL2)
	z.Reg.IX.Load(s.IX)
	z.Reg.IY.Load(s.IY)
	z.Reg.SP.Load(s.SP)
	z.Reg.PC.Load(s.PC)
	z.Reg.I = s.I
	z.Reg.R = s.R
	z.Reg.R2 = s.R2
	z.Reg.IM = s.IM
	z.Reg.IFF1 = s.IFF1
	z.Reg.IFF2 = s.IFF2
	z.Reg.Halted = s.Halted

	z.ppc = s.PPC
	z.ea = s.EA
	z.idxIsIY = s.IdxIsIY
	z.haltBackstep = s.HaltBackstep
	z.afterEI = s.AfterEI

	z.cntla = s.CNTLA
	z.cntlb = s.CNTLB
	z.stat = s.STAT
	z.tdr = s.TDR
	z.rdr = s.RDR
	z.asext = s.ASEXT
	z.astc = s.ASTC
	z.cntr = s.CNTR
	z.trdr = s.TRDR

	z.tmdr = s.TMDR
	z.rldr = s.RLDR
	z.tcr = s.TCR
	z.tmdrh = s.TMDRH
	z.tmdrLatch = s.TMDRLatch
	z.tcrToggle = s.TCRToggle
	z.timerCnt = int(s.TimerCnt)
	z.frc = s.FRC

	z.sar0 = s.SAR0
	z.dar0 = s.DAR0
	z.bcr0 = s.BCR0
	z.mar1 = s.MAR1
	z.iar1 = s.IAR1
	z.bcr1 = s.BCR1
	z.dstat = s.DSTAT
	z.dmode = s.DMODE
	z.dcntl = s.DCNTL
	z.tend = s.Tend
	z.il = s.IL
	z.itc = s.ITC
	z.rcr = s.RCR
	z.cbr = s.CBR
	z.bbr = s.BBR
	z.cbar = s.CBAR
	z.omcr = s.OMCR
	z.iocr = s.IOCR
	z.cmr = s.CMR
	z.ccr = s.CCR

	z.pending = s.Pending
	z.nmiState = s.NMIState
	z.lines = s.Lines

	z.rebuildMMU()

	return nil
}
