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
	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/hardware/z180/registers"
)

// value of the ppc field when the most recent event was an interrupt
// acknowledge rather than an instruction fetch
const ppcInterrupt = 0xffffffff

// Z180 is a cycle accurate emulation of the Z8S180 CPU core and its on-chip
// peripherals. Create an instance with NewZ180() and advance it with Run()
// or Step().
//
// The type is not safe for concurrent use. All methods must be called from
// the same goroutine.
type Z180 struct {
	// the register file is exposed directly. fields can be poked between
	// calls to Run() but not during
	Reg registers.File

	mem     bus.Memory
	opcodes bus.OpcodeReader
	io      bus.IO
	daisy   bus.DaisyChain

	// logical address of the most recently fetched instruction. equal to
	// ppcInterrupt immediately after an interrupt acknowledge
	ppc uint32

	// effective address for the current indexed instruction
	ea uint16

	// which index register the current dd/fd instruction family refers to
	idxIsIY bool

	// ASCI channels
	cntla [2]uint8
	cntlb [2]uint8
	stat  [2]uint8
	tdr   [2]uint8
	rdr   [2]uint8
	asext [2]uint8
	astc  [2]uint16

	// CSIO
	cntr uint8
	trdr uint8

	// programmable reload timers. tmdr is the live down-counter, rldr the
	// reload value. tmdrh holds a latched high byte during the split read
	// protocol and tcrToggle tracks the alternate reads that clear the
	// underflow flags
	tmdr      [2]uint16
	rldr      [2]uint16
	tcr       uint8
	tmdrh     [2]uint8
	tmdrLatch [2]bool
	tcrToggle [2]bool

	// prescaler. the timers tick once for every twenty CPU cycles
	timerCnt int

	// free running counter. counts once per instruction
	frc uint8

	// DMA channel registers. channel 0 addresses are 20 bit, channel 1
	// pairs a 20 bit memory address with a 16 bit I/O address
	sar0  uint32
	dar0  uint32
	bcr0  uint16
	mar1  uint32
	iar1  uint32
	bcr1  uint16
	dstat uint8
	dmode uint8
	dcntl uint8

	// interrupt and system control registers
	il   uint8
	itc  uint8
	rcr  uint8
	cbr  uint8
	bbr  uint8
	cbar uint8
	omcr uint8
	iocr uint8
	cmr  uint8
	ccr  uint8

	// physical base address for each 4KB logical page. rebuilt whenever
	// CBR, BBR or CBAR change
	mmu [16]uint32

	// interrupt bookkeeping. pending is indexed by the Interrupt
	// enumeration
	pending  [numInterrupts]bool
	nmiState bool

	// set by EI and cleared before the next instruction. interrupts are
	// not accepted while set
	afterEI bool

	// most recent state asserted on each named input line
	lines [bus.NumLines]bool

	// transfer-end state for the two DMA channels
	tend [2]bool

	// how far PC must step back to refetch the halting instruction when an
	// interrupt releases the CPU. HALT backs up one byte, SLP two
	haltBackstep uint16

	// cycles remaining in the current Run()
	icount int

	// additional cycles accrued by the current instruction. wait states
	// and taken branches add to this
	extraCycles int

	// snapshot/restore entries. rebuilt for every new instance because the
	// closures capture the instance
	vars []Var
}

// NewZ180 is the preferred method of initialisation for the Z180 type. The
// mem and io arguments are the address spaces used for all external
// accesses.
func NewZ180(mem bus.Memory, io bus.IO) (*Z180, error) {
	if mem == nil {
		return nil, curated.Errorf("z180: no program address space")
	}
	if io == nil {
		return nil, curated.Errorf("z180: no I/O address space")
	}

	z := &Z180{
		Reg: registers.NewFile(),
		mem: mem,
		io:  io,
	}
	z.buildStateRegistry()
	z.Reset()

	return z, nil
}

// AttachOpcodeReader sets the handler used for opcode fetches. With no
// handler attached opcode fetches go through the regular memory interface.
func (z *Z180) AttachOpcodeReader(r bus.OpcodeReader) {
	z.opcodes = r
}

// AttachDaisyChain sets the handler used to acknowledge INT0 requests in
// interrupt modes 0 and 2.
func (z *Z180) AttachDaisyChain(d bus.DaisyChain) {
	z.daisy = d
}

// Snapshot makes a copy of the CPU in its current state.
func (z *Z180) Snapshot() *Z180 {
	n := *z
	n.buildStateRegistry()
	return &n
}

// Plumb a new set of address spaces into the CPU. Any attached opcode
// reader or daisy chain is forgotten and must be attached again if
// required.
func (z *Z180) Plumb(mem bus.Memory, io bus.IO) {
	z.mem = mem
	z.io = io
	z.opcodes = nil
	z.daisy = nil
}

func (z *Z180) String() string {
	return z.Reg.String()
}

// PreviousPC returns the logical address of the most recently executed
// instruction. The second return value is false if the most recent event
// was an interrupt acknowledge rather than an instruction.
func (z *Z180) PreviousPC() (uint16, bool) {
	if z.ppc == ppcInterrupt {
		return 0, false
	}
	return uint16(z.ppc), true
}

// Reset the CPU and on-chip peripherals to their power-on state. The DMA
// channel addresses and counts keep their previous values, as does the
// free running counter.
func (z *Z180) Reset() {
	z.Reg.AF.Load(0x0040)
	z.Reg.BC.Load(0x0000)
	z.Reg.DE.Load(0x0000)
	z.Reg.HL.Load(0x0000)
	z.Reg.AF2.Load(0x0000)
	z.Reg.BC2.Load(0x0000)
	z.Reg.DE2.Load(0x0000)
	z.Reg.HL2.Load(0x0000)
	z.Reg.IX.Load(0xffff)
	z.Reg.IY.Load(0xffff)
	z.Reg.SP.Load(0x0000)
	z.Reg.PC.Load(0x0000)
	z.Reg.I = 0
	z.Reg.R = 0
	z.Reg.R2 = 0
	z.Reg.IFF1 = false
	z.Reg.IFF2 = false
	z.Reg.IM = 0
	z.Reg.Halted = false

	z.ppc = 0
	z.ea = 0
	z.haltBackstep = 0
	z.afterEI = false
	z.timerCnt = 0
	z.extraCycles = 0

	for i := range z.pending {
		z.pending[i] = false
	}
	for i := range z.lines {
		z.lines[i] = false
	}
	z.nmiState = false
	z.tend[0] = false
	z.tend[1] = false

	// ASCI and CSIO. some channel control bits survive a reset
	z.cntla[0] = (z.cntla[0] & cntlaMPBR) | cntlaRTS0
	z.cntla[1] = (z.cntla[1] & cntlaMPBR) | cntlaCKA1D
	z.cntlb[0] = (z.cntlb[0] & (cntlbMPBT | cntlbCTSPS)) | 0x07
	z.cntlb[1] = (z.cntlb[1] & cntlbMPBT) | 0x07
	z.stat[0] = z.stat[0] & (statDCD0 | statTDRE)
	z.stat[1] = statTDRE
	z.asext[0] = 0
	z.asext[1] = 0
	z.cntr = 0x07

	// timers
	z.tmdr[0] = 0xffff
	z.tmdr[1] = 0xffff
	z.rldr[0] = 0xffff
	z.rldr[1] = 0xffff
	z.tcr = 0
	z.tmdrh[0] = 0
	z.tmdrh[1] = 0
	z.tmdrLatch[0] = false
	z.tmdrLatch[1] = false
	z.tcrToggle[0] = false
	z.tcrToggle[1] = false

	// DMA control. only the I/O address high byte of channel 1 is cleared
	z.iar1 &= 0x00ffff
	z.dstat = dstatDWE1 | dstatDWE0
	z.dmode = 0
	z.dcntl = 0xf0

	// interrupt and system control
	z.il = 0
	z.itc = itcITE0
	z.rcr = rcrREFE | rcrREFW
	z.cbr = 0
	z.bbr = 0
	z.cbar = 0xf0
	z.omcr = 0xe0
	z.iocr = 0
	z.cmr = 0
	z.ccr = 0

	z.rebuildMMU()
}

// rm reads a byte through the MMU.
func (z *Z180) rm(addr uint16) uint8 {
	return z.mem.ReadByte(z.MapAddress(addr))
}

// wm writes a byte through the MMU.
func (z *Z180) wm(addr uint16, data uint8) {
	z.mem.WriteByte(z.MapAddress(addr), data)
}

func (z *Z180) rm16(addr uint16) uint16 {
	l := z.rm(addr)
	h := z.rm(addr + 1)
	return uint16(h)<<8 | uint16(l)
}

func (z *Z180) wm16(addr uint16, data uint16) {
	z.wm(addr, uint8(data))
	z.wm(addr+1, uint8(data>>8))
}

// rop fetches the next opcode byte, bumping the refresh register and
// advancing PC.
func (z *Z180) rop() uint8 {
	addr := z.MapAddress(z.Reg.PC.Value())
	z.Reg.PC.Inc()
	z.Reg.R++
	if z.opcodes != nil {
		return z.opcodes.ReadOpcode(addr)
	}
	return z.mem.ReadByte(addr)
}

// arg fetches the next operand byte and advances PC. the refresh register
// is not affected.
func (z *Z180) arg() uint8 {
	v := z.rm(z.Reg.PC.Value())
	z.Reg.PC.Inc()
	return v
}

func (z *Z180) arg16() uint16 {
	l := z.arg()
	h := z.arg()
	return uint16(h)<<8 | uint16(l)
}

func (z *Z180) push(v uint16) {
	z.Reg.SP.Dec()
	z.wm(z.Reg.SP.Value(), uint8(v>>8))
	z.Reg.SP.Dec()
	z.wm(z.Reg.SP.Value(), uint8(v))
}

func (z *Z180) pop() uint16 {
	l := z.rm(z.Reg.SP.Value())
	z.Reg.SP.Inc()
	h := z.rm(z.Reg.SP.Value())
	z.Reg.SP.Inc()
	return uint16(h)<<8 | uint16(l)
}

// idxPair returns the index register the current dd/fd instruction family
// refers to.
func (z *Z180) idxPair() *registers.Pair {
	if z.idxIsIY {
		return &z.Reg.IY
	}
	return &z.Reg.IX
}

// eaIndex computes the effective address for an indexed operand, fetching
// the displacement byte.
func (z *Z180) eaIndex() uint16 {
	d := int8(z.arg())
	z.ea = uint16(int32(z.idxPair().Value()) + int32(d))
	return z.ea
}
