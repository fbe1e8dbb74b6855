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

// Interrupt enumerates the interrupt sources in priority order, highest
// first.
type Interrupt int

// The list of interrupt sources.
const (
	IntTrap Interrupt = iota
	IntNMI
	IntIRQ0
	IntIRQ1
	IntIRQ2
	IntPRT0
	IntPRT1
	IntDMA0
	IntDMA1
	IntCSIO
	IntASCI0
	IntASCI1
	numInterrupts
)

func (i Interrupt) String() string {
	switch i {
	case IntTrap:
		return "TRAP"
	case IntNMI:
		return "NMI"
	case IntIRQ0:
		return "INT0"
	case IntIRQ1:
		return "INT1"
	case IntIRQ2:
		return "INT2"
	case IntPRT0:
		return "PRT0"
	case IntPRT1:
		return "PRT1"
	case IntDMA0:
		return "DMA0"
	case IntDMA1:
		return "DMA1"
	case IntCSIO:
		return "CSIO"
	case IntASCI0:
		return "ASCI0"
	case IntASCI1:
		return "ASCI1"
	}
	return "unknown"
}

// IntPending returns true if the named interrupt source is waiting to be
// serviced.
func (z *Z180) IntPending(i Interrupt) bool {
	if i < 0 || i >= numInterrupts {
		return false
	}
	return z.pending[i]
}

// trap records an undefined opcode fetch. The trap is serviced at the next
// instruction boundary regardless of the interrupt enable state.
func (z *Z180) trap() {
	z.itc |= itcTRAP | itcUFO
	z.pending[IntTrap] = true
	logger.Logf(logger.Allow, "z180", "undefined opcode trap (pc=%#04x)", uint16(z.ppc))
}

// checkInterrupts latches the external maskable request lines into the
// pending array and services the highest priority pending source. The
// returned cycle count is zero if nothing was serviced.
func (z *Z180) checkInterrupts() int {
	// an attached daisy chain drives the INT0 line
	if z.daisy != nil {
		z.lines[bus.IRQ0] = z.daisy.State()
	}

	// the external request lines are level sensitive. they only pend while
	// the master enable is set and the previous instruction was not EI
	if z.Reg.IFF1 && !z.afterEI {
		if z.lines[bus.IRQ0] && z.itc&itcITE0 != 0 {
			z.pending[IntIRQ0] = true
		}
		if z.lines[bus.IRQ1] && z.itc&itcITE1 != 0 {
			z.pending[IntIRQ1] = true
		}
		if z.lines[bus.IRQ2] && z.itc&itcITE2 != 0 {
			z.pending[IntIRQ2] = true
		}
	}

	for i := IntTrap; i < numInterrupts; i++ {
		if z.pending[i] {
			z.pending[i] = false
			return z.takeInterrupt(i)
		}
	}

	return 0
}

// takeInterrupt services an interrupt source, pushing the return address
// and vectoring according to the source and the interrupt mode. The
// return value is the cycle cost of the acknowledge sequence.
func (z *Z180) takeInterrupt(src Interrupt) int {
	z.ppc = ppcInterrupt
	z.leaveHalt()

	switch src {
	case IntTrap:
		// the trap flag in ITC remains set until software clears it
		z.push(z.Reg.PC.Value())
		z.Reg.PC.Load(0x0000)
		return 11

	case IntNMI:
		// NMI suspends DMA and parks the enable flip-flop in IFF2
		z.dstat &^= dstatDME
		z.Reg.IFF2 = z.Reg.IFF1
		z.Reg.IFF1 = false
		z.push(z.Reg.PC.Value())
		z.Reg.PC.Load(0x0066)
		return 11

	case IntIRQ0:
		z.Reg.IFF1 = false
		z.Reg.IFF2 = false

		vector := uint8(0xff)
		if z.daisy != nil {
			vector = z.daisy.Acknowledge()
		}

		switch z.Reg.IM {
		case 2:
			z.push(z.Reg.PC.Value())
			addr := uint16(z.Reg.I)<<8 | uint16(vector)
			z.Reg.PC.Load(z.rm16(addr))
			return 19
		case 1:
			z.push(z.Reg.PC.Value())
			z.Reg.PC.Load(0x0038)
			return 13
		default:
			// mode 0 expects an instruction on the bus. only the RST
			// family is honoured
			z.push(z.Reg.PC.Value())
			z.Reg.PC.Load(uint16(vector & 0x38))
			return 13
		}
	}

	// the remaining external lines and all internal sources vector through
	// the table addressed by I and IL
	z.Reg.IFF1 = false
	z.Reg.IFF2 = false
	z.push(z.Reg.PC.Value())

	addr := uint16(z.Reg.I)<<8 | uint16(z.il&maskIL) | uint16(src-IntIRQ1)<<1
	z.Reg.PC.Load(z.rm16(addr))
	return 19
}
