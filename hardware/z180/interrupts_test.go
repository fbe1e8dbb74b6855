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

package z180_test

import (
	"testing"

	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/hardware/z180"
	"github.com/zedemu/zed180/test"
)

func TestNMIEdge(t *testing.T) {
	z, mem, _ := newTestCPU(t)

	z.Step() // NOP at 0
	z.SetLine(bus.NMI, true)

	c := z.Step()
	test.Equate(t, c, 14)
	pc, ok := z.PreviousPC()
	test.Equate(t, ok, true)
	test.Equate(t, pc, 0x0066)
	test.Equate(t, z.Reg.SP.Value(), 0xfffe)
	test.Equate(t, mem.data[0xfffe], 0x01)
	test.Equate(t, mem.data[0xffff], 0x00)

	// holding the line does not retrigger
	z.Step()
	pc, _ = z.PreviousPC()
	test.Equate(t, pc, 0x0067)

	// a fresh rising edge does
	z.SetLine(bus.NMI, false)
	z.SetLine(bus.NMI, true)
	z.Step()
	pc, _ = z.PreviousPC()
	test.Equate(t, pc, 0x0066)
}

func TestNMISuspendsDMA(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// enable channel 1 without a request pending. the master enable
	// comes up with it
	z.PortWrite(z180.DSTAT, 0x90)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x01, 0x01)

	z.SetLine(bus.NMI, true)
	z.Step()
	test.Equate(t, z.PortRead(z180.DSTAT)&0x01, 0)
}

func TestMaskableInterrupt(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0,
		0xed, 0x56, // IM 1
		0xfb, // EI
		0x00, // NOP
		0x00,
	)

	step(t, z, 6)
	step(t, z, 3)
	z.SetLine(bus.IRQ0, true)

	// the instruction after EI always runs before the interrupt is
	// accepted
	z.Step()
	test.Equate(t, z.Reg.PC.Value(), 0x0004)

	c := z.Step()
	test.Equate(t, c, 16)
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x0038)
	test.Equate(t, z.Reg.IFF1, false)
	test.Equate(t, mem.data[0xfffe], 0x04)
}

func TestInterruptMasking(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0, 0x00, 0x00, 0x00)

	// INT0 is disabled in ITC
	z.PortWrite(z180.ITC, 0x00)
	z.Reg.IFF1 = true
	z.Reg.IFF2 = true
	z.SetLine(bus.IRQ0, true)

	z.Step()
	z.Step()
	test.Equate(t, z.Reg.PC.Value(), 0x0002)

	// re-enabling lets the pending level through
	z.PortWrite(z180.ITC, 0x01)
	z.Step()
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x0038)
}

func TestInterruptMode2(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0x2080, 0x00, 0x30) // vector table entry -> $3000

	daisy := &testDaisy{vector: 0x80}
	z.AttachDaisyChain(daisy)

	z.Reg.IM = 2
	z.Reg.I = 0x20
	z.Reg.IFF1 = true
	z.Reg.IFF2 = true

	daisy.state = true
	c := z.Step()
	test.Equate(t, c, 22)
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x3000)
	test.Equate(t, z.Reg.IFF1, false)
}

func TestInterruptMode0(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// the device on the chain answers the acknowledge with RST $20
	daisy := &testDaisy{vector: 0xe7}
	z.AttachDaisyChain(daisy)

	z.Reg.IFF1 = true
	z.Reg.IFF2 = true
	daisy.state = true

	z.Step()
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x0020)
}

func TestInternalVector(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0x4024, 0x00, 0x50) // PRT0 slot of the vector table

	z.Reg.I = 0x40
	z.PortWrite(z180.IL, 0x20)
	z.Reg.IFF1 = true
	z.Reg.IFF2 = true

	// a reload of 1 underflows on the second tick
	z.PortWrite(z180.RLDR0L, 0x01)
	z.PortWrite(z180.RLDR0H, 0x00)
	z.PortWrite(z180.TCR, 0x05) // TIE0 and TDE0

	taken := false
	for i := 0; i < 100; i++ {
		z.Step()
		if pc, ok := z.PreviousPC(); ok && pc == 0x5000 {
			taken = true
			break
		}
	}
	test.Equate(t, taken, true)
	test.Equate(t, z.Reg.IFF1, false)
}

func TestTrap(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0x100, 0xed, 0x77) // no such extended instruction
	z.Reg.PC.Load(0x0100)

	step(t, z, 6)
	test.Equate(t, z.IntPending(z180.IntTrap), true)
	test.Equate(t, z.PortRead(z180.ITC)&0x80, 0x80)

	// the trap vectors through the restart address with the PC after the
	// offending opcode on the stack
	z.Step()
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x0000)
	test.Equate(t, mem.data[0xfffe], 0x02)
	test.Equate(t, mem.data[0xffff], 0x01)

	// TRAP clears on a zero write and cannot be set back by software
	z.PortWrite(z180.ITC, 0x01)
	test.Equate(t, z.PortRead(z180.ITC)&0x80, 0)
	z.PortWrite(z180.ITC, 0x81)
	test.Equate(t, z.PortRead(z180.ITC)&0x80, 0)
}

func TestInterruptPriority(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0x100, 0xed, 0x77)
	z.Reg.PC.Load(0x0100)

	// raise the trap and NMI together. the trap is serviced first
	z.Step()
	z.SetLine(bus.NMI, true)

	z.Step()
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x0000)
	test.Equate(t, z.IntPending(z180.IntNMI), true)

	// the NMI follows on the next boundary
	z.Step()
	pc, _ = z.PreviousPC()
	test.Equate(t, pc, 0x0066)
}

func TestInterruptNames(t *testing.T) {
	test.Equate(t, z180.IntTrap.String(), "TRAP")
	test.Equate(t, z180.IntNMI.String(), "NMI")
	test.Equate(t, z180.IntIRQ0.String(), "INT0")
	test.Equate(t, z180.IntPRT1.String(), "PRT1")
	test.Equate(t, z180.IntASCI1.String(), "ASCI1")
}
