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

// dmaAddr writes a 20 bit physical address to a DMA address register
// triplet.
func dmaAddr(z *z180.Z180, low uint16, addr uint32) {
	z.PortWrite(low, uint8(addr))
	z.PortWrite(low+1, uint8(addr>>8))
	z.PortWrite(low+2, uint8(addr>>16))
}

func TestDMA0Burst(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	mem.data[0x1000] = 0x11
	mem.data[0x1001] = 0x22
	mem.data[0x1002] = 0x33
	mem.data[0x1003] = 0x44

	dmaAddr(z, z180.SAR0L, 0x01000)
	dmaAddr(z, z180.DAR0L, 0x02000)
	z.PortWrite(z180.BCR0L, 0x04)
	z.PortWrite(z180.BCR0H, 0x00)
	z.PortWrite(z180.DMODE, 0x02) // memory to memory, burst
	z.PortWrite(z180.DSTAT, 0x60) // enable channel 0

	// the burst owns the bus for 12 cycles a byte at the reset memory
	// wait setting. the remaining budget runs instructions
	test.Equate(t, z.Run(60), 60)

	test.Equate(t, mem.data[0x2000], 0x11)
	test.Equate(t, mem.data[0x2001], 0x22)
	test.Equate(t, mem.data[0x2002], 0x33)
	test.Equate(t, mem.data[0x2003], 0x44)
	test.Equate(t, z.PortRead(z180.BCR0L), 0)
	test.Equate(t, z.PortRead(z180.SAR0L), 0x04)
	test.Equate(t, z.PortRead(z180.DAR0L), 0x04)

	// terminal count disables the channel
	test.Equate(t, z.PortRead(z180.DSTAT)&0x40, 0)
	test.Equate(t, z.TEND(0), false)
}

func TestDMA0BurstBudget(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	for i := 0; i < 100; i++ {
		mem.data[0x1000+i] = uint8(i)
	}

	dmaAddr(z, z180.SAR0L, 0x01000)
	dmaAddr(z, z180.DAR0L, 0x02000)
	z.PortWrite(z180.BCR0L, 100)
	z.PortWrite(z180.DMODE, 0x02)
	z.PortWrite(z180.DSTAT, 0x60)

	// the transfer in flight when the budget runs out still completes
	test.Equate(t, z.Run(30), 36)
	test.Equate(t, z.PortRead(z180.BCR0L), 97)
	test.Equate(t, mem.data[0x2002], 2)
	test.Equate(t, mem.data[0x2003], 0)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x40, 0x40)
}

func TestDMA0CycleSteal(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	mem.data[0x1000] = 0xaa
	mem.data[0x1001] = 0xbb
	mem.data[0x1002] = 0xcc

	z.PortWrite(z180.DCNTL, 0x00)
	dmaAddr(z, z180.SAR0L, 0x01000)
	dmaAddr(z, z180.DAR0L, 0x02000)
	z.PortWrite(z180.BCR0L, 0x03)
	z.PortWrite(z180.DMODE, 0x00) // memory to memory, cycle steal
	z.PortWrite(z180.DSTAT, 0x60)

	// one transfer rides along with each instruction
	step(t, z, 9)
	test.Equate(t, z.PortRead(z180.BCR0L), 2)
	test.Equate(t, mem.data[0x2000], 0xaa)

	step(t, z, 9)
	step(t, z, 9)
	test.Equate(t, z.PortRead(z180.BCR0L), 0)
	test.Equate(t, mem.data[0x2002], 0xcc)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x40, 0)

	// the channel is silent once disabled
	step(t, z, 3)
}

func TestDMA0FromIO(t *testing.T) {
	z, mem, io := newTestCPU(t)
	io.ports[0x8001] = 0x5a

	z.PortWrite(z180.DCNTL, 0x00)
	dmaAddr(z, z180.SAR0L, 0x08001)
	dmaAddr(z, z180.DAR0L, 0x03000)
	z.PortWrite(z180.BCR0L, 0x02)
	z.PortWrite(z180.DMODE, 0x0c) // fixed I/O source to memory
	z.PortWrite(z180.DSTAT, 0x60)

	// a level sensitive request transfers on every step
	z.SetLine(bus.DREQ0, true)
	step(t, z, 9)
	test.Equate(t, mem.data[0x3000], 0x5a)
	test.Equate(t, z.PortRead(z180.BCR0L), 1)

	// without the request the channel marks time. TEND is visible while
	// the final transfer is held off
	z.SetLine(bus.DREQ0, false)
	step(t, z, 9)
	test.Equate(t, z.PortRead(z180.BCR0L), 1)
	test.Equate(t, z.TEND(0), true)

	// an edge sensitive request is consumed by the transfer
	z.PortWrite(z180.DCNTL, 0x04)
	z.SetLine(bus.DREQ0, true)
	step(t, z, 9)
	test.Equate(t, mem.data[0x3001], 0x5a)
	test.Equate(t, z.PortRead(z180.BCR0L), 0)
	test.Equate(t, z.LineState(bus.DREQ0), false)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x40, 0)
}

func TestDMA1ToIO(t *testing.T) {
	z, mem, io := newTestCPU(t)
	mem.data[0x1000] = 0xaa
	mem.data[0x1001] = 0xbb

	z.PortWrite(z180.DCNTL, 0x00) // memory to fixed I/O
	dmaAddr(z, z180.MAR1L, 0x01000)
	z.PortWrite(z180.IAR1L, 0x00)
	z.PortWrite(z180.IAR1H, 0x80)
	z.PortWrite(z180.BCR1L, 0x02)
	z.PortWrite(z180.DSTAT, 0x90) // enable channel 1

	z.SetLine(bus.DREQ1, true)
	step(t, z, 9)
	test.Equate(t, io.ports[0x8000], 0xaa)
	test.Equate(t, z.PortRead(z180.BCR1L), 1)

	step(t, z, 9)
	test.Equate(t, io.ports[0x8000], 0xbb)
	test.Equate(t, z.PortRead(z180.BCR1L), 0)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x80, 0)

	step(t, z, 3)
}

func TestDMA1FromIO(t *testing.T) {
	z, mem, io := newTestCPU(t)
	io.ports[0x9000] = 0x77

	z.PortWrite(z180.DCNTL, 0x0a) // fixed I/O to memory, edge sensitive
	dmaAddr(z, z180.MAR1L, 0x02000)
	z.PortWrite(z180.IAR1L, 0x00)
	z.PortWrite(z180.IAR1H, 0x90)
	z.PortWrite(z180.BCR1L, 0x02)
	z.PortWrite(z180.DSTAT, 0x90)

	// an edge sensitive request is consumed by the transfer
	z.SetLine(bus.DREQ1, true)
	step(t, z, 9)
	test.Equate(t, mem.data[0x2000], 0x77)
	test.Equate(t, z.LineState(bus.DREQ1), false)

	step(t, z, 3)
	test.Equate(t, z.PortRead(z180.BCR1L), 1)

	z.SetLine(bus.DREQ1, true)
	step(t, z, 9)
	test.Equate(t, mem.data[0x2001], 0x77)
	test.Equate(t, z.PortRead(z180.BCR1L), 0)
	test.Equate(t, z.PortRead(z180.DSTAT)&0x80, 0)
}

func TestDMAInterrupt(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0x4008, 0x00, 0x60) // DMA0 slot of the vector table

	z.Reg.I = 0x40
	z.Reg.IFF1 = true
	z.Reg.IFF2 = true

	z.PortWrite(z180.DCNTL, 0x00)
	dmaAddr(z, z180.SAR0L, 0x01000)
	dmaAddr(z, z180.DAR0L, 0x02000)
	z.PortWrite(z180.BCR0L, 0x01)
	z.PortWrite(z180.DMODE, 0x00)
	z.PortWrite(z180.DSTAT, 0x64) // DE0 with interrupt enable

	// the transfer completes during the first step and the interrupt is
	// taken at the next boundary
	step(t, z, 9)
	test.Equate(t, z.IntPending(z180.IntDMA0), true)

	z.Step()
	pc, _ := z.PreviousPC()
	test.Equate(t, pc, 0x6000)
}
