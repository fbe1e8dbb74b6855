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

	"github.com/zedemu/zed180/hardware/z180"
	"github.com/zedemu/zed180/test"
)

func TestRegisterRelocation(t *testing.T) {
	z, _, io := newTestCPU(t)
	io.ports[z180.TCR] = 0x55

	// move the internal block to $40. the old addresses fall through to
	// the external bus
	z.PortWrite(z180.IOCR, 0x40)
	z.PortWrite(0x0040|z180.TCR, 0x01)
	test.Equate(t, z.PortRead(0x0040|z180.TCR)&0x01, 0x01)
	test.Equate(t, z.PortRead(z180.TCR), 0x55)

	// moving the block back restores the internal decode
	z.PortWrite(0x0040|z180.IOCR, 0x00)
	test.Equate(t, z.PortRead(z180.TCR)&0x01, 0x01)
}

func TestRegisterMasks(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// only the vector base of IL is writable
	z.PortWrite(z180.IL, 0xff)
	test.Equate(t, z.PortRead(z180.IL), 0xe0)

	// the undefined bits of ITC read as ones and TRAP cannot be set
	z.PortWrite(z180.ITC, 0xff)
	test.Equate(t, z.PortRead(z180.ITC), 0x3f)

	// the refresh control register drops its unused bits
	z.PortWrite(z180.RCR, 0x81)
	test.Equate(t, z.PortRead(z180.RCR), 0xbd)
}

func TestASCIStub(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// the stub transmitter is always ready
	test.Equate(t, z.PortRead(z180.STAT0)&0x02, 0x02)

	// only the interrupt enable bits of the status register stick
	z.PortWrite(z180.STAT0, 0xff)
	test.Equate(t, z.PortRead(z180.STAT0), 0x0b)

	z.PortWrite(z180.TDR0, 0x41)
	test.Equate(t, z.PortRead(z180.TDR0), 0x41)
}

func TestNonexistentPorts(t *testing.T) {
	z, _, io := newTestCPU(t)
	io.ports[0x11] = 0x12

	// holes in the internal block read as all ones and never reach the
	// external bus value
	test.Equate(t, z.PortRead(0x11), 0xff)
	test.Equate(t, z.PortRead(0x35), 0xff)
	test.Equate(t, z.PortRead(0x3d), 0xff)
}

func TestFreeRunningCounter(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 5, 0x76) // HALT after five NOPs

	for i := 0; i < 5; i++ {
		z.Step()
	}
	test.Equate(t, z.PortRead(z180.FRC), 5)

	// the counter is read only
	z.PortWrite(z180.FRC, 0x00)
	test.Equate(t, z.PortRead(z180.FRC), 5)

	// a halted CPU stops counting
	z.Step()
	test.Equate(t, z.PortRead(z180.FRC), 6)
	z.Step()
	z.Step()
	test.Equate(t, z.PortRead(z180.FRC), 6)
}

func TestIOWaitStates(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0,
		0xdb, 0x90, // IN A,($90)
		0xd3, 0x90, // OUT ($90),A
		0xdb, 0x10, // IN A,($10) reaches the internal block
		0xdb, 0x90,
	)

	// the reset programming inserts four I/O wait states on external
	// accesses. internal registers never see wait states
	step(t, z, 13)
	step(t, z, 14)
	step(t, z, 9)

	z.PortWrite(z180.DCNTL, 0x00)
	step(t, z, 9)
}
