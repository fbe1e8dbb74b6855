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

func TestMMUReset(t *testing.T) {
	z, _, _ := newTestCPU(t)
	test.Equate(t, z.MapAddress(0x0000), 0x00000)
	test.Equate(t, z.MapAddress(0x8000), 0x08000)
	test.Equate(t, z.MapAddress(0xffff), 0x0ffff)
}

func TestMMUBankArea(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// bank area from page 4, common area 1 from page 15
	z.PortWrite(z180.CBAR, 0xf4)
	z.PortWrite(z180.BBR, 0x10)

	test.Equate(t, z.MapAddress(0x3fff), 0x03fff)
	test.Equate(t, z.MapAddress(0x4000), 0x14000)
	test.Equate(t, z.MapAddress(0xefff), 0x1efff)
	test.Equate(t, z.MapAddress(0xf000), 0x0f000)

	z.PortWrite(z180.CBR, 0x20)
	test.Equate(t, z.MapAddress(0xf000), 0x2f000)
	test.Equate(t, z.MapAddress(0x4000), 0x14000)
}

func TestMMUCommonPrecedence(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// a common base below the bank base resolves in favour of the common
	// area
	z.PortWrite(z180.CBAR, 0x48)
	z.PortWrite(z180.CBR, 0x20)
	z.PortWrite(z180.BBR, 0x10)

	test.Equate(t, z.MapAddress(0x3000), 0x03000)
	test.Equate(t, z.MapAddress(0x5000), 0x25000)
	test.Equate(t, z.MapAddress(0x9000), 0x29000)
}

func TestMMUWrap(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// the physical address space is 20 bits. translation wraps
	z.PortWrite(z180.CBR, 0xff)
	test.Equate(t, z.MapAddress(0xf000), 0x0e000)
}

func TestMMUExecution(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	mem.data[0x18000] = 0x99

	z.PortWrite(z180.CBAR, 0xf8)
	z.PortWrite(z180.BBR, 0x10)

	load(mem, 0,
		0x3a, 0x00, 0x80, // LD A,($8000)
		0x32, 0x01, 0x80, // LD ($8001),A
	)

	step(t, z, 12)
	test.Equate(t, z.Reg.AF.Hi(), 0x99)
	step(t, z, 13)
	test.Equate(t, mem.data[0x18001], 0x99)
}
