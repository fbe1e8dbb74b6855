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
	"strings"
	"testing"

	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/hardware/z180"
	"github.com/zedemu/zed180/test"
)

// testMem is a flat 1MB physical address space.
type testMem struct {
	data [1 << 20]uint8
}

func (m *testMem) ReadByte(addr uint32) uint8 {
	return m.data[addr]
}

func (m *testMem) WriteByte(addr uint32, data uint8) {
	m.data[addr] = data
}

// testIO is a flat 64KB external port space. writes are counted so tests
// can assert on external bus traffic.
type testIO struct {
	ports  [0x10000]uint8
	writes int
}

func (p *testIO) ReadPort(port uint16) uint8 {
	return p.ports[port]
}

func (p *testIO) WritePort(port uint16, data uint8) {
	p.ports[port] = data
	p.writes++
}

// testDaisy is a single device on the INT0 acknowledge chain.
type testDaisy struct {
	state  bool
	vector uint8
}

func (d *testDaisy) State() bool {
	return d.state
}

func (d *testDaisy) Acknowledge() uint8 {
	return d.vector
}

func newTestCPU(t *testing.T) (*z180.Z180, *testMem, *testIO) {
	t.Helper()

	mem := &testMem{}
	io := &testIO{}
	z, err := z180.NewZ180(mem, io)
	if err != nil {
		t.Fatal(err)
	}

	return z, mem, io
}

func load(mem *testMem, addr uint32, prog ...uint8) {
	copy(mem.data[addr:], prog)
}

func TestNew(t *testing.T) {
	mem := &testMem{}
	io := &testIO{}

	_, err := z180.NewZ180(nil, io)
	test.ExpectedFailure(t, err)

	_, err = z180.NewZ180(mem, nil)
	test.ExpectedFailure(t, err)

	z, err := z180.NewZ180(mem, io)
	test.ExpectedSuccess(t, err)
	if z == nil {
		t.Fatal("NewZ180 returned nil without error")
	}
}

func TestReset(t *testing.T) {
	z, _, _ := newTestCPU(t)

	test.Equate(t, z.Reg.AF.Value(), 0x0040)
	test.Equate(t, z.Reg.PC.Value(), 0x0000)
	test.Equate(t, z.Reg.SP.Value(), 0x0000)
	test.Equate(t, z.Reg.IX.Value(), 0xffff)
	test.Equate(t, z.Reg.IY.Value(), 0xffff)
	test.Equate(t, z.Reg.IM, 0)
	test.Equate(t, z.Reg.IFF1, false)
	test.Equate(t, z.Reg.Halted, false)

	// logical space maps flat onto the bottom of physical space
	test.Equate(t, z.MapAddress(0x0000), 0x00000)
	test.Equate(t, z.MapAddress(0xffff), 0x0ffff)

	// registers that survive a reset
	z.PortWrite(z180.SAR0L, 0x34)
	z.PortWrite(z180.SAR0H, 0x12)
	z.Reset()
	test.Equate(t, z.PortRead(z180.SAR0L), 0x34)
	test.Equate(t, z.PortRead(z180.SAR0H), 0x12)
}

func TestString(t *testing.T) {
	z, _, _ := newTestCPU(t)
	if !strings.Contains(z.String(), "PC") {
		t.Errorf("register summary does not mention PC: %s", z.String())
	}
}

func TestPreviousPC(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0, 0x00, 0x00)

	z.Step()
	pc, ok := z.PreviousPC()
	test.Equate(t, ok, true)
	test.Equate(t, pc, 0x0000)

	z.Step()
	pc, _ = z.PreviousPC()
	test.Equate(t, pc, 0x0001)
}

func TestSnapshot(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0,
		0x3e, 0x10, // LD A,$10
		0x3c, // INC A
	)

	z.Step()
	snap := z.Snapshot()
	z.Step()

	test.Equate(t, z.Reg.AF.Hi(), 0x11)
	test.Equate(t, snap.Reg.AF.Hi(), 0x10)
	test.Equate(t, snap.Reg.PC.Value(), 0x0002)

	// the snapshot's state registry addresses the snapshot, not the
	// original
	v, ok := snap.Variable("PC")
	test.Equate(t, ok, true)
	v.Set(0x8000)
	test.Equate(t, snap.Reg.PC.Value(), 0x8000)
	test.Equate(t, z.Reg.PC.Value(), 0x0003)
}

func TestPlumb(t *testing.T) {
	z, mem, io := newTestCPU(t)
	load(mem, 0, 0x76) // HALT

	mem2 := &testMem{}
	load(mem2, 0, 0x00)
	z.Plumb(mem2, io)

	// the instruction comes from the new address space
	z.Step()
	test.Equate(t, z.Reg.Halted, false)
	test.Equate(t, z.Reg.PC.Value(), 0x0001)
}

type nopReader struct{}

func (r nopReader) ReadOpcode(_ uint32) uint8 {
	return 0x00
}

func TestOpcodeReader(t *testing.T) {
	z, mem, _ := newTestCPU(t)
	load(mem, 0, 0x76) // HALT

	// opcode fetches route through the attached reader, leaving the
	// memory interface for operand access only
	z.AttachOpcodeReader(nopReader{})
	z.Step()
	test.Equate(t, z.Reg.Halted, false)
	test.Equate(t, z.Reg.PC.Value(), 0x0001)
}

func TestSetLineBounds(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// out of range lines are ignored rather than panicking
	z.SetLine(bus.Line(-1), true)
	z.SetLine(bus.NumLines, true)
	test.Equate(t, z.LineState(bus.NumLines), false)

	z.SetLine(bus.DREQ0, true)
	test.Equate(t, z.LineState(bus.DREQ0), true)
	z.SetLine(bus.DREQ0, false)
	test.Equate(t, z.LineState(bus.DREQ0), false)
}
