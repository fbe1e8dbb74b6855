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

package board_test

import (
	"bytes"
	"testing"

	"github.com/zedemu/zed180/hardware/board"
	"github.com/zedemu/zed180/hardware/z180"
	"github.com/zedemu/zed180/test"
)

func TestLoadImage(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	n, err := b.LoadImage(bytes.NewReader([]byte{0x3e, 0x12, 0x76}), 0x0100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 3)
	test.Equate(t, b.RAM[0x0100], 0x3e)
	test.Equate(t, b.RAM[0x0102], 0x76)

	// an image at the very top of RAM is fine, one beyond it is not
	_, err = b.LoadImage(bytes.NewReader([]byte{0xff}), board.RAMSize-1)
	test.ExpectedSuccess(t, err)
	_, err = b.LoadImage(bytes.NewReader([]byte{0xff}), board.RAMSize)
	test.ExpectedFailure(t, err)

	_, err = b.LoadImage(bytes.NewReader(nil), 0)
	test.ExpectedFailure(t, err)
}

func TestLoadImageTooLarge(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.LoadImage(bytes.NewReader(make([]byte, 3)), board.RAMSize-2)
	test.ExpectedFailure(t, err)
}

// the program runs from the reset vector and leaves a value in the port
// file.
func TestRunImage(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.LoadImage(bytes.NewReader([]byte{
		0x3e, 0x5a, // LD A,$5a
		0x01, 0x80, 0x00, // LD BC,$0080
		0xed, 0x79, // OUT (C),A
		0x76, // HALT
	}), 0)
	test.ExpectedSuccess(t, err)

	b.CPU.Run(100)
	test.Equate(t, b.Ports[0x0080], 0x5a)
	test.Equate(t, b.CPU.Reg.Halted, true)
}

// reset the core; write reload register 0 with 5; enable timer 0; run for
// exactly 20*(5+1) cycles; the underflow flag is set and the live counter
// reads back as 5.
func TestTimerScenario(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	// RAM is zeroed so the CPU executes NOPs throughout
	b.Reset()
	b.CPU.PortWrite(z180.RLDR0L, 0x05)
	b.CPU.PortWrite(z180.RLDR0H, 0x00)
	b.CPU.PortWrite(z180.TCR, 0x01)

	test.Equate(t, b.CPU.Run(20*(5+1)), 120)
	test.Equate(t, b.CPU.PortRead(z180.TCR)&0x40, 0x40)
	test.Equate(t, b.CPU.PortRead(z180.TMDR0L), 0x05)
}

// DMA channel 0 memory to memory, increment/increment, cycle steal. the
// four source bytes arrive in order, the pointers advance by four and the
// enable bit clears on terminal count.
func TestDMAScenario(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	copy(b.RAM[0x1000:], []byte{0x11, 0x22, 0x33, 0x44})

	b.CPU.PortWrite(z180.SAR0L, 0x00)
	b.CPU.PortWrite(z180.SAR0H, 0x10)
	b.CPU.PortWrite(z180.SAR0B, 0x00)
	b.CPU.PortWrite(z180.DAR0L, 0x00)
	b.CPU.PortWrite(z180.DAR0H, 0x20)
	b.CPU.PortWrite(z180.DAR0B, 0x00)
	b.CPU.PortWrite(z180.BCR0L, 0x04)
	b.CPU.PortWrite(z180.BCR0H, 0x00)
	b.CPU.PortWrite(z180.DMODE, 0x00)
	b.CPU.PortWrite(z180.DSTAT, 0x60)

	for i := 0; b.CPU.PortRead(z180.DSTAT)&0x40 != 0; i++ {
		if i > 100 {
			t.Fatal("transfer did not complete")
		}
		b.CPU.Step()
	}

	test.Equate(t, b.RAM[0x2000], 0x11)
	test.Equate(t, b.RAM[0x2001], 0x22)
	test.Equate(t, b.RAM[0x2002], 0x33)
	test.Equate(t, b.RAM[0x2003], 0x44)
	test.Equate(t, b.CPU.PortRead(z180.SAR0L), 0x04)
	test.Equate(t, b.CPU.PortRead(z180.DAR0L), 0x04)
	test.Equate(t, b.CPU.PortRead(z180.DSTAT)&0x40, 0)
}

func TestSnapshot(t *testing.T) {
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal(err)
	}

	_, err = b.LoadImage(bytes.NewReader([]byte{
		0x3e, 0x12, // LD A,$12
		0x32, 0x00, 0x40, // LD ($4000),A
		0x76, // HALT
	}), 0)
	test.ExpectedSuccess(t, err)

	b.CPU.Step()
	n := b.Snapshot()
	b.CPU.Run(100)
	test.Equate(t, b.RAM[0x4000], 0x12)

	// the copy resumes from the point of the snapshot and writes to its own
	// RAM
	test.Equate(t, n.RAM[0x4000], 0)
	n.CPU.Run(100)
	test.Equate(t, n.RAM[0x4000], 0x12)
	test.Equate(t, n.CPU.Reg.Halted, true)
}
