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

func TestTimerReload(t *testing.T) {
	z, _, _ := newTestCPU(t)

	z.PortWrite(z180.RLDR0L, 0x05)
	z.PortWrite(z180.RLDR0H, 0x00)
	z.PortWrite(z180.TCR, 0x01) // TDE0

	// 102 cycles of NOPs is five prescaler ticks. the first tick loads
	// the reload value and the rest count down
	test.Equate(t, z.Run(100), 102)
	test.Equate(t, z.PortRead(z180.TMDR0L), 0x01)
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0)

	// the sixth tick lands exactly on cycle 120. the counter underflows,
	// raises the flag and reloads
	test.Equate(t, z.Run(18), 18)
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0x40)
	test.Equate(t, z.PortRead(z180.TMDR0L), 0x05)

	// the flag cleared with the TCR/TMDR read pair above
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0)
}

func TestTimerFlagClear(t *testing.T) {
	z, _, _ := newTestCPU(t)

	z.PortWrite(z180.RLDR0L, 0x02)
	z.PortWrite(z180.RLDR0H, 0x00)
	z.PortWrite(z180.TCR, 0x01)

	// four ticks. the third underflows
	z.Run(80)
	z.PortWrite(z180.TCR, 0x00) // stop the timer, the flag survives

	// the flag reads back until a TCR read is followed by a TMDR read
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0x40)
	test.Equate(t, z.PortRead(z180.TMDR0L), 0x01)
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0)
}

func TestTimerChannel1(t *testing.T) {
	z, _, _ := newTestCPU(t)

	z.PortWrite(z180.RLDR1L, 0x02)
	z.PortWrite(z180.RLDR1H, 0x00)
	z.PortWrite(z180.TCR, 0x02) // TDE1

	// three ticks. load, decrement, underflow
	test.Equate(t, z.Run(60), 60)
	test.Equate(t, z.PortRead(z180.TCR)&0x80, 0x80)
	test.Equate(t, z.PortRead(z180.TMDR1H), 0x00)
	test.Equate(t, z.PortRead(z180.TMDR1L), 0x02)
	test.Equate(t, z.PortRead(z180.TCR)&0x80, 0)
}

func TestTimerLatch(t *testing.T) {
	z, _, _ := newTestCPU(t)

	z.PortWrite(z180.RLDR0L, 0x00)
	z.PortWrite(z180.RLDR0H, 0x02)
	z.PortWrite(z180.TCR, 0x01)

	// one tick. the counter holds the full reload value
	z.Run(20)
	test.Equate(t, z.PortRead(z180.TMDR0L), 0x00)

	// the low byte read latched the high byte. the counter moves on but
	// the next high byte read returns the latched value
	z.Run(40)
	test.Equate(t, z.PortRead(z180.TMDR0H), 0x02)
	test.Equate(t, z.PortRead(z180.TMDR0H), 0x01)
}

func TestTimerCounterWrite(t *testing.T) {
	z, _, _ := newTestCPU(t)

	// enabling zeroes the counter so the write below must follow it
	z.PortWrite(z180.TCR, 0x01)
	z.PortWrite(z180.TMDR0L, 0x03)
	z.PortWrite(z180.RLDR0L, 0x09)
	z.PortWrite(z180.RLDR0H, 0x00)

	// three ticks count the written value down to the underflow
	test.Equate(t, z.Run(60), 60)
	test.Equate(t, z.PortRead(z180.TCR)&0x40, 0x40)
	test.Equate(t, z.PortRead(z180.TMDR0L), 0x09)
}
