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

import "github.com/zedemu/zed180/logger"

// Run the CPU for at least the number of cycles in the budget. The CPU
// always completes the event it starts so the cycles consumed can exceed
// the budget by the cost of the final instruction. The return value is the
// number of cycles actually consumed.
//
// Interrupts are evaluated once per instruction boundary, before the
// instruction and before any DMA activity.
func (z *Z180) Run(cycleBudget int) int {
	z.icount = cycleBudget

	for z.icount > 0 {
		c := z.checkInterrupts()
		z.icount -= c
		z.handleTimers(c)
		z.afterEI = false

		// a burst mode transfer on channel 0 owns the bus until terminal
		// count
		if z.dstat&dstatDME != 0 && z.dstat&dstatDE0 != 0 && z.dmode&dmodeMMOD != 0 {
			c = z.dma0(z.icount)
			z.icount -= c
			z.handleTimers(c)
			continue
		}

		c = z.executeOne()
		z.icount -= c
		z.handleTimers(c)

		if z.dstat&dstatDME != 0 {
			if z.dstat&dstatDE0 != 0 && z.dmode&dmodeMMOD != 0 {
				continue
			}

			// cycle stealing transfers interleave with instructions.
			// channel 0 has priority over channel 1
			c = z.dma0(6)
			z.icount -= c
			z.handleTimers(c)

			c = z.dma1()
			z.icount -= c
			z.handleTimers(c)
		}
	}

	return cycleBudget - z.icount
}

// Step the CPU over a single instruction boundary, servicing at most one
// interrupt and one round of DMA activity. The return value is the number
// of cycles consumed.
func (z *Z180) Step() int {
	consumed := 0

	c := z.checkInterrupts()
	consumed += c
	z.handleTimers(c)
	z.afterEI = false

	if z.dstat&dstatDME != 0 && z.dstat&dstatDE0 != 0 && z.dmode&dmodeMMOD != 0 {
		// a single burst transfer stands in for the instruction
		c = z.dma0(1)
		consumed += c
		z.handleTimers(c)
		return consumed
	}

	c = z.executeOne()
	consumed += c
	z.handleTimers(c)

	// a burst enabled by the instruction waits for the next step
	if z.dstat&dstatDME != 0 && (z.dstat&dstatDE0 == 0 || z.dmode&dmodeMMOD == 0) {
		c = z.dma0(6)
		consumed += c
		z.handleTimers(c)

		c = z.dma1()
		consumed += c
		z.handleTimers(c)
	}

	return consumed
}

// executeOne executes the instruction at PC, or burns idle cycles if the
// CPU is halted. The return value is the full cycle cost including wait
// states and conditional extras.
func (z *Z180) executeOne() int {
	z.ppc = uint32(z.Reg.PC.Value())

	// the halted loop still performs refresh cycles so the refresh and
	// free running counters keep moving
	if z.Reg.Halted {
		z.Reg.R++
		z.frc++
		return 3
	}

	z.frc++
	z.extraCycles = 0

	code := z.rop()
	opBase[code].do(z)

	return opBase[code].cycles + z.extraCycles
}

// enterHalt begins the low power halt state. PC is backed up so that a
// snapshot taken while halted resumes into the halt.
func (z *Z180) enterHalt() {
	z.Reg.PC.Dec()
	z.Reg.Halted = true
	z.haltBackstep = 1
}

// enterSleep begins the sleep state set up by the SLP instruction.
func (z *Z180) enterSleep() {
	z.Reg.PC.Dec()
	z.Reg.PC.Dec()
	z.Reg.Halted = true
	z.haltBackstep = 2
	logger.Log(logger.Allow, "z180", "sleep")
}

// leaveHalt releases a halted CPU, stepping PC past the halting
// instruction.
func (z *Z180) leaveHalt() {
	if !z.Reg.Halted {
		return
	}
	z.Reg.Halted = false
	z.Reg.PC.Add(z.haltBackstep)
	z.haltBackstep = 0
}
