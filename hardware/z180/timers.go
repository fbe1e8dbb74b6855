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

// number of CPU cycles per timer tick
const timerPrescale = 20

// handleTimers advances the timer prescaler by the given number of CPU
// cycles.
func (z *Z180) handleTimers(cycles int) {
	for i := 0; i < cycles; i++ {
		z.clockTimers()
	}
}

// clockTimers advances the prescaler by one CPU cycle. The down counters
// tick on every twentieth call.
func (z *Z180) clockTimers() {
	z.timerCnt++
	if z.timerCnt < timerPrescale {
		return
	}
	z.timerCnt = 0

	if z.tcr&tcrTDE0 != 0 {
		z.tickTimer(0)
	}
	if z.tcr&tcrTDE1 != 0 {
		z.tickTimer(1)
	}

	if z.tcr&tcrTIE0 != 0 && z.tcr&tcrTIF0 != 0 {
		if z.Reg.IFF1 && !z.afterEI {
			z.pending[IntPRT0] = true
		}
	}
	if z.tcr&tcrTIE1 != 0 && z.tcr&tcrTIF1 != 0 {
		if z.Reg.IFF1 && !z.afterEI {
			z.pending[IntPRT1] = true
		}
	}
}

// tickTimer decrements a timer channel. A freshly enabled counter holds
// zero and loads the reload value on its first tick. A counter reaching
// zero on a decrement reloads immediately and raises the channel's
// underflow flag.
func (z *Z180) tickTimer(ch int) {
	if z.tmdr[ch] == 0 {
		z.tmdr[ch] = z.rldr[ch]
		if z.tmdr[ch] == 0 {
			z.flagTimer(ch)
		}
		return
	}

	z.tmdr[ch]--
	if z.tmdr[ch] == 0 {
		z.flagTimer(ch)
		z.tmdr[ch] = z.rldr[ch]
	}
}

func (z *Z180) flagTimer(ch int) {
	if ch == 0 {
		z.tcr |= tcrTIF0
	} else {
		z.tcr |= tcrTIF1
	}
}
