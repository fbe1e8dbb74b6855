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

// MapAddress translates a logical 16 bit address to a physical 20 bit
// address according to the current MMU programming. The function has no
// side effects and can be called freely from a debugger.
func (z *Z180) MapAddress(addr uint16) uint32 {
	return z.mmu[addr>>12] | uint32(addr&0x0fff)
}

// rebuildMMU recomputes the per-page translation table. The common area 1
// test takes precedence over the bank area test, so a CBAR with the common
// base below the bank base resolves in favour of the common area.
func (z *Z180) rebuildMMU() {
	ba := uint16(z.cbar & 0x0f)
	ca := uint16(z.cbar >> 4)

	for page := uint16(0); page < 16; page++ {
		addr := uint32(page) << 12
		switch {
		case page >= ca:
			addr += uint32(z.cbr) << 12
		case page >= ba:
			addr += uint32(z.bbr) << 12
		}
		z.mmu[page] = addr & 0xfffff
	}
}
