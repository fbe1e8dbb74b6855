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

// Package z180 implements a cycle accurate model of the Zilog Z180
// microprocessor: the Z80 compatible instruction set with the Z180
// extensions, the on-chip MMU, the two programmable reload timers, the two
// DMA channels and the internal I/O register file through which all of these
// are programmed.
//
// The core is driven through the Run() function, which consumes a cycle
// budget cooperatively: pending interrupts are resolved at instruction
// boundaries, DMA channel 0 can hold the bus in burst mode, and the timers
// always advance by however many cycles the winning activity consumed.
//
// The core is single threaded. It owns its register state exclusively and
// reaches the outside world only through the interfaces in the bus package.
package z180
