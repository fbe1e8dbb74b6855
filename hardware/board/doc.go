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

// Package board is a minimal development board for the Z180 core: flat RAM
// across the full 20 bit physical address space and a flat file of external
// I/O ports. Raw binary images can be loaded anywhere into RAM.
//
// The board has no peripheral hardware of its own. The on-chip peripherals
// of the Z180 are part of the CPU core and reads/writes in the external I/O
// space land in the port file where they can be inspected.
package board
