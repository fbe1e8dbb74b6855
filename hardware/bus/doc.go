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

// Package bus defines the contracts between the CPU core and the system it
// is embedded in: the program address space, the external I/O address space,
// the named input pins, and the optional daisy-chain collaborator used for
// mode 2 interrupt acknowledgement.
//
// The core owns nothing beyond these interfaces. A board package attaches
// concrete address spaces at construction and drives the input pins as its
// peripherals see fit.
package bus
