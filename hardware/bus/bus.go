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

package bus

// Memory defines the operations for the program address space as seen from
// the core. Addresses are physical, after MMU translation, and are 20 bits
// wide. Implementations must tolerate any address in the 20 bit range.
//
// Access never fails. A board that decodes only part of the address range
// should return 0xff for unmapped reads and discard unmapped writes.
type Memory interface {
	ReadByte(address uint32) uint8
	WriteByte(address uint32, data uint8)
}

// OpcodeReader is an optional extension to the Memory interface. When a board
// distinguishes opcode fetches from data reads (for example, to implement
// fetch-side overlays) it can supply an OpcodeReader and the core will use it
// for every M1 fetch. Data reads continue through the Memory interface.
type OpcodeReader interface {
	ReadOpcode(address uint32) uint8
}

// IO defines the operations for the external I/O address space. Ports are 16
// bits wide. The low 6 bits of the port number overlap the core's internal
// register file; external access still happens for those ports, with the
// internal register overriding the value read.
//
// As with Memory, access never fails.
type IO interface {
	ReadPort(port uint16) uint8
	WritePort(port uint16, data uint8)
}

// DaisyChain resolves interrupt priority for peripheral devices chained on
// the INT0 pin. The collaborator is optional. When attached, the core asks
// for the effective line state whenever the INT0 input changes and for the
// service vector byte when acknowledging a mode 2 interrupt.
type DaisyChain interface {
	// State returns the effective state of the shared INT0 line.
	State() bool

	// Acknowledge the highest priority device in the chain. The returned
	// byte is the low byte of the mode 2 vector table entry.
	Acknowledge() uint8
}
