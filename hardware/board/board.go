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

package board

import (
	"io"
	"os"

	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/hardware/z180"
	"github.com/zedemu/zed180/logger"
)

// RAMSize is the full 20 bit physical address range of the Z180.
const RAMSize = 1 << 20

// PortsSize is the full 16 bit external I/O address range.
const PortsSize = 1 << 16

// Board is a Z180 with a flat 1MB RAM and a flat file of 64KB external
// ports. It implements the bus.Memory and bus.IO interfaces consumed by the
// CPU.
type Board struct {
	CPU *z180.Z180

	RAM   []uint8
	Ports []uint8
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard() (*Board, error) {
	b := &Board{
		RAM:   make([]uint8, RAMSize),
		Ports: make([]uint8, PortsSize),
	}

	var err error
	b.CPU, err = z180.NewZ180(b, b)
	if err != nil {
		return nil, curated.Errorf("board: %v", err)
	}

	return b, nil
}

// Snapshot makes a copy of the board and the CPU in their current state.
func (b *Board) Snapshot() *Board {
	n := &Board{
		RAM:   make([]uint8, len(b.RAM)),
		Ports: make([]uint8, len(b.Ports)),
	}
	copy(n.RAM, b.RAM)
	copy(n.Ports, b.Ports)
	n.CPU = b.CPU.Snapshot()
	n.CPU.Plumb(n, n)
	return n
}

// Reset the board. RAM and port contents are untouched, matching hardware
// where only the CPU sees the reset pin.
func (b *Board) Reset() {
	b.CPU.Reset()
}

// ReadByte implements the bus.Memory interface.
func (b *Board) ReadByte(address uint32) uint8 {
	return b.RAM[address&(RAMSize-1)]
}

// WriteByte implements the bus.Memory interface.
func (b *Board) WriteByte(address uint32, data uint8) {
	b.RAM[address&(RAMSize-1)] = data
}

// ReadPort implements the bus.IO interface.
func (b *Board) ReadPort(port uint16) uint8 {
	return b.Ports[port]
}

// WritePort implements the bus.IO interface.
func (b *Board) WritePort(port uint16, data uint8) {
	b.Ports[port] = data
}

// LoadImage copies a raw binary image into RAM at the given physical
// address, returning the number of bytes loaded. Images larger than the
// remaining RAM are an error.
func (b *Board) LoadImage(r io.Reader, origin uint32) (int, error) {
	if origin >= RAMSize {
		return 0, curated.Errorf("board: image origin %05x outside RAM", origin)
	}

	n, err := io.ReadFull(r, b.RAM[origin:])
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			return 0, curated.Errorf("board: empty image")
		}
		return n, curated.Errorf("board: %v", err)
	}

	// ReadFull succeeding in full means the image filled RAM to the top and
	// may have been truncated
	if err == nil {
		if _, e := r.Read(make([]uint8, 1)); e != io.EOF {
			return n, curated.Errorf("board: image too large for RAM at %05x", origin)
		}
	}

	return n, nil
}

// LoadImageFile is a convenience for LoadImage with a named file.
func (b *Board) LoadImageFile(filename string, origin uint32) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, curated.Errorf("board: %v", err)
	}
	defer f.Close()

	n, err := b.LoadImage(f, origin)
	if err != nil {
		return n, err
	}

	logger.Logf(logger.Allow, "board", "%s: %d bytes at %05x", filename, n, origin)
	return n, nil
}
