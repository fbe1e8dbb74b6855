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

package registers_test

import (
	"testing"

	"github.com/zedemu/zed180/hardware/z180/registers"
	"github.com/zedemu/zed180/test"
)

func TestPair(t *testing.T) {
	p := registers.NewPair(0x1234, "BC")

	test.Equate(t, p.Value(), 0x1234)
	test.Equate(t, p.Hi(), 0x12)
	test.Equate(t, p.Lo(), 0x34)
	test.Equate(t, p.Label(), "BC")
	test.Equate(t, p.String(), "BC=0x1234")

	p.SetHi(0xab)
	test.Equate(t, p.Value(), 0xab34)
	p.SetLo(0xcd)
	test.Equate(t, p.Value(), 0xabcd)

	p.Load(0xffff)
	p.Inc()
	test.Equate(t, p.Value(), 0x0000)
	p.Dec()
	test.Equate(t, p.Value(), 0xffff)
	p.Add(2)
	test.Equate(t, p.Value(), 0x0001)
}

func TestExchange(t *testing.T) {
	f := registers.NewFile()

	f.AF.Load(0x1111)
	f.BC.Load(0x2222)
	f.DE.Load(0x3333)
	f.HL.Load(0x4444)
	f.AF2.Load(0xaaaa)
	f.BC2.Load(0xbbbb)
	f.DE2.Load(0xcccc)
	f.HL2.Load(0xdddd)

	f.ExchangeAF()
	test.Equate(t, f.AF.Value(), 0xaaaa)
	test.Equate(t, f.AF2.Value(), 0x1111)

	// EX AF,AF' must not touch the other pairs
	test.Equate(t, f.BC.Value(), 0x2222)

	f.Exchange()
	test.Equate(t, f.BC.Value(), 0xbbbb)
	test.Equate(t, f.DE.Value(), 0xcccc)
	test.Equate(t, f.HL.Value(), 0xdddd)
	test.Equate(t, f.BC2.Value(), 0x2222)
	test.Equate(t, f.DE2.Value(), 0x3333)
	test.Equate(t, f.HL2.Value(), 0x4444)

	// labels stay with their slots
	test.Equate(t, f.BC.Label(), "BC")
	test.Equate(t, f.BC2.Label(), "BC'")
}

func TestRefresh(t *testing.T) {
	f := registers.NewFile()

	f.R = 0x7f
	f.R2 = 0x80
	test.Equate(t, f.Refresh(), 0xff)

	// the live counter wraps within 7 bits
	f.R++
	test.Equate(t, f.Refresh(), 0x80)

	f.R2 = 0x00
	f.R = 0xc5
	test.Equate(t, f.Refresh(), 0x45)
}
