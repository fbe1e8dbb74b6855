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

package logger_test

import (
	"testing"

	"github.com/zedemu/zed180/logger"
	"github.com/zedemu/zed180/test"
)

func TestCentralLog(t *testing.T) {
	logger.Clear()

	w := &test.CompareWriter{}

	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")

	w.Clear()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Clear()
	logger.Tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Clear()
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Clear()
	logger.Tail(w, 0)
	test.Equate(t, w.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	w := &test.CompareWriter{}

	logger.Log(logger.Allow, "tag", "same detail")
	logger.Log(logger.Allow, "tag", "same detail")
	logger.Log(logger.Allow, "tag", "same detail")
	logger.Write(w)
	test.Equate(t, w.String(), "tag: same detail (repeat x3)\n")
}

type prohibit struct{}

func (p prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	w := &test.CompareWriter{}

	logger.Log(prohibit{}, "tag", "should not appear")
	logger.Write(w)
	test.Equate(t, w.String(), "")
}
