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

package commandline_test

import (
	"testing"

	"github.com/zedemu/zed180/debugger/terminal/commandline"
	"github.com/zedemu/zed180/test"
)

func TestTabCompletion(t *testing.T) {
	cmds := commandline.NewCommands(map[string]string{
		"STEP": "step instructions",
		"SET":  "set a register",
		"SAVE": "save state",
		"RUN":  "run",
	})

	tc := commandline.NewTabCompletion(cmds)

	// matches cycle in alphabetical order and wrap around
	test.Equate(t, tc.Complete("s"), "SAVE")
	test.Equate(t, tc.Complete("SAVE"), "SET")
	test.Equate(t, tc.Complete("SET"), "STEP")
	test.Equate(t, tc.Complete("STEP"), "SAVE")

	// new input restarts the match
	tc.Reset()
	test.Equate(t, tc.Complete("st"), "STEP")

	// no match means no change
	tc.Reset()
	test.Equate(t, tc.Complete("x"), "x")

	// a command with arguments is left alone
	test.Equate(t, tc.Complete("STEP 5"), "STEP 5")
}

func TestCommands(t *testing.T) {
	cmds := commandline.NewCommands(map[string]string{
		"quit": "quit the monitor",
	})

	// names fold to upper case
	test.Equate(t, cmds.List()[0], "QUIT")

	u, ok := cmds.Usage("Quit")
	test.Equate(t, ok, true)
	test.Equate(t, u, "quit the monitor")

	_, ok = cmds.Usage("XYZ")
	test.Equate(t, ok, false)
}
