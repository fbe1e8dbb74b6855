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

// Package commandline provides the command name table used by the monitor
// and a tab completion implementation over it.
package commandline

import (
	"sort"
	"strings"
)

// Commands is the list of commands the monitor understands, in alphabetical
// order. The Usage string for each command is displayed by HELP.
type Commands struct {
	cmds  []string
	usage map[string]string
}

// NewCommands builds a Commands table. The usage map keys are the command
// names. Names are folded to upper case.
func NewCommands(usage map[string]string) *Commands {
	c := &Commands{
		usage: make(map[string]string, len(usage)),
	}
	for k, v := range usage {
		k = strings.ToUpper(k)
		c.cmds = append(c.cmds, k)
		c.usage[k] = v
	}
	sort.Strings(c.cmds)
	return c
}

// List of command names in alphabetical order.
func (c *Commands) List() []string {
	return c.cmds
}

// Usage string for the named command. The second return value is false if
// the command is not in the table.
func (c *Commands) Usage(name string) (string, bool) {
	u, ok := c.usage[strings.ToUpper(name)]
	return u, ok
}

// TabCompletion cycles through the command names matching the current input.
// It implements the terminal.TabCompletion interface.
type TabCompletion struct {
	cmds *Commands

	// match state from the previous Complete(). a second tab on the same
	// input cycles to the next match
	matches   []string
	idx       int
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete the input string. Only the first word of the input is completed;
// input that already has arguments is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	trimmed := strings.TrimLeft(input, " ")
	if strings.ContainsAny(trimmed, " ") {
		return input
	}

	// continuation of a previous completion cycles through the matches
	if len(tc.matches) > 0 && trimmed == tc.lastGuess {
		tc.idx = (tc.idx + 1) % len(tc.matches)
		tc.lastGuess = tc.matches[tc.idx]
		return tc.lastGuess
	}

	tc.matches = tc.matches[:0]
	prefix := strings.ToUpper(trimmed)
	for _, c := range tc.cmds.List() {
		if strings.HasPrefix(c, prefix) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		tc.Reset()
		return input
	}

	tc.idx = 0
	tc.lastGuess = tc.matches[0]
	return tc.lastGuess
}

// Reset the completion cycle. Call whenever input moves on from the word
// being completed.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.lastGuess = ""
}
