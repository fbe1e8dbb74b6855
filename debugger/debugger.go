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

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/debugger/terminal"
	"github.com/zedemu/zed180/debugger/terminal/commandline"
	"github.com/zedemu/zed180/hardware/board"
	"github.com/zedemu/zed180/logger"
)

// Debugger is the interactive monitor for the Z180 development board.
type Debugger struct {
	board *board.Board
	term  terminal.Terminal

	events *terminal.ReadEvents

	// the running flag is cleared by the QUIT command
	running bool

	// scripts can call back into the input loop. the depth guard stops a
	// script from running itself forever
	scriptDepth int
}

// depth at which a script calling a script is refused.
const maxScriptDepth = 8

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(b *board.Board) (*Debugger, error) {
	if b == nil {
		return nil, curated.Errorf("debugger: no board")
	}
	return &Debugger{board: b}, nil
}

// Start the interactive input loop. The function returns when the user
// quits the monitor. The initScript, if not empty, is a Lua script run
// before the first prompt.
func (dbg *Debugger) Start(term terminal.Terminal, initScript string) error {
	if term == nil {
		return curated.Errorf("debugger: no terminal")
	}
	dbg.term = term

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(commands))

	// interrupt signals are received by the terminal during TermRead()
	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	logger.Log(logger.Allow, "monitor", "started")
	defer logger.Log(logger.Allow, "monitor", "ended")

	dbg.running = true

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printStyle(terminal.StyleError, "%v", err)
		}
	}

	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printStyle(terminal.StyleFeedback, "use QUIT to leave the monitor")
				continue
			}
			// input has been exhausted (a script piped into a plain
			// terminal, for example)
			return nil
		}

		if err := dbg.Line(input); err != nil {
			dbg.printStyle(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// prompt for the next line of input. The program counter doubles as a
// what-happens-next indicator.
func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: fmt.Sprintf("PC=%04x", dbg.board.CPU.Reg.PC.Value()),
	}
}

func (dbg *Debugger) printStyle(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// Line dispatches a single monitor command. It implements the script.Host
// interface.
func (dbg *Debugger) Line(input string) error {
	return dbg.parseCommand(input)
}

// Peek implements the script.Host interface.
func (dbg *Debugger) Peek(addr uint32) uint8 {
	return dbg.board.ReadByte(addr)
}

// Poke implements the script.Host interface.
func (dbg *Debugger) Poke(addr uint32, data uint8) {
	dbg.board.WriteByte(addr, data)
}

// Register implements the script.Host interface.
func (dbg *Debugger) Register(name string) (uint32, bool) {
	v, ok := dbg.board.CPU.Variable(name)
	if !ok {
		return 0, false
	}
	return v.Get(), true
}

// Print implements the script.Host interface.
func (dbg *Debugger) Print(s string) {
	dbg.printStyle(terminal.StyleFeedback, "%s", s)
}
