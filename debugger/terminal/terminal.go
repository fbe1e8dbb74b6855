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

package terminal

import (
	"os"
)

// UserInterrupt is the sentinel error pattern returned by TermRead() when
// input is interrupted by the user (with curated.Errorf).
const UserInterrupt = "user interrupt"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. Implementations should check
	// the ReadEvents channels for activity while waiting, where the context
	// they run in allows it.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive should return true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// handler for interrupt signals. the error returned by the handler is
	// returned by TermRead()
	SignalHandler func(os.Signal) error
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// Not all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all input and output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
