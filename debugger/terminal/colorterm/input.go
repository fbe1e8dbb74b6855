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

package colorterm

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/debugger/terminal"
	"github.com/zedemu/zed180/debugger/terminal/colorterm/easyterm"
	"github.com/zedemu/zed180/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 255)

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	for each iteration in the loop
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before we begin the loop
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(terminal.StyleEcho, fmt.Sprintf("%s%s%s", ansi.ClearLine, prompt.String(), string(input[:n])))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		// the rune reader lets us wait for input and signals at the same
		// time
		ct.reader.next <- true

		var rr readRune
		select {
		case rr = <-ct.reader.runes:
		case sig := <-events.Signal:
			ct.EasyTerm.TermPrint("\n\r")
			return "", events.SignalHandler(sig)
		}
		if rr.err != nil {
			return "", rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance character to end of completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
				if len(lastHistoryEntry) == n {
					newEntry = false
					for i := 0; i < n; i++ {
						if input[i] != lastHistoryEntry[i] {
							newEntry = true
							break
						}
					}
				}
			}

			// if input is not the same as the last history entry then
			// append a new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n\r")
			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			ct.reader.next <- true
			rr = <-ct.reader.runes
			if rr.err != nil {
				return "", rr.err
			}
			switch rr.r {
			case easyterm.EscCursor:
				ct.reader.next <- true
				rr = <-ct.reader.runes
				if rr.err != nil {
					return "", rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}
				case easyterm.EscDelete:
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				ct.EasyTerm.TermPrint(fmt.Sprintf("%c", rr.r))
				m := utf8.EncodeRune(er, rr.r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
