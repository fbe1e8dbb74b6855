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
	"bufio"
	"io"
)

// runeReader decouples the terminal's blocking read from the TermRead()
// loop so that interrupt signals can be serviced while waiting for a
// keypress.
type runeReader struct {
	runes chan readRune
	next  chan bool
}

type readRune struct {
	r   rune
	err error
}

func initRuneReader(r io.Reader) runeReader {
	rr := runeReader{
		runes: make(chan readRune),
		next:  make(chan bool),
	}

	br := bufio.NewReader(r)
	go func() {
		for range rr.next {
			r, _, err := br.ReadRune()
			rr.runes <- readRune{r: r, err: err}
		}
	}()

	return rr
}
