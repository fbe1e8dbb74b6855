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

// Package script runs Lua scripts against the monitor. A script sees the
// monitor through a small set of global functions:
//
//	line(s)       submit s to the monitor as though it had been typed
//	peek(addr)    byte at physical address addr
//	poke(addr, v) write v to physical address addr
//	reg(name)     value of the named register
//	print(...)    redirected to the monitor's terminal
//
// Errors from the line() function terminate the script.
package script

import (
	"fmt"
	"strings"

	"github.com/zedemu/zed180/curated"
	lua "github.com/yuin/gopher-lua"
)

// Host is the view of the monitor the script package requires.
type Host interface {
	// Line dispatches a single monitor command.
	Line(input string) error

	// Peek the byte at a physical address.
	Peek(addr uint32) uint8

	// Poke a byte to a physical address.
	Poke(addr uint32, data uint8)

	// Register returns the value of a named register. The second return
	// value is false if the name matches no register.
	Register(name string) (uint32, bool)

	// Print a line of script output.
	Print(s string)
}

// RunFile runs the Lua script in the named file against the host.
func RunFile(host Host, filename string) error {
	l := newState(host)
	defer l.Close()

	if err := l.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunString runs the Lua fragment against the host.
func RunString(host Host, src string) error {
	l := newState(host)
	defer l.Close()

	if err := l.DoString(src); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

func newState(host Host) *lua.LState {
	l := lua.NewState()

	l.SetGlobal("line", l.NewFunction(func(l *lua.LState) int {
		if err := host.Line(l.CheckString(1)); err != nil {
			l.RaiseError("%v", err)
		}
		return 0
	}))

	l.SetGlobal("peek", l.NewFunction(func(l *lua.LState) int {
		l.Push(lua.LNumber(host.Peek(uint32(l.CheckInt64(1)))))
		return 1
	}))

	l.SetGlobal("poke", l.NewFunction(func(l *lua.LState) int {
		host.Poke(uint32(l.CheckInt64(1)), uint8(l.CheckInt64(2)))
		return 0
	}))

	l.SetGlobal("reg", l.NewFunction(func(l *lua.LState) int {
		v, ok := host.Register(l.CheckString(1))
		if !ok {
			l.RaiseError("no such register (%s)", l.CheckString(1))
		}
		l.Push(lua.LNumber(v))
		return 1
	}))

	l.SetGlobal("print", l.NewFunction(func(l *lua.LState) int {
		s := strings.Builder{}
		for i := 1; i <= l.GetTop(); i++ {
			if i > 1 {
				s.WriteString("\t")
			}
			s.WriteString(fmt.Sprintf("%v", l.Get(i)))
		}
		host.Print(s.String())
		return 0
	}))

	return l
}
