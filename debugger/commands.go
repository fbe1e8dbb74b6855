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
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/debugger/script"
	"github.com/zedemu/zed180/debugger/terminal"
	"github.com/zedemu/zed180/debugger/terminal/commandline"
	"github.com/zedemu/zed180/hardware/bus"
	"github.com/zedemu/zed180/logger"
)

// the table of monitor commands. all numeric arguments are hexadecimal.
var commands = commandline.NewCommands(map[string]string{
	"HELP":   "HELP [command] - list commands or show command usage",
	"QUIT":   "QUIT - leave the monitor",
	"RESET":  "RESET - reset the CPU and on-chip peripherals",
	"STEP":   "STEP [n] - execute n instructions (default 1)",
	"RUN":    "RUN [cycles] - run for a number of cycles (default 100000)",
	"REGS":   "REGS - show the register file",
	"SET":    "SET register value - poke a named register",
	"PEEK":   "PEEK address [n] - show n bytes of physical memory (default 16)",
	"POKE":   "POKE address value [value...] - write bytes to physical memory",
	"IN":     "IN port - read an I/O port (internal registers included)",
	"OUT":    "OUT port value - write an I/O port (internal registers included)",
	"LINE":   "LINE name [0|1] - show or drive a named input pin",
	"PORTS":  "PORTS - show the on-chip peripheral registers",
	"SAVE":   "SAVE file - write a save state",
	"LOAD":   "LOAD file - restore a save state",
	"SCRIPT": "SCRIPT file - run a Lua script",
	"VIZ":    "VIZ file - write a dot graph of the register file",
	"LOG":    "LOG - show the tail of the application log",
})

// number of cycles for a RUN command with no argument.
const defaultRunCycles = 100000

// cycles in a single slice of a long RUN. interrupt signals are checked
// between slices.
const runSlice = 10000

// parseNumber interprets a numeric monitor argument. All numbers are
// hexadecimal; 0x and $ prefixes are tolerated.
func parseNumber(s string, bits int) (uint64, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(t, 16, bits)
	if err != nil {
		return 0, curated.Errorf("not a %d bit hexadecimal number (%s)", bits, s)
	}
	return v, nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tok := strings.Fields(input)
	if len(tok) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tok[0])
	args := tok[1:]

	switch cmd {
	case "HELP":
		if len(args) > 0 {
			u, ok := commands.Usage(args[0])
			if !ok {
				return curated.Errorf("no such command (%s)", args[0])
			}
			dbg.printStyle(terminal.StyleHelp, "%s", u)
			return nil
		}
		dbg.printStyle(terminal.StyleHelp, "%s", strings.Join(commands.List(), " "))

	case "QUIT":
		dbg.running = false

	case "RESET":
		dbg.board.Reset()
		dbg.printStyle(terminal.StyleFeedback, "machine reset")

	case "STEP":
		n := uint64(1)
		if len(args) > 0 {
			var err error
			if n, err = parseNumber(args[0], 16); err != nil {
				return err
			}
		}
		cycles := 0
		for i := uint64(0); i < n; i++ {
			cycles += dbg.board.CPU.Step()
		}
		dbg.printStyle(terminal.StyleCPUStep, "%s", dbg.board.CPU.String())
		dbg.printStyle(terminal.StyleFeedback, "%d cycles", cycles)

	case "RUN":
		n := uint64(defaultRunCycles)
		if len(args) > 0 {
			var err error
			if n, err = parseNumber(args[0], 32); err != nil {
				return err
			}
		}
		dbg.printStyle(terminal.StyleFeedback, "%d cycles consumed", dbg.runCycles(int(n)))
		dbg.printStyle(terminal.StyleCPUStep, "%s", dbg.board.CPU.String())

	case "REGS":
		dbg.printStyle(terminal.StyleInstrument, "%s", dbg.board.CPU.String())

	case "SET":
		if len(args) != 2 {
			return curated.Errorf("SET needs a register and a value")
		}
		v, ok := dbg.board.CPU.Variable(args[0])
		if !ok {
			return curated.Errorf("no such register (%s)", args[0])
		}
		val, err := parseNumber(args[1], 32)
		if err != nil {
			return err
		}
		v.Set(uint32(val))
		dbg.printStyle(terminal.StyleInstrument, "%s = %0*x", v.Name, (v.Bits+3)/4, v.Get())

	case "PEEK":
		if len(args) < 1 {
			return curated.Errorf("PEEK needs an address")
		}
		addr, err := parseNumber(args[0], 20)
		if err != nil {
			return err
		}
		n := uint64(16)
		if len(args) > 1 {
			if n, err = parseNumber(args[1], 16); err != nil {
				return err
			}
		}
		dbg.dumpMemory(uint32(addr), int(n))

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf("POKE needs an address and at least one value")
		}
		addr, err := parseNumber(args[0], 20)
		if err != nil {
			return err
		}
		for i, a := range args[1:] {
			v, err := parseNumber(a, 8)
			if err != nil {
				return err
			}
			dbg.board.WriteByte(uint32(addr)+uint32(i), uint8(v))
		}

	case "IN":
		if len(args) != 1 {
			return curated.Errorf("IN needs a port")
		}
		port, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		dbg.printStyle(terminal.StyleInstrument, "%04x = %02x", port, dbg.board.CPU.PortRead(uint16(port)))

	case "OUT":
		if len(args) != 2 {
			return curated.Errorf("OUT needs a port and a value")
		}
		port, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		v, err := parseNumber(args[1], 8)
		if err != nil {
			return err
		}
		dbg.board.CPU.PortWrite(uint16(port), uint8(v))

	case "LINE":
		if len(args) < 1 {
			return curated.Errorf("LINE needs a pin name")
		}
		line, ok := bus.LineByName(args[0])
		if !ok {
			return curated.Errorf("no such pin (%s)", args[0])
		}
		if len(args) > 1 {
			v, err := parseNumber(args[1], 1)
			if err != nil {
				return err
			}
			dbg.board.CPU.SetLine(line, v != 0)
		}
		state := 0
		if dbg.board.CPU.LineState(line) {
			state = 1
		}
		dbg.printStyle(terminal.StyleInstrument, "%s = %d", line, state)

	case "PORTS":
		dbg.printStyle(terminal.StyleInstrument, "%s", dbg.board.CPU.ControlRegisters())

	case "SAVE":
		if len(args) != 1 {
			return curated.Errorf("SAVE needs a filename")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf("save: %v", err)
		}
		defer f.Close()
		if err := dbg.board.CPU.SaveState(f); err != nil {
			return err
		}
		dbg.printStyle(terminal.StyleFeedback, "state saved to %s", args[0])

	case "LOAD":
		if len(args) != 1 {
			return curated.Errorf("LOAD needs a filename")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return curated.Errorf("load: %v", err)
		}
		defer f.Close()
		if err := dbg.board.CPU.LoadState(f); err != nil {
			return err
		}
		dbg.printStyle(terminal.StyleFeedback, "state loaded from %s", args[0])

	case "SCRIPT":
		if len(args) != 1 {
			return curated.Errorf("SCRIPT needs a filename")
		}
		return dbg.runScript(args[0])

	case "VIZ":
		if len(args) != 1 {
			return curated.Errorf("VIZ needs a filename")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf("viz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &dbg.board.CPU.Reg)
		dbg.printStyle(terminal.StyleFeedback, "register graph written to %s", args[0])

	case "LOG":
		s := strings.Builder{}
		logger.Tail(&s, 20)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if l != "" {
				dbg.printStyle(terminal.StyleLog, "%s", l)
			}
		}

	default:
		return curated.Errorf("no such command (%s)", cmd)
	}

	return nil
}

// runCycles runs the CPU in slices, checking for an interrupt signal
// between slices.
func (dbg *Debugger) runCycles(total int) int {
	consumed := 0
	for consumed < total {
		slice := runSlice
		if r := total - consumed; r < slice {
			slice = r
		}
		consumed += dbg.board.CPU.Run(slice)

		if dbg.events == nil {
			continue
		}
		select {
		case <-dbg.events.Signal:
			dbg.printStyle(terminal.StyleFeedback, "interrupted")
			return consumed
		default:
		}
	}
	return consumed
}

// dumpMemory prints n bytes of physical memory in rows of sixteen.
func (dbg *Debugger) dumpMemory(addr uint32, n int) {
	for n > 0 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%05x ", addr))
		for i := 0; i < 16 && n > 0; i++ {
			s.WriteString(fmt.Sprintf(" %02x", dbg.board.ReadByte(addr)))
			addr++
			n--
		}
		dbg.printStyle(terminal.StyleInstrument, "%s", s.String())
	}
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf("script: scripts nested too deeply")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()
	return script.RunFile(dbg, filename)
}
