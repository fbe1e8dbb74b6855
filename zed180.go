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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/zedemu/zed180/cmdline"
	"github.com/zedemu/zed180/curated"
	"github.com/zedemu/zed180/debugger"
	"github.com/zedemu/zed180/debugger/terminal"
	"github.com/zedemu/zed180/debugger/terminal/colorterm"
	"github.com/zedemu/zed180/debugger/terminal/plainterm"
	"github.com/zedemu/zed180/hardware/board"
	"github.com/zedemu/zed180/logger"
	"github.com/zedemu/zed180/statsview"
	"github.com/zedemu/zed180/version"
)

// cycles to run between checks for an interrupt signal when free running.
const runSlice = 100000

// echoLog sends the application log to stderr, colorized when stderr is a
// real terminal.
func echoLog() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
		return
	}
	logger.SetEcho(os.Stderr, true)
}

func main() {
	md := &cmdline.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")
	md.AddDefaultSubMode("DEBUG")

	p, err := md.Parse()
	switch p {
	case cmdline.ParseHelp:
		os.Exit(0)
	case cmdline.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// newBoard creates a board and loads the image file named on the command
// line, if there is one.
func newBoard(md *cmdline.Modes, origin string) (*board.Board, error) {
	b, err := board.NewBoard()
	if err != nil {
		return nil, err
	}

	if len(md.RemainingArgs()) > 1 {
		return nil, curated.Errorf("too many arguments (%s)", strings.Join(md.RemainingArgs()[1:], " "))
	}

	if filename := md.GetArg(0); filename != "" {
		org, err := strconv.ParseUint(strings.TrimPrefix(origin, "0x"), 16, 20)
		if err != nil {
			return nil, curated.Errorf("not a valid load origin (%s)", origin)
		}
		if _, err := b.LoadImageFile(filename, uint32(org)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func debug(md *cmdline.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")
	initScript := md.AddString("initscript", "", "Lua script to run before the first prompt")
	origin := md.AddString("org", "0", "load address of the image file (hexadecimal)")
	log := md.AddBool("log", false, "echo the application log to stderr")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	b, err := newBoard(md, *origin)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(b)
	if err != nil {
		return err
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	return dbg.Start(trm, *initScript)
}

func run(md *cmdline.Modes) error {
	md.NewMode()

	origin := md.AddString("org", "0", "load address of the image file (hexadecimal)")
	log := md.AddBool("log", false, "echo the application log to stderr")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	if md.GetArg(0) == "" {
		return curated.Errorf("no image file specified")
	}

	b, err := newBoard(md, *origin)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for {
		b.CPU.Run(runSlice)
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}
	}
}

func perform(md *cmdline.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 10*time.Second, "run duration")
	origin := md.AddString("org", "0", "load address of the image file (hexadecimal)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the statsview server (%t)", statsview.Available()))
	log := md.AddBool("log", false, "echo the application log to stderr")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	b, err := newBoard(md, *origin)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	cycles := 0
	start := time.Now()
	deadline := start.Add(*duration)

	for time.Now().Before(deadline) {
		cycles += b.CPU.Run(runSlice)
		select {
		case <-intChan:
			fmt.Println("\r")
			deadline = time.Now()
		default:
		}
	}

	elapsed := time.Since(start).Seconds()
	fmt.Printf("%d cycles in %.02fs (%.02f MHz)\n", cycles, elapsed, float64(cycles)/elapsed/1e6)

	return nil
}

func showVersion(md *cmdline.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Println(version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
