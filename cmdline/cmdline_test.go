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

package cmdline_test

import (
	"os"
	"testing"

	"github.com/zedemu/zed180/cmdline"
	"github.com/zedemu/zed180/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}
	if md.Mode() != "" {
		t.Errorf("did not expect to see mode as result of Parse()")
	}
	if md.Path() != "" {
		t.Errorf("did not expect to see modes in mode path")
	}
}

func TestNoModes(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"--test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	if *testFlag != false {
		t.Error("expected *testFlag to be false before Parse()")
	}

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}
	if md.Mode() != "" {
		t.Errorf("did not expect to see mode as result of Parse()")
	}

	if *testFlag != true {
		t.Error("expected *testFlag to be true after Parse()")
	}

	if len(md.RemainingArgs()) != 2 {
		t.Error("expected number of RemainingArgs() to be 2 after Parse()")
	}
}

func TestUnrecognisedFlag(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"--wibble"})

	p, err := md.Parse()
	if p != cmdline.ParseError {
		t.Error("expected ParseError return value from Parse()")
	}
	if err == nil {
		t.Error("expected error from Parse()")
	}
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := cmdline.Modes{Output: tw}
	md.NewArgs([]string{"--help"})

	p, _ := md.Parse()
	if p != cmdline.ParseHelp {
		t.Error("expected ParseHelp return value from Parse()")
	}

	if !tw.Compare("No help available\n") {
		t.Error("unexpected help message (wanted 'No help available')")
	}
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := cmdline.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	if p != cmdline.ParseHelp {
		t.Error("expected ParseHelp return value from Parse()")
	}

	if !tw.Contains("--test") {
		t.Error("expected flag information in help message")
	}
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := cmdline.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	if p != cmdline.ParseHelp {
		t.Error("expected ParseHelp return value from Parse()")
	}

	if !tw.Contains("available sub-modes: A, B, C") {
		t.Error("expected sub-mode information in help message")
	}
	if !tw.Contains("default: A") {
		t.Error("expected default sub-mode information in help message")
	}

	// asking for help should not advance the mode path
	if md.Path() != "" {
		t.Errorf("did not expect to see modes in mode path")
	}
}

func TestSubModes(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"b"})
	md.AddSubModes("A", "B", "C")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}
	if md.Mode() != "B" {
		t.Errorf("expected mode B, got %s", md.Mode())
	}
	if md.Path() != "B" {
		t.Errorf("expected path B, got %s", md.Path())
	}
}

func TestDefaultSubMode(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"somefile.bin"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if p != cmdline.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}

	// unrecognised argument selects the default sub-mode and is left for the
	// new mode to pick up
	if md.Mode() != "RUN" {
		t.Errorf("expected mode RUN, got %s", md.Mode())
	}

	md.NewMode()
	p, err = md.Parse()
	if p != cmdline.ParseContinue {
		t.Error("expected ParseContinue")
	}
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}
	if md.GetArg(0) != "somefile.bin" {
		t.Errorf("expected somefile.bin as first argument, got %s", md.GetArg(0))
	}
}

func TestNestedSubModes(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug", "script", "file.lua"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if p != cmdline.ParseContinue || err != nil {
		t.Fatal("unexpected result from first Parse()")
	}
	if md.Mode() != "DEBUG" {
		t.Errorf("expected mode DEBUG, got %s", md.Mode())
	}

	md.NewMode()
	md.AddSubModes("TERM", "SCRIPT")

	p, err = md.Parse()
	if p != cmdline.ParseContinue || err != nil {
		t.Fatal("unexpected result from second Parse()")
	}
	if md.Mode() != "SCRIPT" {
		t.Errorf("expected mode SCRIPT, got %s", md.Mode())
	}
	if md.Path() != "DEBUG/SCRIPT" {
		t.Errorf("expected path DEBUG/SCRIPT, got %s", md.Path())
	}

	md.NewMode()
	p, err = md.Parse()
	if p != cmdline.ParseContinue || err != nil {
		t.Fatal("unexpected result from third Parse()")
	}
	if md.GetArg(0) != "file.lua" {
		t.Errorf("expected file.lua as first argument, got %s", md.GetArg(0))
	}
}

func TestFlagsAfterMode(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug", "--term", "plain"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if p != cmdline.ParseContinue || err != nil {
		t.Fatal("unexpected result from first Parse()")
	}
	if md.Mode() != "DEBUG" {
		t.Errorf("expected mode DEBUG, got %s", md.Mode())
	}

	md.NewMode()
	term := md.AddString("term", "", "terminal type")

	p, err = md.Parse()
	if p != cmdline.ParseContinue || err != nil {
		t.Fatal("unexpected result from second Parse()")
	}
	if *term != "plain" {
		t.Errorf("expected term flag to be plain, got %s", *term)
	}
}

func TestVisit(t *testing.T) {
	md := cmdline.Modes{Output: os.Stdout}
	md.NewArgs([]string{"--test"})
	md.AddBool("test", false, "test flag")
	md.AddString("unset", "", "never set")

	_, err := md.Parse()
	if err != nil {
		t.Errorf("did not expect error: %s", err)
	}

	visited := []string{}
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})

	if len(visited) != 1 || visited[0] != "test" {
		t.Errorf("expected only the test flag to be visited, got %v", visited)
	}
}
