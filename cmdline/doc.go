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

// Package cmdline is a wrapper for the getopt package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different options for each mode.
//
// At it's simplest it can be used as a replacement for the getopt package,
// with some differences. Whereas with getopt you call Getopt() with the array
// of strings as an argument, with cmdline you first NewArgs() with the array
// of arguments and then Parse() with no arguments. For example (note that no
// error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes and
// sub-modes. We'll come to program modes in a short while.
//
// In the above example, once the arguments have been parsed, non-option
// arguments can be retrieved with the RemainingArgs() or GetArg() function.
// For example, handling exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding options is done through the Add*() group of functions. Adding a
// boolean option:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// These functions return a pointer to a variable of the specified type. The
// initial value of these variables is the default value, the second argument
// in the function call above. The Parse() function will set these values
// appropriately according to what the user has requested, for example:
//
//	if *verbose {
//		fmt.Println(additionalLogMessage)
//	}
//
// The most important feature of the cmdline package is the ability to handle
// "modes". In this context, a mode is a special command line argument that
// when specified, puts the program into a different mode of operation. The
// best example I can think of is the go command. The go command has many
// different modes: build, doc, get, test, etc. Each of these modes are
// different enough to require a different set of options and expected
// arguments.
//
// The cmdline package handles sub-modes with the AddSubModes() function. This
// function takes any number of string arguments, each one the name of a mode.
//
//	md.AddSubModes("run", "debug", "perf")
//
// For simplicity, all sub-mode comparisons are case insensitive.
//
// Subsequent calls to Parse() will then check to see if the leading argument
// is one of these modes. If it is, the arguments after the mode selector are
// left alone, ready to be parsed by the newly selected mode.
//
// So, for example:
//
//	md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		runMode()
//	default:
//		fmt.Printf("%s not yet implemented", md.Mode())
//	}
//
// Now that we've decided on what mode we're in, we can again call Parse() to
// process the remaining arguments. This example shows how we can handle
// return state and errors from the Parse() function:
//
//	func runMode() {
//		md.NewMode()
//		md.AddDuration("runtime", time.ParseDuration("10s"), "max run time")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		doRun(md.RemainingArgs())
//	}
//
// This second call to Parse() will check for any additional options and any
// further sub-modes (none in this example).
//
// We can chain modes together as deep as we want. For example, the "debug"
// mode added above could be divided into several different modes:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "perf")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		md.AddSubModes("A", "B", "C")
//		_, _ = md.Parse()
//		switch md.Mode() {
//		case "A":
//			debugA()
//		case "B":
//			debugB()
//		case "C":
//			debugC()
//		}
//	default:
//		fmt.Printf("%s not yet implemented", md.Mode())
//	}
package cmdline
