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

// Package debugger implements the interactive monitor. The monitor reads
// commands from a terminal.Terminal implementation and pokes at the machine
// in the hardware/board package.
//
// The command set is small and machine oriented: single stepping, free
// running, register and memory inspection, I/O port access, pin control and
// save states. Anything more elaborate is left to Lua scripting through the
// SCRIPT command (see the script sub-package).
//
// All numeric command arguments are hexadecimal.
package debugger
