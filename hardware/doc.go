// Package hardware is the base package for the machine emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The z180 sub-package is the CPU core itself, including the on-chip
// peripherals. The bus sub-package defines the interfaces between the core
// and the outside world. The board sub-package is a minimal development
// board, wiring the core to a flat RAM and a port file.
package hardware
