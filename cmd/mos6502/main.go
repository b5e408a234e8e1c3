// Copyright 2018 Brett Vickers.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/beevik/mos6502/cpu"
	"github.com/beevik/mos6502/disasm"
	"github.com/beevik/mos6502/monitor"
	"github.com/beevik/term"
)

var (
	legacy = flag.Bool("legacy", false, "emulate the NMOS indirect-jump defect")
	addr   = flag.String("addr", "200", "hex address where the binary image is loaded")
	entry  = flag.String("entry", "", "hex address where execution begins (default: the load address)")
	steps  = flag.Int("steps", 0, "run this many instructions and exit instead of starting the monitor")
)

func main() {
	flag.Parse()

	loadAddr, err := parseHexAddr(*addr)
	if err != nil {
		exitOnError(err)
	}

	entryAddr := loadAddr
	if *entry != "" {
		entryAddr, err = parseHexAddr(*entry)
		if err != nil {
			exitOnError(err)
		}
	}

	mem := cpu.NewRAM()

	var c *cpu.CPU
	if *legacy {
		c = cpu.NewNMOS()
	} else {
		c = cpu.New()
	}

	imageLen := 0
	if flag.NArg() > 0 {
		image, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			exitOnError(err)
		}
		if len(image) > 0x10000-int(loadAddr) {
			image = image[:0x10000-int(loadAddr)]
		}
		mem.StoreBytes(loadAddr, image)
		imageLen = len(image)
	}

	// The CPU fetches its first opcode from the reset address, so plant a
	// jump to the entry point there. An image that supplies its own reset
	// bytes is left alone unless an entry point was requested explicitly.
	if *entry != "" || !coversResetVector(loadAddr, imageLen) {
		mem.StoreBytes(0xfffc, []byte{0x4c, byte(entryAddr), byte(entryAddr >> 8)})
	}

	if *steps > 0 {
		run(c, mem, *steps)
		return
	}

	m := monitor.New(c, mem)

	// Break on Ctrl-C.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go handleInterrupt(m, sig)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	m.RunCommands(os.Stdin, os.Stdout, interactive)
}

// run executes the requested number of instructions and reports the final
// register state and cycle count.
func run(c *cpu.CPU, mem cpu.Memory, steps int) {
	for i := 0; i < steps; i++ {
		c.ExecuteSingle(mem, 0)
	}
	fmt.Printf("%s C=%d\n", disasm.GetRegisterString(&c.Reg), c.Cycles)
}

func handleInterrupt(m *monitor.Monitor, sig chan os.Signal) {
	for {
		<-sig
		m.Break()
	}
}

// coversResetVector reports whether an image of n bytes loaded at addr
// supplies the byte at the reset address.
func coversResetVector(addr uint16, n int) bool {
	return addr <= 0xfffc && int(addr)+n > 0xfffc
}

func parseHexAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid hex address '%s'", s)
	}
	return uint16(v), nil
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
