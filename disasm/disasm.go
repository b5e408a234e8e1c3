// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"

	"github.com/beevik/mos6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"%s",      // ACC
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code in memory 'm' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code.
func Disassemble(m cpu.Memory, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	set := cpu.GetInstructionSet()
	inst := set.Lookup(opcode)

	operand := make([]byte, inst.Length-1)
	for i := range operand {
		operand[i] = m.LoadByte(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address. The sum must be
		// computed in int, or offsets near the top of the signed range
		// wrap and resolve a full page low.
		braddr := int(addr) + int(inst.Length) + int(operand[0])
		if operand[0] > 0x7f {
			braddr -= 256
		}
		operand = []byte{byte(braddr & 0xff), byte(braddr >> 8)}
	}
	format := "%s " + modeFormat[inst.Mode]
	line = fmt.Sprintf(format, inst.Name, hexString(operand))
	next = addr + uint16(inst.Length)
	return line, next
}

// GetRegisterString returns a string describing the contents of the CPU
// registers. Status flags appear in upper case when set.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, flagString(r), r.SP, r.PC)
}

func flagString(r *cpu.Registers) string {
	fl := []struct {
		name byte
		set  bool
	}{
		{'N', r.Sign},
		{'V', r.Overflow},
		{'B', r.Break},
		{'D', r.Decimal},
		{'I', r.InterruptDisable},
		{'Z', r.Zero},
		{'C', r.Carry},
	}

	b := make([]byte, len(fl))
	for i, f := range fl {
		if f.set {
			b[i] = f.name
		} else {
			b[i] = f.name + ('a' - 'A')
		}
	}
	return string(b)
}
