package disasm_test

import (
	"testing"

	"github.com/beevik/mos6502/cpu"
	"github.com/beevik/mos6502/disasm"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		code []byte
		line string
		next uint16
	}{
		{[]byte{0xa9, 0x5e}, "LDA #$5E", 0x1002},
		{[]byte{0x8d, 0x00, 0x15}, "STA $1500", 0x1003},
		{[]byte{0xbd, 0x02, 0x10}, "LDA $1002,X", 0x1003},
		{[]byte{0x91, 0x06}, "STA ($06),Y", 0x1002},
		{[]byte{0x6c, 0xff, 0x10}, "JMP ($10FF)", 0x1003},
		{[]byte{0x0a}, "ASL ", 0x1001},
		{[]byte{0xf0, 0x02}, "BEQ $1004", 0x1002},
		{[]byte{0x30, 0xfc}, "BMI $0FFE", 0x1002},
		{[]byte{0xf0, 0xfe}, "BEQ $1000", 0x1002},
		{[]byte{0xd0, 0xff}, "BNE $1001", 0x1002},
		{[]byte{0x02}, "??? ", 0x1001},
	}

	for _, c := range cases {
		mem := cpu.NewRAM()
		mem.StoreBytes(0x1000, c.code)

		line, next := disasm.Disassemble(mem, 0x1000)
		if line != c.line {
			t.Errorf("line incorrect. exp: %q, got: %q", c.line, line)
		}
		if next != c.next {
			t.Errorf("next incorrect. exp: $%04X, got: $%04X", c.next, next)
		}
	}
}

func TestRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.A = 0x5e
	r.Sign = true
	r.Carry = true

	got := disasm.GetRegisterString(&r)
	exp := "A=5E X=00 Y=00 PS=[NvbdizC] SP=FF PC=FFFC"
	if got != exp {
		t.Errorf("register string incorrect.\nexp: %s\ngot: %s", exp, got)
	}
}
