package cpu_test

import (
	"testing"

	"github.com/beevik/mos6502/cpu"
)

func loadCPU(origin uint16, code []byte) (*cpu.CPU, *cpu.RAM) {
	mem := cpu.NewRAM()
	mem.StoreBytes(origin, code)
	c := cpu.New()
	c.SetPC(origin)
	return c, mem
}

func stepCPU(c *cpu.CPU, mem cpu.Memory, steps int) {
	for i := 0; i < steps; i++ {
		c.ExecuteSingle(mem, 0)
	}
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	if c.Reg.A != acc {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
	}
}

func expectSP(t *testing.T, c *cpu.CPU, sp byte) {
	t.Helper()
	if c.Reg.SP != sp {
		t.Errorf("stack pointer incorrect. exp: $%02X, got: $%02X", sp, c.Reg.SP)
	}
}

func expectMem(t *testing.T, mem cpu.Memory, addr uint16, v byte) {
	t.Helper()
	got := mem.LoadByte(addr)
	if got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func expectFlag(t *testing.T, name string, got, exp bool) {
	t.Helper()
	if got != exp {
		t.Errorf("%s flag incorrect. exp: %v, got: %v", name, exp, got)
	}
}

func TestAccumulator(t *testing.T) {
	code := []byte{
		0xa9, 0x5e, // LDA #$5E
		0x85, 0x15, // STA $15
		0x8d, 0x00, 0x15, // STA $1500
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 3)

	expectPC(t, c, 0x1007)
	expectCycles(t, c, 9)
	expectACC(t, c, 0x5e)
	expectMem(t, mem, 0x15, 0x5e)
	expectMem(t, mem, 0x1500, 0x5e)
}

func TestZeroSignFlags(t *testing.T) {
	code := []byte{
		0xa9, 0x00, // LDA #$00
		0xa9, 0x80, // LDA #$80
		0xa9, 0x01, // LDA #$01
	}

	c, mem := loadCPU(0x1000, code)

	stepCPU(c, mem, 1)
	expectFlag(t, "Zero", c.Reg.Zero, true)
	expectFlag(t, "Sign", c.Reg.Sign, false)

	stepCPU(c, mem, 1)
	expectFlag(t, "Zero", c.Reg.Zero, false)
	expectFlag(t, "Sign", c.Reg.Sign, true)

	stepCPU(c, mem, 1)
	expectFlag(t, "Zero", c.Reg.Zero, false)
	expectFlag(t, "Sign", c.Reg.Sign, false)
}

func TestStack(t *testing.T) {
	code := []byte{
		0xa9, 0x11, // LDA #$11
		0x48, // PHA
		0xa9, 0x12, // LDA #$12
		0x48, // PHA
		0xa9, 0x13, // LDA #$13
		0x48, // PHA

		0x68, // PLA
		0x8d, 0x00, 0x20, // STA $2000
		0x68, // PLA
		0x8d, 0x01, 0x20, // STA $2001
		0x68, // PLA
		0x8d, 0x02, 0x20, // STA $2002
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 6)

	// The stack pointer starts at the top of the stack page and advances
	// upward, wrapping into the bottom of the page.
	expectSP(t, c, 0x02)
	expectACC(t, c, 0x13)
	expectMem(t, mem, 0x1ff, 0x11)
	expectMem(t, mem, 0x100, 0x12)
	expectMem(t, mem, 0x101, 0x13)

	stepCPU(c, mem, 6)
	expectACC(t, c, 0x11)
	expectSP(t, c, 0xff)
	expectMem(t, mem, 0x2000, 0x13)
	expectMem(t, mem, 0x2001, 0x12)
	expectMem(t, mem, 0x2002, 0x11)
}

func TestStackWraparound(t *testing.T) {
	// A full page of pushes returns the stack pointer to its start.
	code := make([]byte, 256)
	for i := range code {
		code[i] = 0x48 // PHA
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 256)

	expectSP(t, c, 0xff)
	expectPC(t, c, 0x1100)
}

func TestIndirect(t *testing.T) {
	code := []byte{
		0xa2, 0x80, // LDX #$80
		0xa0, 0x40, // LDY #$40
		0xa9, 0xee, // LDA #$EE
		0x9d, 0x00, 0x20, // STA $2000,X
		0x99, 0x00, 0x20, // STA $2000,Y

		0xa9, 0x11, // LDA #$11
		0x85, 0x06, // STA $06
		0xa9, 0x05, // LDA #$05
		0x85, 0x07, // STA $07
		0xa2, 0x01, // LDX #$01
		0xa0, 0x01, // LDY #$01
		0xa9, 0xbb, // LDA #$BB
		0x81, 0x05, // STA ($05,X)
		0x91, 0x06, // STA ($06),Y
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 14)

	expectMem(t, mem, 0x2080, 0xee)
	expectMem(t, mem, 0x2040, 0xee)
	expectMem(t, mem, 0x0511, 0xbb)
	expectMem(t, mem, 0x0512, 0xbb)
}

func TestPageCross(t *testing.T) {
	code := []byte{
		0xa9, 0x55, // LDA #$55        2 cycles
		0x8d, 0x01, 0x11, // STA $1101  4 cycles
		0xa9, 0x00, // LDA #$00        2 cycles
		0xa2, 0xff, // LDX #$FF        2 cycles
		0xbd, 0x02, 0x10, // LDA $1002,X  5 cycles
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 5)

	expectPC(t, c, 0x100c)
	expectCycles(t, c, 15)
	expectACC(t, c, 0x55)
	expectMem(t, mem, 0x1101, 0x55)
}

func TestIndexedNoCross(t *testing.T) {
	code := []byte{
		0xa2, 0x01, // LDX #$01
		0xbd, 0x00, 0x20, // LDA $2000,X
	}

	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0x2001, 0x77)

	stepCPU(c, mem, 1)
	remain := c.ExecuteSingle(mem, 4)
	if remain != 0 {
		t.Errorf("budget remainder incorrect. exp: 0, got: %d", remain)
	}
	expectACC(t, c, 0x77)
}

func TestSubtractMatchesComplementAdd(t *testing.T) {
	sbc := []byte{
		0x38, // SEC
		0xa9, 0x50, // LDA #$50
		0xe9, 0x30, // SBC #$30
	}
	adc := []byte{
		0x38, // SEC
		0xa9, 0x50, // LDA #$50
		0x69, 0xcf, // ADC #$CF  ($CF == ^$30)
	}

	c1, m1 := loadCPU(0x1000, sbc)
	stepCPU(c1, m1, 3)

	c2, m2 := loadCPU(0x1000, adc)
	stepCPU(c2, m2, 3)

	if c1.Reg.A != c2.Reg.A {
		t.Errorf("accumulators differ. SBC: $%02X, ADC: $%02X", c1.Reg.A, c2.Reg.A)
	}
	if c1.Reg.SavePS() != c2.Reg.SavePS() {
		t.Errorf("flags differ. SBC: $%02X, ADC: $%02X", c1.Reg.SavePS(), c2.Reg.SavePS())
	}
	expectACC(t, c1, 0x20)
	expectFlag(t, "Carry", c1.Reg.Carry, true)
}

func TestDecimalAdd(t *testing.T) {
	code := []byte{
		0xf8, // SED
		0x18, // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x28, // ADC #$28
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 4)

	expectACC(t, c, 0x47)
	expectFlag(t, "Carry", c.Reg.Carry, false)

	code = []byte{
		0xf8, // SED
		0x18, // CLC
		0xa9, 0x81, // LDA #$81
		0x69, 0x92, // ADC #$92
	}

	c, mem = loadCPU(0x1000, code)
	stepCPU(c, mem, 4)

	expectACC(t, c, 0x73)
	expectFlag(t, "Carry", c.Reg.Carry, true)
}

func TestBitTest(t *testing.T) {
	code := []byte{
		0xa9, 0x0f, // LDA #$0F
		0x24, 0x20, // BIT $20
		0xa9, 0xc1, // LDA #$C1
		0x24, 0x20, // BIT $20
	}

	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0x20, 0xf0)

	stepCPU(c, mem, 2)
	expectFlag(t, "Zero", c.Reg.Zero, true)
	expectFlag(t, "Overflow", c.Reg.Overflow, true)
	expectFlag(t, "Sign", c.Reg.Sign, true)

	stepCPU(c, mem, 2)
	expectFlag(t, "Zero", c.Reg.Zero, false)
	expectACC(t, c, 0xc1)
}

func TestJumpIndirect(t *testing.T) {
	code := []byte{
		0x6c, 0xff, 0x10, // JMP ($10FF)
	}

	// Pointer straddles the end of a page: the low byte sits at $10FF,
	// and the two architectures disagree on where the high byte comes
	// from.
	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0x10ff, 0x60)
	mem.StoreByte(0x1000, 0x6c) // already the opcode; high byte for NMOS
	mem.StoreByte(0x1100, 0x30) // high byte for the corrected read

	stepCPU(c, mem, 1)
	expectPC(t, c, 0x3060)

	n := cpu.NewNMOS()
	n.SetPC(0x1000)
	stepCPU(n, mem, 1)
	expectPC(t, n, 0x6c60)
}

func TestJumpIndirectSamePage(t *testing.T) {
	// Away from a page boundary the two architectures agree.
	code := []byte{
		0x6c, 0x20, 0x10, // JMP ($1020)
	}

	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0x1020, 0x60)
	mem.StoreByte(0x1021, 0x70)

	stepCPU(c, mem, 1)
	expectPC(t, c, 0x7060)

	n := cpu.NewNMOS()
	n.SetPC(0x1000)
	stepCPU(n, mem, 1)
	expectPC(t, n, 0x7060)
}

func TestSubroutine(t *testing.T) {
	code := []byte{
		0x20, 0x40, 0x20, // JSR $2040
		0xea, // NOP
	}

	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0x2040, 0xa9) // LDA #$33
	mem.StoreByte(0x2041, 0x33)
	mem.StoreByte(0x2042, 0x60) // RTS

	stepCPU(c, mem, 1)
	expectPC(t, c, 0x2040)

	stepCPU(c, mem, 2)
	expectPC(t, c, 0x1003)
	expectACC(t, c, 0x33)
	expectSP(t, c, 0xff)
}

func TestBreakInterrupt(t *testing.T) {
	code := []byte{
		0x00, // BRK
	}

	c, mem := loadCPU(0x1000, code)
	mem.StoreByte(0xfffe, 0x00) // interrupt vector -> $2000
	mem.StoreByte(0xffff, 0x20)
	mem.StoreByte(0x2000, 0x40) // RTI

	c.Reg.Carry = true

	stepCPU(c, mem, 1)
	expectPC(t, c, 0x2000)
	expectFlag(t, "Break", c.Reg.Break, true)

	stepCPU(c, mem, 1)
	expectPC(t, c, 0x1001)
	expectFlag(t, "Break", c.Reg.Break, false)
	expectFlag(t, "Carry", c.Reg.Carry, true)
	expectSP(t, c, 0xff)
}

func TestBranchCycles(t *testing.T) {
	code := []byte{
		0xa9, 0x00, // LDA #$00       2 cycles
		0xf0, 0x02, // BEQ +2         3 cycles (taken, same page)
		0xea, // NOP (skipped)
		0xea, // NOP (skipped)
		0xd0, 0x02, // BNE +2         2 cycles (not taken)
	}

	c, mem := loadCPU(0x1000, code)
	stepCPU(c, mem, 3)

	expectPC(t, c, 0x1008)
	expectCycles(t, c, 7)
}

func TestIllegalOpcode(t *testing.T) {
	code := []byte{
		0x02, // no documented instruction
		0xa9, 0x44, // LDA #$44
	}

	c, mem := loadCPU(0x1000, code)

	remain := c.ExecuteSingle(mem, 10)
	if remain != 9 {
		t.Errorf("budget remainder incorrect. exp: 9, got: %d", remain)
	}
	expectPC(t, c, 0x1001)
	expectCycles(t, c, 1)

	stepCPU(c, mem, 1)
	expectACC(t, c, 0x44)
}

func TestBudgetOverspend(t *testing.T) {
	code := []byte{
		0x00, // BRK: 7 cycles
	}

	c, mem := loadCPU(0x1000, code)
	remain := c.ExecuteSingle(mem, 2)
	if remain != -5 {
		t.Errorf("budget remainder incorrect. exp: -5, got: %d", remain)
	}
}

func TestExecuteFromReset(t *testing.T) {
	mem := cpu.NewRAM()
	mem.StoreBytes(0xfffc, []byte{0xa9, 0x2a}) // LDA #$2A

	c := cpu.New()
	remain := c.ExecuteSingle(mem, 2)
	if remain != 0 {
		t.Errorf("budget remainder incorrect. exp: 0, got: %d", remain)
	}
	expectACC(t, c, 0x2a)
	expectPC(t, c, 0xfffe)
}
