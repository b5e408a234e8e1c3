// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a 6502 CPU instruction
// set and emulator.
package cpu

// Arch selects the CPU's indirect-jump behavior.
type Arch byte

const (
	// CMOS reads the indirect jump pointer's high byte from the address
	// following the pointer, the corrected 65c02 behavior.
	CMOS Arch = iota

	// NMOS reproduces the original hardware defect: a pointer stored at
	// the last byte of a page reads its high byte from the start of the
	// same page instead of the next one.
	NMOS
)

// CPU represents a single 6502 CPU.
type CPU struct {
	Arch    Arch            // selected indirect-jump behavior
	Reg     Registers       // CPU registers
	Cycles  uint64          // total executed CPU cycles
	InstSet *InstructionSet // instruction set used by the CPU

	jmpIndirect func(cpu *CPU, mem Memory, ptr uint16) uint16
}

// Interrupt vectors
const (
	vectorReset = 0xfffc
	vectorBRK   = 0xfffe
)

// New creates an emulated 6502 CPU with the corrected indirect-jump
// behavior. All registers hold their reset state.
func New() *CPU {
	return newCPU(CMOS)
}

// NewNMOS creates an emulated 6502 CPU that reproduces the NMOS
// indirect-jump defect.
func NewNMOS() *CPU {
	return newCPU(NMOS)
}

func newCPU(arch Arch) *CPU {
	cpu := &CPU{
		Arch:    arch,
		InstSet: GetInstructionSet(),
	}

	switch arch {
	case NMOS:
		cpu.jmpIndirect = (*CPU).jmpIndirectNMOS
	default:
		cpu.jmpIndirect = (*CPU).jmpIndirectCMOS
	}

	cpu.Reg.Init()
	return cpu
}

// Reset restores the CPU to its power-on state: registers zeroed, the
// stack pointer at the top of the stack page, all flags clear, and the
// program counter at the reset address. The operating mode is unaffected.
func (cpu *CPU) Reset() {
	cpu.Reg.Init()
	cpu.Cycles = 0
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction whose opcode is stored at the
// requested address.
func (cpu *CPU) GetInstruction(mem Memory, addr uint16) *Instruction {
	opcode := mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(mem Memory, addr uint16) uint16 {
	opcode := mem.LoadByte(addr)
	inst := cpu.InstSet.Lookup(opcode)
	return addr + uint16(inst.Length)
}

// ExecuteSingle fetches, decodes and executes one instruction from 'mem',
// consuming cycles from the caller-supplied budget. It returns the budget
// remaining after the instruction, which goes negative when the
// instruction's true cost exceeds the budget; the caller decides what an
// over-spend means. An opcode with no documented instruction is a no-op
// that consumes only the opcode fetch.
func (cpu *CPU) ExecuteSingle(mem Memory, cycles int) int {
	// Grab the next opcode at the current PC and look up its instruction
	// data.
	opcode := mem.LoadByte(cpu.Reg.PC)
	inst := cpu.InstSet.Lookup(opcode)

	if inst.Illegal() {
		cpu.Reg.PC++
		cpu.Cycles++
		return cycles - 1
	}

	// Fetch the operand (if any) and advance the PC.
	var buf [2]byte
	operand := buf[:inst.Length-1]
	for i := range operand {
		operand[i] = mem.LoadByte(cpu.Reg.PC + 1 + uint16(i))
	}
	cpu.Reg.PC += uint16(inst.Length)

	// Execute the instruction. Extra cycles (page crossings, taken
	// branches) are reported back by the instruction itself.
	extra := inst.fn(cpu, mem, inst, operand)

	consumed := int(inst.Cycles) + extra
	cpu.Cycles += uint64(consumed)
	return cycles - consumed
}

// Load a byte value using the requested addressing mode and the operand to
// determine where to load it from. The pageCrossed return reports whether
// an indexed access crossed a 256-byte page boundary.
func (cpu *CPU) load(mem Memory, mode Mode, operand []byte) (v byte, pageCrossed bool) {
	switch mode {
	case IMM:
		return operand[0], false
	case ZPG:
		zpaddr := operandToAddress(operand)
		return mem.LoadByte(zpaddr), false
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		return mem.LoadByte(zpaddr), false
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		return mem.LoadByte(zpaddr), false
	case ABS:
		addr := operandToAddress(operand)
		return mem.LoadByte(addr), false
	case ABX:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.X)
		return mem.LoadByte(addr), crossed
	case ABY:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.Y)
		return mem.LoadByte(addr), crossed
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := loadAddress(mem, zpaddr)
		return mem.LoadByte(addr), false
	case IDY:
		zpaddr := operandToAddress(operand)
		addr, crossed := offsetAddress(loadAddress(mem, zpaddr), cpu.Reg.Y)
		return mem.LoadByte(addr), crossed
	case ACC:
		return cpu.Reg.A, false
	default:
		panic("invalid addressing mode")
	}
}

// Store a byte value using the specified addressing mode and the
// variable-sized instruction operand to determine where to store it.
func (cpu *CPU) store(mem Memory, mode Mode, operand []byte, v byte) {
	switch mode {
	case ZPG:
		zpaddr := operandToAddress(operand)
		mem.StoreByte(zpaddr, v)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		mem.StoreByte(zpaddr, v)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		mem.StoreByte(zpaddr, v)
	case ABS:
		addr := operandToAddress(operand)
		mem.StoreByte(addr, v)
	case ABX:
		addr, _ := offsetAddress(operandToAddress(operand), cpu.Reg.X)
		mem.StoreByte(addr, v)
	case ABY:
		addr, _ := offsetAddress(operandToAddress(operand), cpu.Reg.Y)
		mem.StoreByte(addr, v)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := loadAddress(mem, zpaddr)
		mem.StoreByte(addr, v)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr, _ := offsetAddress(loadAddress(mem, zpaddr), cpu.Reg.Y)
		mem.StoreByte(addr, v)
	case ACC:
		cpu.Reg.A = v
	default:
		panic("invalid addressing mode")
	}
}

// pageCrossCost converts a load's page-crossing report into the extra
// cycle count the instruction's timing data assigns to a crossing. Write
// operations carry the indexing penalty in their base cycle count and have
// a zero BPCycles entry.
func pageCrossCost(inst *Instruction, crossed bool) int {
	if crossed {
		return int(inst.BPCycles)
	}
	return 0
}

// Execute a branch using the instruction operand, returning the extra
// cycles consumed: one for taking the branch, and one more if the new PC
// lands on a different 256-byte page.
func (cpu *CPU) branch(inst *Instruction, operand []byte) int {
	offset := operandToAddress(operand)
	oldPC := cpu.Reg.PC
	if offset < 0x80 {
		cpu.Reg.PC += uint16(offset)
	} else {
		cpu.Reg.PC -= uint16(0x100 - offset)
	}

	extra := 1
	if ((cpu.Reg.PC ^ oldPC) & 0xff00) != 0 {
		extra += int(inst.BPCycles)
	}
	return extra
}

// Push a value 'v' onto the stack. The stack pointer starts at the top of
// the stack page and advances upward with 8-bit wraparound.
func (cpu *CPU) push(mem Memory, v byte) {
	mem.StoreByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP++
}

// Push the address 'addr' onto the stack, low byte first.
func (cpu *CPU) pushAddress(mem Memory, addr uint16) {
	cpu.push(mem, byte(addr))
	cpu.push(mem, byte(addr>>8))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop(mem Memory) byte {
	cpu.Reg.SP--
	return mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack: high byte first, undoing the push
// order.
func (cpu *CPU) popAddress(mem Memory) uint16 {
	hi := cpu.pop(mem)
	lo := cpu.pop(mem)
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Sign flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// Add the value to the accumulator with carry-in, updating the Carry,
// Overflow, Zero and Sign flags.
func (cpu *CPU) addWithCarry(v byte) {
	if cpu.Reg.Decimal {
		cpu.addDecimal(v)
		return
	}

	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	sum := acc + add + carry
	cpu.Reg.Carry = (sum >= 0x100)
	cpu.Reg.Overflow = (((acc & 0x80) == (add & 0x80)) && ((acc & 0x80) != (sum & 0x80)))

	cpu.Reg.A = byte(sum)
	cpu.updateNZ(cpu.Reg.A)
}

// Binary-coded-decimal addition, one decimal digit per nibble.
func (cpu *CPU) addDecimal(v byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	lo := (acc & 0x0f) + (add & 0x0f) + carry

	var carrylo uint32
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo

	if hi >= 0xa0 {
		cpu.Reg.Carry = true
		hi -= 0xa0
	} else {
		cpu.Reg.Carry = false
	}

	sum := hi | lo

	cpu.Reg.Overflow = ((acc^sum)&0x80) != 0 && ((acc^add)&0x80) == 0

	cpu.Reg.A = byte(sum)
	cpu.updateNZ(cpu.Reg.A)
}

// Binary-coded-decimal subtraction.
func (cpu *CPU) subDecimal(v byte) {
	acc := uint32(cpu.Reg.A)
	sub := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

	var carrylo uint32
	if lo < 0x10 {
		lo -= 0x06
		carrylo = 0
	} else {
		lo -= 0x10
		carrylo = 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo

	if hi < 0x100 {
		cpu.Reg.Carry = false
		hi -= 0x60
	} else {
		cpu.Reg.Carry = true
		hi -= 0x100
	}

	diff := hi | lo

	cpu.Reg.Overflow = ((acc^diff)&0x80) != 0 && ((acc^sub)&0x80) != 0

	cpu.Reg.A = byte(diff)
	cpu.updateNZ(cpu.Reg.A)
}

// Compare a value to a register. Carry indicates the register is greater
// or equal; Zero and Sign come from the truncated difference.
func (cpu *CPU) compare(reg, v byte) {
	cpu.Reg.Carry = (reg >= v)
	cpu.updateNZ(reg - v)
}

// Resolve an indirect jump pointer the corrected way: the high byte comes
// from the address following the pointer.
func (cpu *CPU) jmpIndirectCMOS(mem Memory, ptr uint16) uint16 {
	return loadAddress(mem, ptr)
}

// Resolve an indirect jump pointer the NMOS way. A pointer stored at the
// last byte of a page reads its high byte from the start of the same
// page.
func (cpu *CPU) jmpIndirectNMOS(mem Memory, ptr uint16) uint16 {
	if (ptr & 0xff) == 0xff {
		lo := mem.LoadByte(ptr)
		hi := mem.LoadByte(ptr & 0xff00)
		return uint16(lo) | uint16(hi)<<8
	}
	return loadAddress(mem, ptr)
}

// Add with carry
func (cpu *CPU) adc(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.addWithCarry(v)
	return pageCrossCost(inst, crossed)
}

// Subtract with carry. In binary mode this is an add-with-carry of the
// operand's complement; decimal mode has its own digit-borrow rules.
func (cpu *CPU) sbc(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	if cpu.Reg.Decimal {
		cpu.subDecimal(v)
	} else {
		cpu.addWithCarry(^v)
	}
	return pageCrossCost(inst, crossed)
}

// Boolean AND
func (cpu *CPU) and(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.A &= v
	cpu.updateNZ(cpu.Reg.A)
	return pageCrossCost(inst, crossed)
}

// Boolean OR
func (cpu *CPU) ora(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.A |= v
	cpu.updateNZ(cpu.Reg.A)
	return pageCrossCost(inst, crossed)
}

// Boolean XOR
func (cpu *CPU) eor(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.A ^= v
	cpu.updateNZ(cpu.Reg.A)
	return pageCrossCost(inst, crossed)
}

// Bit Test. Overflow and Sign come from bits 6 and 7 of the raw memory
// operand; Zero from ANDing it with the accumulator.
func (cpu *CPU) bit(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.Reg.Overflow = ((v & 0x40) != 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
	return 0
}

// Arithmetic Shift Left
func (cpu *CPU) asl(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	v = v << 1
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Logical Shift Right. Bit 7 of the result is always zero, so Sign is
// always cleared.
func (cpu *CPU) lsr(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.Carry = ((v & 1) == 1)
	v = v >> 1
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Rotate Left
func (cpu *CPU) rol(mem Memory, inst *Instruction, operand []byte) int {
	tmp, _ := cpu.load(mem, inst.Mode, operand)
	v := (tmp << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((tmp & 0x80) != 0)
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Rotate Right
func (cpu *CPU) ror(mem Memory, inst *Instruction, operand []byte) int {
	tmp, _ := cpu.load(mem, inst.Mode, operand)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((tmp & 1) != 0)
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Compare to accumulator
func (cpu *CPU) cmp(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.compare(cpu.Reg.A, v)
	return pageCrossCost(inst, crossed)
}

// Compare to X register
func (cpu *CPU) cpx(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	cpu.compare(cpu.Reg.X, v)
	return 0
}

// Compare to Y register
func (cpu *CPU) cpy(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	cpu.compare(cpu.Reg.Y, v)
	return 0
}

// Increment memory value
func (cpu *CPU) inc(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	v++
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Decrement memory value
func (cpu *CPU) dec(mem Memory, inst *Instruction, operand []byte) int {
	v, _ := cpu.load(mem, inst.Mode, operand)
	v--
	cpu.updateNZ(v)
	cpu.store(mem, inst.Mode, operand, v)
	return 0
}

// Increment X register
func (cpu *CPU) inx(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
	return 0
}

// Increment Y register
func (cpu *CPU) iny(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
	return 0
}

// Decrement X register
func (cpu *CPU) dex(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
	return 0
}

// Decrement Y register
func (cpu *CPU) dey(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
	return 0
}

// load Accumulator
func (cpu *CPU) lda(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.A = v
	cpu.updateNZ(cpu.Reg.A)
	return pageCrossCost(inst, crossed)
}

// load the X register
func (cpu *CPU) ldx(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.X = v
	cpu.updateNZ(cpu.Reg.X)
	return pageCrossCost(inst, crossed)
}

// load the Y register
func (cpu *CPU) ldy(mem Memory, inst *Instruction, operand []byte) int {
	v, crossed := cpu.load(mem, inst.Mode, operand)
	cpu.Reg.Y = v
	cpu.updateNZ(cpu.Reg.Y)
	return pageCrossCost(inst, crossed)
}

// Store Accumulator
func (cpu *CPU) sta(mem Memory, inst *Instruction, operand []byte) int {
	cpu.store(mem, inst.Mode, operand, cpu.Reg.A)
	return 0
}

// Store X register
func (cpu *CPU) stx(mem Memory, inst *Instruction, operand []byte) int {
	cpu.store(mem, inst.Mode, operand, cpu.Reg.X)
	return 0
}

// Store Y register
func (cpu *CPU) sty(mem Memory, inst *Instruction, operand []byte) int {
	cpu.store(mem, inst.Mode, operand, cpu.Reg.Y)
	return 0
}

// Jump to memory address. The indirect form resolves its pointer using the
// strategy selected at construction.
func (cpu *CPU) jmp(mem Memory, inst *Instruction, operand []byte) int {
	switch inst.Mode {
	case ABS:
		cpu.Reg.PC = operandToAddress(operand)
	case IND:
		ptr := operandToAddress(operand)
		cpu.Reg.PC = cpu.jmpIndirect(cpu, mem, ptr)
	default:
		panic("invalid addressing mode")
	}
	return 0
}

// Jump to subroutine. The address pushed is that of the call instruction's
// last byte, not the following instruction.
func (cpu *CPU) jsr(mem Memory, inst *Instruction, operand []byte) int {
	addr := operandToAddress(operand)
	cpu.pushAddress(mem, cpu.Reg.PC-1)
	cpu.Reg.PC = addr
	return 0
}

// Return from Subroutine
func (cpu *CPU) rts(mem Memory, inst *Instruction, operand []byte) int {
	addr := cpu.popAddress(mem)
	cpu.Reg.PC = addr + 1
	return 0
}

// Break: the software interrupt. Pushes the PC and the status flags, loads
// the PC from the interrupt vector, and raises the Break flag.
func (cpu *CPU) brk(mem Memory, inst *Instruction, operand []byte) int {
	cpu.pushAddress(mem, cpu.Reg.PC)
	cpu.push(mem, cpu.Reg.SavePS())
	cpu.Reg.PC = loadAddress(mem, vectorBRK)
	cpu.Reg.Break = true
	return 0
}

// Return from Interrupt. The Break flag is meaningful only while the
// interrupt is being handled, so it is cleared on the way out.
func (cpu *CPU) rti(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.RestorePS(cpu.pop(mem))
	cpu.Reg.PC = cpu.popAddress(mem)
	cpu.Reg.Break = false
	return 0
}

// Branch if Carry Clear
func (cpu *CPU) bcc(mem Memory, inst *Instruction, operand []byte) int {
	if !cpu.Reg.Carry {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if Carry Set
func (cpu *CPU) bcs(mem Memory, inst *Instruction, operand []byte) int {
	if cpu.Reg.Carry {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(mem Memory, inst *Instruction, operand []byte) int {
	if cpu.Reg.Zero {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(mem Memory, inst *Instruction, operand []byte) int {
	if !cpu.Reg.Zero {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(mem Memory, inst *Instruction, operand []byte) int {
	if cpu.Reg.Sign {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(mem Memory, inst *Instruction, operand []byte) int {
	if !cpu.Reg.Sign {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(mem Memory, inst *Instruction, operand []byte) int {
	if !cpu.Reg.Overflow {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(mem Memory, inst *Instruction, operand []byte) int {
	if cpu.Reg.Overflow {
		return cpu.branch(inst, operand)
	}
	return 0
}

// Clear Carry flag
func (cpu *CPU) clc(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Carry = false
	return 0
}

// Set Carry flag
func (cpu *CPU) sec(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Carry = true
	return 0
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.InterruptDisable = false
	return 0
}

// Set InterruptDisable flag
func (cpu *CPU) sei(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.InterruptDisable = true
	return 0
}

// Clear Decimal flag
func (cpu *CPU) cld(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Decimal = false
	return 0
}

// Set Decimal flag
func (cpu *CPU) sed(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Decimal = true
	return 0
}

// Clear oVerflow flag
func (cpu *CPU) clv(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Overflow = false
	return 0
}

// Push Accumulator
func (cpu *CPU) pha(mem Memory, inst *Instruction, operand []byte) int {
	cpu.push(mem, cpu.Reg.A)
	return 0
}

// Push Processor flags
func (cpu *CPU) php(mem Memory, inst *Instruction, operand []byte) int {
	cpu.push(mem, cpu.Reg.SavePS())
	return 0
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.A = cpu.pop(mem)
	cpu.updateNZ(cpu.Reg.A)
	return 0
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.RestorePS(cpu.pop(mem))
	return 0
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
	return 0
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
	return 0
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
	return 0
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
	return 0
}

// Transfer X register to the stack pointer. The only register-to-register
// transfer that leaves the flags alone.
func (cpu *CPU) txs(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.SP = cpu.Reg.X
	return 0
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(mem Memory, inst *Instruction, operand []byte) int {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
	return 0
}

// No-operation
func (cpu *CPU) nop(mem Memory, inst *Instruction, operand []byte) int {
	return 0
}
