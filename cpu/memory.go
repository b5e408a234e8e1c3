// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Memory interface presents the address space the CPU reads and writes
// during instruction execution. The CPU borrows a Memory for the duration
// of each ExecuteSingle call; it holds no reference to it afterwards.
type Memory interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)

	// Clear zero-fills the entire address space.
	Clear()
}

// RAM represents an entire 16-bit address space as a singular 64K buffer.
type RAM struct {
	b [64 * 1024]byte
}

// NewRAM creates a new, zero-filled 16-bit memory space.
func NewRAM() *RAM {
	return &RAM{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *RAM) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// StoreByte stores a byte at the requested address.
func (m *RAM) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores multiple bytes starting at the requested address.
// Bytes extending beyond the top of the address space are dropped.
func (m *RAM) StoreBytes(addr uint16, b []byte) {
	copy(m.b[addr:], b)
}

// LoadBytes loads len(b) bytes starting at the requested address into 'b'.
func (m *RAM) LoadBytes(addr uint16, b []byte) {
	copy(b, m.b[addr:])
}

// Clear zero-fills the memory.
func (m *RAM) Clear() {
	m.b = [64 * 1024]byte{}
}

// loadAddress reads a 16-bit little-endian address from addr and addr+1.
func loadAddress(m Memory, addr uint16) uint16 {
	lo := m.LoadByte(addr)
	hi := m.LoadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Return the offset address 'addr' + 'offset'. If the offset crossed a
// 256-byte page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset'. If the address exceeds
// the zero-page address space, wrap it.
func offsetZeroPage(addr uint16, offset byte) uint16 {
	addr += uint16(offset)
	if addr >= 0x100 {
		addr -= 0x100
	}
	return addr
}

// Convert a 1- or 2-byte operand into an address.
func operandToAddress(operand []byte) uint16 {
	switch {
	case len(operand) == 1:
		return uint16(operand[0])
	case len(operand) == 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}

// Given a 1-byte stack pointer register, return the corresponding stack
// memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}
