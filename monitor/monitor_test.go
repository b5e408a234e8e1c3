package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/mos6502/cpu"
)

func TestBreakpointSet(t *testing.T) {
	s := newBreakpointSet()

	s.Add(0x2000)
	s.Add(0x1000)
	s.Add(0x3000)

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("breakpoint count incorrect. exp: 3, got: %d", len(list))
	}
	for i, addr := range []uint16{0x1000, 0x2000, 0x3000} {
		if list[i].Address != addr {
			t.Errorf("breakpoint %d address incorrect. exp: $%04X, got: $%04X",
				i, addr, list[i].Address)
		}
	}

	if s.Active(0x2000) == nil {
		t.Error("breakpoint at $2000 should be active")
	}

	s.Get(0x2000).Disabled = true
	if s.Active(0x2000) != nil {
		t.Error("disabled breakpoint at $2000 should not be active")
	}

	s.Remove(0x1000)
	if s.Get(0x1000) != nil {
		t.Error("breakpoint at $1000 should have been removed")
	}
}

func TestRunToBreakpoint(t *testing.T) {
	mem := cpu.NewRAM()
	mem.StoreBytes(0x1000, []byte{
		0xa9, 0x01, // LDA #$01
		0xea, // NOP
		0xea, // NOP
	})

	c := cpu.New()
	c.SetPC(0x1000)

	script := strings.Join([]string{
		"breakpoint add $1002",
		"run",
		"quit",
	}, "\n")

	var out bytes.Buffer
	m := New(c, mem)
	m.RunCommands(strings.NewReader(script), &out, false)

	got := out.String()
	if !strings.Contains(got, "Breakpoint added at $1002.") {
		t.Errorf("missing breakpoint confirmation in output:\n%s", got)
	}
	if !strings.Contains(got, "Breakpoint hit at $1002.") {
		t.Errorf("missing breakpoint hit in output:\n%s", got)
	}
	if c.Reg.PC != 0x1002 {
		t.Errorf("PC incorrect. exp: $1002, got: $%04X", c.Reg.PC)
	}
	if c.Reg.A != 0x01 {
		t.Errorf("Accumulator incorrect. exp: $01, got: $%02X", c.Reg.A)
	}
}

func TestStepBudgetOverspend(t *testing.T) {
	mem := cpu.NewRAM()
	mem.StoreBytes(0x1000, []byte{
		0xa9, 0x01, // LDA #$01
	})

	c := cpu.New()
	c.SetPC(0x1000)

	script := strings.Join([]string{
		"set stepbudget 1",
		"step in",
		"quit",
	}, "\n")

	var out bytes.Buffer
	m := New(c, mem)
	m.RunCommands(strings.NewReader(script), &out, false)

	got := out.String()
	if !strings.Contains(got, "Instruction at $1000 exceeded the cycle budget by 1.") {
		t.Errorf("missing budget overspend report in output:\n%s", got)
	}
	if c.Reg.PC != 0x1002 {
		t.Errorf("PC incorrect. exp: $1002, got: $%04X", c.Reg.PC)
	}
}

func TestParseNum(t *testing.T) {
	cases := []struct {
		in      string
		hexMode bool
		out     int
		ok      bool
	}{
		{"$1000", false, 0x1000, true},
		{"0x1000", false, 0x1000, true},
		{"1000", false, 1000, true},
		{"1000", true, 0x1000, true},
		{"ff", true, 0xff, true},
		{"zz", false, 0, false},
	}

	for _, c := range cases {
		v, err := parseNum(c.in, c.hexMode)
		if c.ok != (err == nil) {
			t.Errorf("parseNum(%q, %v) error state incorrect: %v", c.in, c.hexMode, err)
			continue
		}
		if c.ok && v != c.out {
			t.Errorf("parseNum(%q, %v) incorrect. exp: %d, got: %d", c.in, c.hexMode, c.out, v)
		}
	}
}
