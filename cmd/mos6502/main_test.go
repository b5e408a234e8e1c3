package main

import "testing"

func TestCoversResetVector(t *testing.T) {
	cases := []struct {
		addr uint16
		n    int
		exp  bool
	}{
		{0x0200, 0x100, false},
		{0x0000, 0x10000, true},
		{0xfffc, 1, true},
		{0xfffc, 0, false},
		{0xfffd, 3, false},
		{0xf000, 0x1000, true},
		{0xf000, 0xffc, false},
	}

	for _, c := range cases {
		got := coversResetVector(c.addr, c.n)
		if got != c.exp {
			t.Errorf("coversResetVector($%04X, %d) incorrect. exp: %v, got: %v",
				c.addr, c.n, c.exp, got)
		}
	}
}
