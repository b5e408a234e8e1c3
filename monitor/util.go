// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"fmt"
	"strconv"
	"strings"
)

func codeString(b []byte) string {
	switch len(b) {
	case 1:
		return fmt.Sprintf("%02X", b[0])
	case 2:
		return fmt.Sprintf("%02X %02X", b[0], b[1])
	case 3:
		return fmt.Sprintf("%02X %02X %02X", b[0], b[1], b[2])
	default:
		return ""
	}
}

func stringToBool(s string) (bool, error) {
	s = strings.ToLower(s)
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool value '%s'", s)
	}
}

func intToBool(v int) bool {
	return v != 0
}

// parseNum converts a numeric string to an integer. A leading '$' or '0x'
// marks the string as hexadecimal. Without a prefix, hexMode decides the
// base.
func parseNum(s string, hexMode bool) (int, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case hexMode:
		base = 16
	}

	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	return int(v), nil
}

var hexString = "0123456789ABCDEF"

func addrToBuf(addr uint16, b []byte) {
	b[0] = hexString[(addr>>12)&0xf]
	b[1] = hexString[(addr>>8)&0xf]
	b[2] = hexString[(addr>>4)&0xf]
	b[3] = hexString[addr&0xf]
}

func byteToBuf(v byte, b []byte) {
	b[0] = hexString[(v>>4)&0xf]
	b[1] = hexString[v&0xf]
}

func toPrintableChar(v byte) byte {
	switch {
	case v >= 32 && v < 127:
		return v
	case v >= 160 && v < 255:
		return v - 128
	default:
		return '.'
	}
}

// indentWrap rewraps a string to 80 columns, indenting each line by the
// requested number of spaces.
func indentWrap(indent int, s string) string {
	var sb strings.Builder
	prefix := strings.Repeat(" ", indent)
	width := 80 - indent

	words := strings.Fields(s)
	col := 0
	for i, w := range words {
		switch {
		case i == 0:
			sb.WriteString(prefix)
			col = len(w)
		case col+1+len(w) > width:
			sb.WriteString("\n")
			sb.WriteString(prefix)
			col = len(w)
		default:
			sb.WriteString(" ")
			col += 1 + len(w)
		}
		sb.WriteString(w)
	}
	return sb.String()
}
