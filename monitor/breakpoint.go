// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import "sort"

// A Breakpoint represents an address that causes the monitor to stop
// stepping the CPU when the program counter reaches it.
type Breakpoint struct {
	Address  uint16 // address of execution breakpoint
	Disabled bool   // this breakpoint is currently disabled
	StepOver bool   // this breakpoint is a temporary step-over breakpoint
}

type byBPAddr []*Breakpoint

func (a byBPAddr) Len() int           { return len(a) }
func (a byBPAddr) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byBPAddr) Less(i, j int) bool { return a[i].Address < a[j].Address }

type breakpointSet struct {
	breakpoints map[uint16]*Breakpoint
}

func newBreakpointSet() *breakpointSet {
	return &breakpointSet{
		breakpoints: make(map[uint16]*Breakpoint),
	}
}

// Get looks up a breakpoint by address and returns it if found. Otherwise
// it returns nil.
func (s *breakpointSet) Get(addr uint16) *Breakpoint {
	if b, ok := s.breakpoints[addr]; ok {
		return b
	}
	return nil
}

// List returns all breakpoints in the set, ordered by address.
func (s *breakpointSet) List() []*Breakpoint {
	var breakpoints []*Breakpoint
	for _, b := range s.breakpoints {
		breakpoints = append(breakpoints, b)
	}
	sort.Sort(byBPAddr(breakpoints))
	return breakpoints
}

// Add adds a new breakpoint address to the set. If the breakpoint was
// already set, the existing breakpoint is returned.
func (s *breakpointSet) Add(addr uint16) *Breakpoint {
	if b, ok := s.breakpoints[addr]; ok {
		return b
	}
	b := &Breakpoint{Address: addr}
	s.breakpoints[addr] = b
	return b
}

// Remove removes a breakpoint from the set.
func (s *breakpointSet) Remove(addr uint16) {
	delete(s.breakpoints, addr)
}

// Active reports whether an enabled breakpoint is set on the address.
func (s *breakpointSet) Active(addr uint16) *Breakpoint {
	if b, ok := s.breakpoints[addr]; ok && !b.Disabled {
		return b
	}
	return nil
}
