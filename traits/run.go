// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package traits

// Run holds the one to four code units that encode a single code point.
type Run struct {
	units [4]uint32
	n     uint8
}

func run1(a uint32) Run {
	return Run{units: [4]uint32{a}, n: 1}
}

func run2(a, b uint32) Run {
	return Run{units: [4]uint32{a, b}, n: 2}
}

func run3(a, b, c uint32) Run {
	return Run{units: [4]uint32{a, b, c}, n: 3}
}

func run4(a, b, c, d uint32) Run {
	return Run{units: [4]uint32{a, b, c, d}, n: 4}
}

// Len returns the number of units in the run.
func (r Run) Len() int { return int(r.n) }

// At returns the i-th unit.
func (r Run) At(i int) uint32 { return r.units[i] }

// Units returns a copy of the units.
func (r Run) Units() []uint32 {
	out := make([]uint32, r.n)
	copy(out, r.units[:r.n])
	return out
}

// AppendTo appends the units to dst.
func (r Run) AppendTo(dst []uint32) []uint32 {
	return append(dst, r.units[:r.n]...)
}
