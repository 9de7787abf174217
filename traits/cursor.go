// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package traits

// Unit is the set of Go types that hold code units.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// SliceCursor walks an in-memory slice of code units.
type SliceCursor[U Unit] struct {
	units []U
	pos   int
}

// NewSliceCursor returns a cursor at the start of units.
func NewSliceCursor[U Unit](units []U) *SliceCursor[U] {
	return &SliceCursor[U]{units: units}
}

func (c *SliceCursor[U]) Peek() (uint32, bool) {
	if c.pos >= len(c.units) {
		return 0, false
	}
	return uint32(c.units[c.pos]), true
}

func (c *SliceCursor[U]) Advance() {
	if c.pos < len(c.units) {
		c.pos++
	}
}

// Pos returns the number of units consumed so far.
func (c *SliceCursor[U]) Pos() int { return c.pos }

// Done reports whether all units have been consumed.
func (c *SliceCursor[U]) Done() bool { return c.pos >= len(c.units) }
