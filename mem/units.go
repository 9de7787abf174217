// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package mem keeps code units in memory and streams them.
package mem // import "github.com/ssbc/utfstream/mem"

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// Units is an in-memory sequence of code units.
// Unlike byte streams read from files it can be traversed any number of times.
type Units struct {
	enc   utfstream.Encoding
	units []uint32
}

// New returns a Units holding units of encoding enc. The slice is not copied.
func New(enc utfstream.Encoding, units []uint32) *Units {
	return &Units{enc: enc, units: units}
}

// FromBytes holds b as 8-bit units.
func FromBytes(b []byte) *Units {
	units := make([]uint32, len(b))
	for i, c := range b {
		units[i] = uint32(c)
	}
	return New(utfstream.UTF8, units)
}

// FromString holds the bytes of s as UTF-8 units. s is not validated.
func FromString(s string) *Units {
	return FromBytes([]byte(s))
}

// FromUTF16 holds 16-bit units.
func FromUTF16(u16 []uint16) *Units {
	units := make([]uint32, len(u16))
	for i, u := range u16 {
		units[i] = uint32(u)
	}
	return New(utfstream.UTF16, units)
}

// FromUTF32 holds 32-bit units.
func FromUTF32(u32 []uint32) *Units {
	return New(utfstream.UTF32, u32)
}

// FromRunes holds runes as UTF-32 units.
func FromRunes(rs []rune) *Units {
	units := make([]uint32, len(rs))
	for i, r := range rs {
		units[i] = uint32(r)
	}
	return New(utfstream.UTF32, units)
}

func (u *Units) Encoding() utfstream.Encoding { return u.enc }

func (u *Units) Len() int { return len(u.units) }

// Slice returns the units. It is not a copy.
func (u *Units) Slice() []uint32 { return u.units }

// Source returns a new stream starting at the first unit.
// Every call returns an independent cursor.
func (u *Units) Source() utfstream.Source {
	return &cursor{enc: u.enc, units: u.units}
}

type cursor struct {
	utfstream.Once

	enc   utfstream.Encoding
	units []uint32
	pos   int
}

func (c *cursor) Encoding() utfstream.Encoding { return c.enc }

func (c *cursor) Len() int { return len(c.units) - c.pos }

func (c *cursor) Next(ctx context.Context) (interface{}, error) {
	if c.pos >= len(c.units) {
		return nil, luigi.EOS{}
	}
	u := c.units[c.pos]
	c.pos++
	return c.enc.Unit(u), nil
}
