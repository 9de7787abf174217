// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package endian swaps the byte order of code unit streams.
//
// A unit "in big order" is a unit whose in-memory bytes read big-endian.
// On a little-endian host that means its numeric value is byte-swapped.
package endian // import "github.com/ssbc/utfstream/endian"

import (
	"context"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/ssbc/utfstream"
)

// Swap16 reverses the bytes of a 16-bit unit.
func Swap16(u uint16) uint16 { return bits.ReverseBytes16(u) }

// Swap32 reverses the bytes of a 32-bit unit.
func Swap32(u uint32) uint32 { return bits.ReverseBytes32(u) }

// SwapUnit reverses the bytes of u according to the unit width of enc.
// UTF-8 units are returned unchanged.
func SwapUnit(u uint32, enc utfstream.Encoding) uint32 {
	switch enc.Width() {
	case 2:
		return uint32(Swap16(uint16(u)))
	case 4:
		return Swap32(u)
	}
	return u
}

// Conditional swaps u iff from and to are different byte orders.
func Conditional(u uint32, enc utfstream.Encoding, from, to utfstream.Order) uint32 {
	if !utfstream.NeedsSwap(from, to) {
		return u
	}
	return SwapUnit(u, enc)
}

// Converter is a stream of the units of its source, converted from one byte order into another.
type Converter struct {
	utfstream.Once

	src  utfstream.Source
	swap bool
	err  error
}

var _ utfstream.Source = (*Converter)(nil)

// Convert returns src with every unit converted from order from to order to.
func Convert(src utfstream.Source, from, to utfstream.Order) *Converter {
	c := &Converter{
		src:  src,
		swap: src.Encoding().Width() > 1 && utfstream.NeedsSwap(from, to),
	}
	if err := utfstream.Claim(src); err != nil {
		c.err = errors.Wrap(err, "endian: error claiming source")
	}
	return c
}

func (c *Converter) Encoding() utfstream.Encoding { return c.src.Encoding() }

// Len forwards the length of the source, if it knows it.
func (c *Converter) Len() int {
	if l, ok := c.src.(utfstream.Lener); ok {
		return l.Len()
	}
	return 0
}

func (c *Converter) Next(ctx context.Context) (interface{}, error) {
	if c.err != nil {
		return nil, c.err
	}

	v, err := c.src.Next(ctx)
	if err != nil || !c.swap {
		return v, err
	}

	u, err := utfstream.UnitValue(v)
	if err != nil {
		return nil, errors.Wrap(err, "endian: unexpected unit")
	}
	enc := c.src.Encoding()
	return enc.Unit(SwapUnit(u, enc)), nil
}
