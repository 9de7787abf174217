// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package traits implements decoding and encoding of single code points
// for UTF-8, UTF-16 and UTF-32.
//
// Decoders never fail loudly. Ill-formed input yields utfstream.Illegal and
// input that ends inside a sequence yields utfstream.Incomplete. A unit that
// reveals a malformation is left unconsumed unless it is the lead unit, so
// callers that resynchronize do not lose the following character.
package traits // import "github.com/ssbc/utfstream/traits"

import (
	"fmt"

	"github.com/ssbc/utfstream"
)

// Cursor is the read position in a sequence of code units.
type Cursor interface {
	// Peek returns the unit at the current position, or false at the end.
	Peek() (uint32, bool)

	// Advance moves past the unit returned by the last successful Peek.
	Advance()
}

func next(c Cursor) (uint32, bool) {
	u, ok := c.Peek()
	if ok {
		c.Advance()
	}
	return u, ok
}

// Traits decodes and encodes code points in one encoding.
type Traits interface {
	Encoding() utfstream.Encoding

	// MaxWidth is the largest number of units Encode can return.
	MaxWidth() int

	// Width returns the number of units needed to encode c.
	Width(c utfstream.CodePoint) int

	// Decode reads one code point and validates it.
	Decode(c Cursor) utfstream.CodePoint

	// DecodeValid reads one code point from input known to be well-formed.
	// It does no checks; callers must have validated the units already, for
	// example with Decode or because they come from Encode. On ill-formed
	// input the result is unspecified.
	DecodeValid(c Cursor) utfstream.CodePoint

	// Encode encodes a valid code point. It panics on the sentinels.
	Encode(c utfstream.CodePoint) Run
}

// For returns the traits of enc.
func For(enc utfstream.Encoding) Traits {
	switch enc {
	case utfstream.UTF8:
		return UTF8{}
	case utfstream.UTF16:
		return UTF16{}
	case utfstream.UTF32:
		return UTF32{}
	}
	panic(fmt.Sprintf("traits: no traits for %s", enc))
}

func mustEncodable(c utfstream.CodePoint) {
	if c == utfstream.Illegal || c == utfstream.Incomplete {
		panic("traits: encoding sentinel code point " + c.String())
	}
}
