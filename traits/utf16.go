// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package traits

import "github.com/ssbc/utfstream"

// UTF16 implements Traits for 16-bit code units, see RFC 2781.
type UTF16 struct{}

var _ Traits = UTF16{}

const (
	surrHigh  = 0xD800
	surrLow   = 0xDC00
	surrEnd   = 0xE000
	surrFirst = 0x10000
)

// IsHighSurrogate reports whether u is the first half of a surrogate pair.
func IsHighSurrogate(u uint32) bool { return surrHigh <= u && u < surrLow }

// IsLowSurrogate reports whether u is the second half of a surrogate pair.
func IsLowSurrogate(u uint32) bool { return surrLow <= u && u < surrEnd }

// CombineSurrogates joins a surrogate pair into a code point.
func CombineSurrogates(hi, lo uint32) utfstream.CodePoint {
	return utfstream.CodePoint((hi&0x3FF)<<10|(lo&0x3FF)) + surrFirst
}

func (UTF16) Encoding() utfstream.Encoding { return utfstream.UTF16 }

func (UTF16) MaxWidth() int { return 2 }

func (UTF16) Width(c utfstream.CodePoint) int {
	if c >= surrFirst {
		return 2
	}
	return 1
}

func (UTF16) Decode(c Cursor) utfstream.CodePoint {
	w1, ok := next(c)
	if !ok {
		return utfstream.Incomplete
	}
	if w1 > 0xFFFF {
		return utfstream.Illegal
	}
	if w1 < surrHigh || surrEnd <= w1 {
		return utfstream.CodePoint(w1)
	}
	if !IsHighSurrogate(w1) {
		return utfstream.Illegal
	}

	w2, ok := c.Peek()
	if !ok {
		return utfstream.Incomplete
	}
	if !IsLowSurrogate(w2) {
		return utfstream.Illegal
	}
	c.Advance()
	return CombineSurrogates(w1, w2)
}

func (UTF16) DecodeValid(c Cursor) utfstream.CodePoint {
	w1, _ := next(c)
	if w1 < surrHigh || surrEnd <= w1 {
		return utfstream.CodePoint(w1)
	}
	w2, _ := next(c)
	return CombineSurrogates(w1, w2)
}

func (UTF16) Encode(c utfstream.CodePoint) Run {
	mustEncodable(c)
	v := uint32(c)
	if v < surrFirst {
		return run1(v)
	}
	v -= surrFirst
	return run2(surrHigh|v>>10, surrLow|v&0x3FF)
}
