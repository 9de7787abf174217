// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream

import "fmt"

// CodePoint holds a Unicode scalar value or one of the two sentinels.
type CodePoint uint32

const (
	// Illegal is returned by decoders for ill-formed input.
	Illegal CodePoint = 0xFFFFFFFF

	// Incomplete is returned by decoders when the input ends inside a sequence.
	Incomplete CodePoint = 0xFFFFFFFE

	MaxCodePoint    CodePoint = 0x10FFFF
	ReplacementChar CodePoint = 0xFFFD
	BOM             CodePoint = 0xFEFF
)

// Valid reports whether c is a scalar value: at most U+10FFFF and not a surrogate.
func (c CodePoint) Valid() bool {
	if c > MaxCodePoint {
		return false
	}
	if 0xD800 <= c && c <= 0xDFFF {
		return false
	}
	return true
}

// Err maps the sentinels to ErrIllegal and ErrIncomplete.
// Any other invalid value is illegal, valid code points return nil.
func (c CodePoint) Err() error {
	switch {
	case c == Incomplete:
		return ErrIncomplete
	case !c.Valid():
		return ErrIllegal
	}
	return nil
}

func (c CodePoint) String() string {
	switch c {
	case Illegal:
		return "illegal"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("U+%04X", uint32(c))
}
