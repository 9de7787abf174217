// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package traits

import "github.com/ssbc/utfstream"

// UTF32 implements Traits for 32-bit code units.
type UTF32 struct{}

var _ Traits = UTF32{}

func (UTF32) Encoding() utfstream.Encoding { return utfstream.UTF32 }

func (UTF32) MaxWidth() int { return 1 }

func (UTF32) Width(utfstream.CodePoint) int { return 1 }

func (UTF32) Decode(c Cursor) utfstream.CodePoint {
	u, ok := next(c)
	if !ok {
		return utfstream.Incomplete
	}
	cp := utfstream.CodePoint(u)
	if !cp.Valid() {
		return utfstream.Illegal
	}
	return cp
}

func (UTF32) DecodeValid(c Cursor) utfstream.CodePoint {
	u, _ := next(c)
	return utfstream.CodePoint(u)
}

func (UTF32) Encode(c utfstream.CodePoint) Run {
	mustEncodable(c)
	return run1(uint32(c))
}
