// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package traits

import "github.com/ssbc/utfstream"

// UTF8 implements Traits for 8-bit code units.
type UTF8 struct{}

var _ Traits = UTF8{}

func (UTF8) Encoding() utfstream.Encoding { return utfstream.UTF8 }

func (UTF8) MaxWidth() int { return 4 }

func (UTF8) Width(c utfstream.CodePoint) int {
	switch {
	case c <= 0x7F:
		return 1
	case c <= 0x7FF:
		return 2
	case c <= 0xFFFF:
		return 3
	}
	return 4
}

// trailLength classifies a lead byte. -1 marks bytes that can not start a sequence.
func trailLength(lead uint32) int {
	switch {
	case lead < 0x80:
		return 0
	case lead < 0xC2:
		return -1
	case lead < 0xE0:
		return 1
	case lead < 0xF0:
		return 2
	case lead <= 0xF4:
		return 3
	}
	return -1
}

func isTrail(u uint32) bool {
	return u&^0x3F == 0x80
}

func (t UTF8) Decode(c Cursor) utfstream.CodePoint {
	lead, ok := next(c)
	if !ok {
		return utfstream.Incomplete
	}

	trail := trailLength(lead)
	if trail < 0 {
		return utfstream.Illegal
	}
	if trail == 0 {
		return utfstream.CodePoint(lead)
	}

	cp := utfstream.CodePoint(lead) & (1<<(6-trail) - 1)
	for i := 0; i < trail; i++ {
		u, ok := c.Peek()
		if !ok {
			return utfstream.Incomplete
		}
		if !isTrail(u) {
			return utfstream.Illegal
		}
		c.Advance()
		cp = cp<<6 | utfstream.CodePoint(u&0x3F)
	}

	if !cp.Valid() {
		return utfstream.Illegal
	}
	// overlong
	if t.Width(cp) != trail+1 {
		return utfstream.Illegal
	}
	return cp
}

func (UTF8) DecodeValid(c Cursor) utfstream.CodePoint {
	lead, _ := next(c)
	if lead < 0xC0 {
		return utfstream.CodePoint(lead)
	}

	var trail int
	switch {
	case lead < 0xE0:
		trail = 1
	case lead < 0xF0:
		trail = 2
	default:
		trail = 3
	}

	cp := utfstream.CodePoint(lead) & (1<<(6-trail) - 1)
	for i := 0; i < trail; i++ {
		u, _ := next(c)
		cp = cp<<6 | utfstream.CodePoint(u&0x3F)
	}
	return cp
}

func (UTF8) Encode(c utfstream.CodePoint) Run {
	mustEncodable(c)
	v := uint32(c)
	switch {
	case v <= 0x7F:
		return run1(v)
	case v <= 0x7FF:
		return run2(v>>6|0xC0, v&0x3F|0x80)
	case v <= 0xFFFF:
		return run3(v>>12|0xE0, v>>6&0x3F|0x80, v&0x3F|0x80)
	}
	return run4(v>>18|0xF0, v>>12&0x3F|0x80, v>>6&0x3F|0x80, v&0x3F|0x80)
}
