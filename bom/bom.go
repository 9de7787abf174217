// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package bom detects, strips and prepends byte order marks.
//
// The mark is U+FEFF. Encoded as UTF-8 it is EF BB BF, as UTF-16 the unit
// 0xFEFF (0xFFFE when byte-swapped) and as UTF-32 the unit 0x0000FEFF
// (0xFFFE0000 when byte-swapped).
package bom // import "github.com/ssbc/utfstream/bom"

import (
	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/endian"
	"github.com/ssbc/utfstream/traits"
)

// Size returns the number of code units the mark takes up in enc.
func Size(enc utfstream.Encoding) int {
	if enc == utfstream.UTF8 {
		return 3
	}
	return 1
}

// Units returns the mark encoded in enc, native order.
func Units(enc utfstream.Encoding) []uint32 {
	return traits.For(enc).Encode(utfstream.BOM).Units()
}

// Bytes returns the serialized mark for enc in the given byte order.
func Bytes(enc utfstream.Encoding, order utfstream.Order) []byte {
	var out []byte
	bo := order.ByteOrder()
	for _, u := range Units(enc) {
		switch enc.Width() {
		case 1:
			out = append(out, byte(u))
		case 2:
			var b [2]byte
			bo.PutUint16(b[:], uint16(u))
			out = append(out, b[:]...)
		case 4:
			var b [4]byte
			bo.PutUint32(b[:], u)
			out = append(out, b[:]...)
		}
	}
	return out
}

// Has reports whether units starts with a native-order mark.
func Has(enc utfstream.Encoding, units []uint32) bool {
	want := Units(enc)
	if len(units) < len(want) {
		return false
	}
	for i, u := range want {
		if units[i] != u {
			return false
		}
	}
	return true
}

// HasSwapped reports whether units starts with a byte-swapped mark.
// It is always false for UTF-8.
func HasSwapped(enc utfstream.Encoding, units []uint32) bool {
	if enc == utfstream.UTF8 || len(units) == 0 {
		return false
	}
	return units[0] == endian.SwapUnit(uint32(utfstream.BOM), enc)
}
