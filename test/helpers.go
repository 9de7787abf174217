// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/traits"
)

// Text has one-, two-, three- and four-byte UTF-8 sequences.
const Text = "$€0123456789你好abcdefghijklmnopqrstyvwxyz\U0001F60E"

var Encodings = []utfstream.Encoding{utfstream.UTF8, utfstream.UTF16, utfstream.UTF32}

// Encode returns s encoded in enc, native order. s must be valid UTF-8.
func Encode(enc utfstream.Encoding, s string) []uint32 {
	tr := traits.For(enc)
	var out []uint32
	for _, r := range s {
		out = tr.Encode(utfstream.CodePoint(r)).AppendTo(out)
	}
	return out
}

// Drain reads src until the end of the stream and returns the units and the error that ended it.
// End of stream is reported as a nil error.
func Drain(ctx context.Context, src luigi.Source) ([]uint32, error) {
	var out []uint32
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			return out, nil
		} else if err != nil {
			return out, err
		}

		u, err := utfstream.UnitValue(v)
		if err != nil {
			return out, err
		}
		out = append(out, u)
	}
}
