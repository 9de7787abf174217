// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/transcode"
)

// TranscodeTest runs the transcoder over streams created by f.
func TranscodeTest(f NewSourceFunc) func(*testing.T) {
	type testcase struct {
		name   string
		from   utfstream.Encoding
		in     []uint32
		to     utfstream.Encoding
		policy transcode.Policy
		out    []uint32
		err    error
		offset int64
	}

	var tcs []testcase
	for _, from := range Encodings {
		for _, to := range Encodings {
			tcs = append(tcs,
				testcase{
					name: fmt.Sprintf("%s to %s/text", from, to),
					from: from, to: to,
					in:  Encode(from, Text),
					out: Encode(to, Text),
				},
				testcase{
					name: fmt.Sprintf("%s to %s/empty", from, to),
					from: from, to: to,
				},
			)
		}
	}

	tcs = append(tcs,
		testcase{
			name: "overlong zero",
			from: utfstream.UTF8, to: utfstream.UTF32,
			in:  []uint32{'a', 0xC0, 0x80},
			out: []uint32{'a'},
			err: utfstream.ErrIllegal, offset: 1,
		},
		testcase{
			name: "overlong zero replaced",
			from: utfstream.UTF8, to: utfstream.UTF32,
			in:     []uint32{0xC0, 0x80, 'a'},
			policy: transcode.Replace,
			// C0 is an invalid lead, 80 a stray trail byte
			out: []uint32{0xFFFD, 0xFFFD, 'a'},
		},
		testcase{
			name: "truncated three byte sequence",
			from: utfstream.UTF8, to: utfstream.UTF16,
			in:  []uint32{'x', 0xE2, 0x82},
			out: []uint32{'x'},
			err: utfstream.ErrIncomplete, offset: 1,
		},
		testcase{
			name: "bad trail keeps next char",
			from: utfstream.UTF8, to: utfstream.UTF8,
			in:     []uint32{0xE2, 'A'},
			policy: transcode.Replace,
			out:    []uint32{0xEF, 0xBF, 0xBD, 'A'},
		},
		testcase{
			name: "lone high surrogate at end",
			from: utfstream.UTF16, to: utfstream.UTF32,
			in:  []uint32{0xD800},
			err: utfstream.ErrIncomplete,
		},
		testcase{
			name: "high surrogate before non surrogate",
			from: utfstream.UTF16, to: utfstream.UTF32,
			in:  []uint32{0xD800, 0x41},
			err: utfstream.ErrIllegal,
		},
		testcase{
			name: "high surrogate before non surrogate skipped",
			from: utfstream.UTF16, to: utfstream.UTF32,
			in:     []uint32{0xD800, 0x41},
			policy: transcode.Skip,
			out:    []uint32{0x41},
		},
		testcase{
			name: "low surrogate first",
			from: utfstream.UTF16, to: utfstream.UTF8,
			in:  []uint32{0x41, 0xDC00},
			out: []uint32{0x41},
			err: utfstream.ErrIllegal, offset: 1,
		},
		testcase{
			name: "utf32 above max",
			from: utfstream.UTF32, to: utfstream.UTF16,
			in:     []uint32{0x110000, 0x10FFFF},
			policy: transcode.Replace,
			out:    []uint32{0xFFFD, 0xDBFF, 0xDFFF},
		},
		testcase{
			name: "max code point",
			from: utfstream.UTF8, to: utfstream.UTF8,
			in:  []uint32{0xF4, 0x8F, 0xBF, 0xBF},
			out: []uint32{0xF4, 0x8F, 0xBF, 0xBF},
		},
		testcase{
			name: "above max code point",
			from: utfstream.UTF8, to: utfstream.UTF8,
			in:  []uint32{0xF4, 0x90, 0x80, 0x80},
			err: utfstream.ErrIllegal,
		},
	)

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			ctx := context.Background()

			tr := transcode.New(f(tc.from, tc.in), tc.to, transcode.WithPolicy(tc.policy))
			a.Equal(tc.to, tr.Encoding())

			got, err := Drain(ctx, tr)
			if tc.err == nil {
				r.NoError(err, "unexpected transcoding error")
			} else {
				r.Error(err, "expected %v", tc.err)
				a.Equal(tc.err, errors.Cause(err), "wrong error kind")

				var derr *utfstream.DecodeError
				r.True(errors.As(err, &derr), "expected a DecodeError, got %T", err)
				a.Equal(tc.offset, derr.Offset, "wrong error offset")
				a.Equal(tc.from, derr.Encoding)

				_, err2 := tr.Next(ctx)
				a.Equal(err, err2, "error should stick")
			}
			a.True(tr.Exhausted(), "transcoder should be exhausted")

			if len(tc.out) == 0 {
				a.Empty(got)
			} else {
				a.Equal(tc.out, got)
			}
		}
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}
	}
}
