// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/bom"
	"github.com/ssbc/utfstream/endian"
	"github.com/ssbc/utfstream/mem"
	"github.com/ssbc/utfstream/pipeline"
	"github.com/ssbc/utfstream/serial"
	"github.com/ssbc/utfstream/transcode"
)

// WireBytes returns units as they are laid out on the wire in the given order.
func WireBytes(enc utfstream.Encoding, order utfstream.Order, units []uint32) []byte {
	bo := order.ByteOrder()
	var out []byte
	for _, u := range units {
		switch enc.Width() {
		case 1:
			out = append(out, byte(u))
		case 2:
			var b [2]byte
			bo.PutUint16(b[:], uint16(u))
			out = append(out, b[:]...)
		default:
			var b [4]byte
			bo.PutUint32(b[:], u)
			out = append(out, b[:]...)
		}
	}
	return out
}

// PipelineTest runs complete byte-to-byte conversions over streams created by f.
func PipelineTest(f NewSourceFunc) func(*testing.T) {
	type testcase struct {
		name string
		from utfstream.Encoding
		in   []uint32
		opts []pipeline.Option
		want []byte
	}

	orders := []utfstream.Order{utfstream.Little, utfstream.Big}

	var tcs []testcase
	for _, from := range Encodings {
		for _, to := range Encodings {
			for _, order := range orders {
				tcs = append(tcs, testcase{
					name: fmt.Sprintf("%s to %s %s", from, to, order),
					from: from,
					in:   Encode(from, Text),
					opts: []pipeline.Option{pipeline.From(from), pipeline.To(to), pipeline.ToOrder(order)},
					want: WireBytes(to, order, Encode(to, Text)),
				})
			}

			tcs = append(tcs, testcase{
				name: fmt.Sprintf("%s to %s with mark", from, to),
				from: from,
				in:   append(bom.Units(from), Encode(from, Text)...),
				opts: []pipeline.Option{pipeline.From(from), pipeline.To(to), pipeline.ToOrder(utfstream.Big), pipeline.WithBOM(true)},
				want: append(bom.Bytes(to, utfstream.Big), WireBytes(to, utfstream.Big, Encode(to, Text))...),
			})
		}
	}

	var swapped []uint32
	for _, u := range append(bom.Units(utfstream.UTF16), Encode(utfstream.UTF16, "héllo")...) {
		swapped = append(swapped, endian.SwapUnit(u, utfstream.UTF16))
	}
	tcs = append(tcs,
		testcase{
			name: "swapped mark overrides declared order",
			from: utfstream.UTF16,
			in:   swapped,
			opts: []pipeline.Option{pipeline.From(utfstream.UTF16)},
			want: []byte("héllo"),
		},
		testcase{
			name: "kept mark",
			from: utfstream.UTF8,
			in:   append(bom.Units(utfstream.UTF8), 'a'),
			opts: []pipeline.Option{pipeline.DetectBOM(false)},
			want: []byte{0xEF, 0xBB, 0xBF, 'a'},
		},
		testcase{
			name: "auto utf32",
			from: utfstream.UTF32,
			in:   append(bom.Units(utfstream.UTF32), Encode(utfstream.UTF32, Text)...),
			opts: []pipeline.Option{pipeline.FromAuto()},
			want: []byte(Text),
		},
		testcase{
			name: "auto without mark",
			from: utfstream.UTF8,
			in:   Encode(utfstream.UTF8, Text),
			opts: []pipeline.Option{pipeline.FromAuto()},
			want: []byte(Text),
		},
		testcase{
			name: "replace",
			from: utfstream.UTF8,
			in:   []uint32{'a', 0xFF, 'b'},
			opts: []pipeline.Option{pipeline.WithPolicy(transcode.Replace)},
			want: []byte("a�b"),
		},
	)

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			ctx := context.Background()

			byteSrc := serial.Bytes(f(tc.from, tc.in))
			out, err := pipeline.New(ctx, byteSrc, tc.opts...)
			r.NoError(err, "error building pipeline")
			a.Equal(utfstream.UTF8, out.Encoding())

			snk, err := mem.Collect(ctx, out)
			r.NoError(err, "error running pipeline")
			a.Equal(tc.want, snk.Bytes())
		}
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}
	}
}
