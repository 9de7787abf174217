// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/endian"
)

// SourceTest checks that a stream implementation yields exactly the units it was created with.
func SourceTest(f NewSourceFunc) func(*testing.T) {
	type testcase struct {
		name  string
		enc   utfstream.Encoding
		units []uint32
	}

	var tcs []testcase
	for _, enc := range Encodings {
		tcs = append(tcs,
			testcase{name: enc.String() + "/empty", enc: enc},
			testcase{name: enc.String() + "/text", enc: enc, units: Encode(enc, Text)},
		)
	}
	// not valid text, streams must not care
	tcs = append(tcs, testcase{
		name:  "UTF-16/lone surrogate",
		enc:   utfstream.UTF16,
		units: []uint32{0xD800, 0x41},
	})

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			ctx := context.Background()

			src := f(tc.enc, tc.units)
			r.NotNil(src, "returned source is nil")
			a.Equal(tc.enc, src.Encoding(), "encoding mismatch")

			got, err := Drain(ctx, src)
			r.NoError(err, "error draining source")
			a.Equal(len(tc.units), len(got), "unit count mismatch")
			for i := range tc.units {
				if i < len(got) {
					a.Equal(tc.units[i], got[i], "unit %d mismatch", i)
				}
			}

			_, err = src.Next(ctx)
			a.True(luigi.IsEOS(err), "expected end-of-stream after the end, got %v", err)
		}
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}

		t.Run("SinglePass", func(t *testing.T) {
			a := assert.New(t)
			ctx := context.Background()

			src := f(utfstream.UTF16, Encode(utfstream.UTF16, Text))
			first := endian.Convert(src, utfstream.Native, utfstream.Native)
			second := endian.Convert(src, utfstream.Native, utfstream.Native)

			_, err := second.Next(ctx)
			a.Equal(utfstream.ErrAlreadyClaimed, errors.Cause(err), "second consumer should be refused")

			got, err := Drain(ctx, first)
			a.NoError(err)
			a.Equal(Encode(utfstream.UTF16, Text), got)
		})
	}
}
