// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package endian_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/endian"
	"github.com/ssbc/utfstream/mem"
	utest "github.com/ssbc/utfstream/test"
)

func TestSwap(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint16(0xFFFE), endian.Swap16(0xFEFF))
	a.Equal(uint32(0xFFFE0000), endian.Swap32(0x0000FEFF))
	a.Equal(uint32(0xFFFE), endian.SwapUnit(0xFEFF, utfstream.UTF16))
	a.Equal(uint32(0xEF), endian.SwapUnit(0xEF, utfstream.UTF8))

	a.Equal(uint32(0xFEFF), endian.Conditional(0xFEFF, utfstream.UTF16, utfstream.Native, utfstream.HostOrder()))
	a.Equal(uint32(0xFFFE), endian.Conditional(0xFEFF, utfstream.UTF16, utfstream.Little, utfstream.Big))
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	orders := []utfstream.Order{utfstream.Native, utfstream.Little, utfstream.Big}

	for _, enc := range utest.Encodings {
		in := utest.Encode(enc, utest.Text)
		for _, o1 := range orders {
			for _, o2 := range orders {
				t.Run(fmt.Sprintf("%s/%s-%s", enc, o1, o2), func(t *testing.T) {
					a := assert.New(t)
					r := require.New(t)

					there := endian.Convert(mem.New(enc, in).Source(), o1, o2)
					a.Equal(enc, there.Encoding())
					a.Equal(len(in), there.Len())

					back := endian.Convert(there, o2, o1)
					got, err := utest.Drain(ctx, back)
					r.NoError(err)
					a.Equal(in, got)
				})
			}
		}
	}
}

func TestConvert(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := mem.New(utfstream.UTF16, []uint32{0x0041, 0xFEFF}).Source()
	got, err := utest.Drain(ctx, endian.Convert(src, utfstream.Little, utfstream.Big))
	a.NoError(err)
	a.Equal([]uint32{0x4100, 0xFFFE}, got)

	// single bytes have no order
	src = mem.FromString("ab").Source()
	got, err = utest.Drain(ctx, endian.Convert(src, utfstream.Little, utfstream.Big))
	a.NoError(err)
	a.Equal([]uint32{'a', 'b'}, got)
}
