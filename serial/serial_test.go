// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package serial_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/endian"
	"github.com/ssbc/utfstream/iostream"
	"github.com/ssbc/utfstream/mem"
	"github.com/ssbc/utfstream/serial"
	utest "github.com/ssbc/utfstream/test"
)

func TestBytes(t *testing.T) {
	ctx := context.Background()

	type testcase struct {
		enc   utfstream.Encoding
		order utfstream.Order
		units []uint32
		want  []byte
	}

	tcs := []testcase{
		{utfstream.UTF8, utfstream.Big, []uint32{0xE2, 0x82, 0xAC}, []byte{0xE2, 0x82, 0xAC}},
		{utfstream.UTF16, utfstream.Little, []uint32{0x20AC, 0xD83D}, []byte{0xAC, 0x20, 0x3D, 0xD8}},
		{utfstream.UTF16, utfstream.Big, []uint32{0x20AC, 0xD83D}, []byte{0x20, 0xAC, 0xD8, 0x3D}},
		{utfstream.UTF32, utfstream.Little, []uint32{0x1F60E}, []byte{0x0E, 0xF6, 0x01, 0x00}},
		{utfstream.UTF32, utfstream.Big, []uint32{0x1F60E}, []byte{0x00, 0x01, 0xF6, 0x0E}},
	}

	for _, tc := range tcs {
		t.Run(tc.enc.String()+"/"+tc.order.String(), func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			ordered := endian.Convert(mem.New(tc.enc, tc.units).Source(), utfstream.Native, tc.order)
			ser := serial.Bytes(ordered)
			a.Equal(utfstream.UTF8, ser.Encoding())
			a.Equal(len(tc.want), ser.Len())

			snk, err := mem.Collect(ctx, ser)
			r.NoError(err)
			a.Equal(tc.want, snk.Bytes())

			back := endian.Convert(serial.Units(mem.FromBytes(snk.Bytes()).Source(), tc.enc), tc.order, utfstream.Native)
			got, err := utest.Drain(ctx, back)
			r.NoError(err)
			a.Equal(tc.units, got)
		})
	}
}

func TestPartialUnit(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := serial.Units(iostream.NewSource(bytes.NewReader([]byte{0, 'a', 0, 'b', 0})), utfstream.UTF16)
	got, err := utest.Drain(ctx, src)
	a.Len(got, 2)
	a.Equal(utfstream.ErrPartialUnit, errors.Cause(err))

	_, err2 := src.Next(ctx)
	a.Equal(err, err2, "error should stick")
}

func TestUnitTypes(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	in := mem.FromBytes([]byte{1, 2, 3, 4}).Source()

	v, err := serial.Units(in, utfstream.UTF32).Next(ctx)
	a.NoError(err)
	a.IsType(uint32(0), v)

	in = mem.FromBytes([]byte{1, 2}).Source()
	v, err = serial.Units(in, utfstream.UTF16).Next(ctx)
	a.NoError(err)
	a.IsType(uint16(0), v)
}

func TestNotAByte(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	_, err := serial.Units(mem.New(utfstream.UTF16, []uint32{0x100}).Source(), utfstream.UTF8).Next(ctx)
	a.Equal(utfstream.ErrBadUnit, errors.Cause(err))
}

// flakySource yields its bytes but fails once before the byte at failAt.
type flakySource struct {
	data   []byte
	pos    int
	failAt int
	failed bool
}

func (s *flakySource) Next(context.Context) (interface{}, error) {
	if s.pos == s.failAt && !s.failed {
		s.failed = true
		return nil, errors.New("transient")
	}
	if s.pos >= len(s.data) {
		return nil, luigi.EOS{}
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func TestUpstreamErrorSticks(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := &flakySource{data: []byte{0x41, 0x00, 0x42, 0x00}, failAt: 1}
	d := serial.Units(src, utfstream.UTF16)

	_, err := d.Next(ctx)
	a.EqualError(errors.Cause(err), "transient")

	// the upstream recovered, but the half-read unit is gone
	for i := 0; i < 2; i++ {
		v, err2 := d.Next(ctx)
		a.Nil(v, "no realigned unit may come out")
		a.Equal(err, err2, "error should stick")
	}
}
