// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package transcode_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/iostream"
	"github.com/ssbc/utfstream/mem"
	"github.com/ssbc/utfstream/transcode"
)

func TestChain(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	ctx := context.Background()

	const text = "$€0123456789你好"

	u16, err := transcode.ToUTF16(ctx, mem.FromString(text).Source())
	r.NoError(err)
	a.Equal([]uint16{0x24, 0x20AC, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 0x4F60, 0x597D}, u16)

	u32, err := transcode.ToUTF32(ctx, mem.FromUTF16(u16).Source())
	r.NoError(err)
	a.Equal([]uint32{0x24, 0x20AC, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 0x4F60, 0x597D}, u32)

	u8, err := transcode.ToUTF8(ctx, mem.FromUTF32(u32).Source())
	r.NoError(err)
	a.Equal([]byte(text), u8)

	s, err := transcode.ToString(ctx, mem.FromRunes([]rune(text)).Source())
	r.NoError(err)
	a.Equal(text, s)
}

func TestEmpty(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	tr := transcode.New(mem.FromString("").Source(), utfstream.UTF16)
	a.False(tr.Exhausted(), "priming waits for the first call to Next")

	_, err := tr.Next(ctx)
	a.True(luigi.IsEOS(err))
	a.True(tr.Exhausted())

	_, err = tr.Next(ctx)
	a.True(luigi.IsEOS(err), "end of stream should stick")
}

func TestUnitTypes(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	for _, tc := range []struct {
		to   utfstream.Encoding
		want interface{}
	}{
		{utfstream.UTF8, byte('x')},
		{utfstream.UTF16, uint16('x')},
		{utfstream.UTF32, uint32('x')},
	} {
		v, err := transcode.New(mem.FromString("x").Source(), tc.to).Next(ctx)
		a.NoError(err)
		a.Equal(tc.want, v)
	}
}

func TestPolicies(t *testing.T) {
	ctx := context.Background()
	in := []byte{'a', 0xC0, 0x80, 'b', 0xE2}

	t.Run("strict", func(t *testing.T) {
		a := assert.New(t)
		tr := transcode.New(mem.FromBytes(in).Source(), utfstream.UTF32)

		v, err := tr.Next(ctx)
		a.NoError(err)
		a.Equal(uint32('a'), v)

		_, err = tr.Next(ctx)
		a.True(utfstream.IsIllegal(err))
		a.EqualError(err, "UTF-8 decode at unit 1: illegal code unit sequence")
		a.True(tr.Exhausted())
		a.EqualValues(2, tr.Consumed())
	})

	t.Run("replace", func(t *testing.T) {
		s, err := transcode.ToString(ctx, mem.FromBytes(in).Source(), transcode.WithPolicy(transcode.Replace))
		assert.NoError(t, err)
		assert.Equal(t, "a��b�", s)
	})

	t.Run("skip", func(t *testing.T) {
		s, err := transcode.ToString(ctx, mem.FromBytes(in).Source(), transcode.WithPolicy(transcode.Skip))
		assert.NoError(t, err)
		assert.Equal(t, "ab", s)
	})

	t.Run("incomplete at end", func(t *testing.T) {
		_, err := transcode.ToUTF16(ctx, mem.FromBytes([]byte{'a', 0xE2, 0x82}).Source())
		assert.True(t, utfstream.IsIncomplete(err))

		var derr *utfstream.DecodeError
		require.True(t, errors.As(err, &derr))
		assert.EqualValues(t, 1, derr.Offset)
	})
}

func TestPolicyString(t *testing.T) {
	a := assert.New(t)
	a.Equal("strict", transcode.Strict.String())
	a.Equal("replace", transcode.Replace.String())
	a.Equal("skip", transcode.Skip.String())
	a.Equal("Policy(7)", transcode.Policy(7).String())
}

func TestReader(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := iostream.NewSource(strings.NewReader("grüße"))
	u32, err := transcode.ToUTF32(ctx, src)
	a.NoError(err)
	a.Equal([]uint32{'g', 'r', 0xFC, 0xDF, 'e'}, u32)
}

func TestUpstreamError(t *testing.T) {
	a := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transcode.ToUTF16(ctx, iostream.NewSource(strings.NewReader("abc")))
	a.Error(err)
	a.Equal(context.Canceled, errors.Cause(err))
}

func TestSinglePass(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := iostream.NewSource(strings.NewReader("abc"))
	first := transcode.New(src, utfstream.UTF16)
	second := transcode.New(src, utfstream.UTF32)

	a.True(second.Exhausted())
	_, err := second.Next(ctx)
	a.Equal(utfstream.ErrAlreadyClaimed, errors.Cause(err))

	v, err := first.Next(ctx)
	a.NoError(err)
	a.Equal(uint16('a'), v)
}

func TestBadUnit(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := utfstream.WithEncoding(stringSource{}, utfstream.UTF8)
	_, err := transcode.ToUTF8(ctx, src)
	a.Equal(utfstream.ErrBadUnit, errors.Cause(err))
}

type stringSource struct{}

func (stringSource) Next(context.Context) (interface{}, error) { return "no unit", nil }
