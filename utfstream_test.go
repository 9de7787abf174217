// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	a := assert.New(t)

	for in, want := range map[string]Encoding{
		"utf8": UTF8, "UTF-8": UTF8, "utf_16": UTF16, "UTF16": UTF16, "utf-32": UTF32,
	} {
		enc, err := ParseEncoding(in)
		a.NoError(err, in)
		a.Equal(want, enc, in)
	}

	_, err := ParseEncoding("latin1")
	a.Error(err)
}

func TestEncoding(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, UTF8.Width())
	a.Equal(2, UTF16.Width())
	a.Equal(4, UTF32.Width())
	a.Equal(4, UTF8.MaxUnits())
	a.Equal(2, UTF16.MaxUnits())
	a.Equal(1, UTF32.MaxUnits())

	a.False(Encoding(3).Valid())
	a.Equal("Encoding(3)", Encoding(3).String())
	a.Panics(func() { Encoding(3).Width() })
}

func TestUnitValue(t *testing.T) {
	a := assert.New(t)

	for _, v := range []interface{}{byte(7), uint16(7), uint32(7), rune(7)} {
		u, err := UnitValue(v)
		a.NoError(err)
		a.Equal(uint32(7), u)
	}

	_, err := UnitValue(7)
	a.Equal(ErrBadUnit, errors.Cause(err))

	a.Equal(byte(0xAC), UTF8.Unit(0xAC))
	a.Equal(uint16(0x20AC), UTF16.Unit(0x20AC))
	a.Equal(uint32(0x20AC), UTF32.Unit(0x20AC))
}

func TestOrder(t *testing.T) {
	a := assert.New(t)

	a.NotEqual(Native, HostOrder())
	a.NotEqual(HostOrder(), NonNative())
	a.Equal(HostOrder(), Native.Resolve())
	a.Equal(Big, Little.Swapped())
	a.Equal(NonNative(), Native.Swapped())

	a.False(NeedsSwap(Native, HostOrder()))
	a.True(NeedsSwap(Native, NonNative()))
	a.True(NeedsSwap(Little, Big))
	a.False(NeedsSwap(Big, Big))

	for in, want := range map[string]Order{"": Native, "native": Native, "LE": Little, "little": Little, "be": Big, "Big": Big} {
		o, err := ParseOrder(in)
		a.NoError(err, in)
		a.Equal(want, o, in)
	}
	_, err := ParseOrder("middle")
	a.Error(err)
}

func TestCodePoint(t *testing.T) {
	a := assert.New(t)

	a.True(CodePoint(0).Valid())
	a.True(MaxCodePoint.Valid())
	a.True(CodePoint(0xE000).Valid())
	a.False(CodePoint(0xD800).Valid())
	a.False(CodePoint(0xDFFF).Valid())
	a.False((MaxCodePoint + 1).Valid())
	a.False(Illegal.Valid())
	a.False(Incomplete.Valid())

	a.Equal(ErrIllegal, Illegal.Err())
	a.Equal(ErrIncomplete, Incomplete.Err())
	a.Equal(ErrIllegal, CodePoint(0xDC00).Err())
	a.NoError(BOM.Err())

	a.Equal("U+FEFF", BOM.String())
	a.Equal("U+1F60E", CodePoint(0x1F60E).String())
	a.Equal("illegal", Illegal.String())
	a.Equal("incomplete", Incomplete.String())
}

func TestDecodeError(t *testing.T) {
	a := assert.New(t)

	var err error = &DecodeError{Err: ErrIncomplete, Encoding: UTF16, Offset: 3}
	err = errors.Wrap(err, "reading")

	a.True(IsIncomplete(err))
	a.False(IsIllegal(err))
	a.True(errors.Is(err, ErrIncomplete))
	a.EqualError(err, "reading: UTF-16 decode at unit 3: incomplete code unit sequence")
}

type countSource struct {
	Once
	n int
}

func (s *countSource) Next(context.Context) (interface{}, error) {
	if s.n == 0 {
		return nil, luigi.EOS{}
	}
	s.n--
	return byte(s.n), nil
}

func TestWithEncoding(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	ctx := context.Background()

	inner := &countSource{n: 1}
	src := WithEncoding(inner, UTF16)
	a.Equal(UTF16, src.Encoding())

	r.NoError(Claim(src))
	a.Equal(ErrAlreadyClaimed, inner.Claim(), "claims reach the wrapped stream")

	v, err := src.Next(ctx)
	a.NoError(err)
	a.Equal(byte(0), v)

	same := WithEncoding(src, UTF16)
	a.Equal(src, same)
}

func TestErrorSource(t *testing.T) {
	a := assert.New(t)
	boom := errors.New("boom")

	src := ErrorSource(UTF32, boom)
	a.Equal(UTF32, src.Encoding())
	for i := 0; i < 2; i++ {
		_, err := src.Next(context.Background())
		a.Equal(boom, err)
	}
	a.NoError(Claim(src), "plain sources have nothing to claim")
}
