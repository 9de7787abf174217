// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package iostream

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
)

func TestCopy(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	ctx := context.Background()

	src := NewSource(strings.NewReader("hello"))
	var buf bytes.Buffer
	snk := NewSink(&buf)

	r.NoError(luigi.Pump(ctx, snk, src))
	a.EqualValues(5, src.Offset())
	a.Equal(0, buf.Len(), "bytes stay buffered until close")

	r.NoError(snk.Close())
	a.Equal("hello", buf.String())
	a.EqualValues(5, snk.Written())

	_, err := src.Next(ctx)
	a.True(luigi.IsEOS(err))

	a.Equal(io.ErrClosedPipe, snk.Pour(ctx, byte('!')))
	a.NoError(snk.Close())
}

func TestReadError(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	src := NewSource(iotest.TimeoutReader(strings.NewReader("x")))
	v, err := src.Next(ctx)
	a.NoError(err)
	a.Equal(byte('x'), v)

	_, err = src.Next(ctx)
	a.Equal(iotest.ErrTimeout, errors.Cause(err))

	_, err2 := src.Next(ctx)
	a.Equal(err, err2, "error should stick")
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(strings.NewReader("x")).Next(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestPourWide(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	snk := NewSink(io.Discard)

	a.Equal(utfstream.ErrBadUnit, errors.Cause(snk.Pour(ctx, uint16(0x100))))
	a.NoError(snk.Pour(ctx, uint16(0xFF)))
	a.Equal(utfstream.ErrBadUnit, errors.Cause(snk.Pour(ctx, 1.5)))
}
