// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package bom

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/endian"
)

// prefixed replays units that were peeked off src before handing out the rest of it.
type prefixed struct {
	utfstream.Once

	src luigi.Source
	enc utfstream.Encoding

	buf  [4]uint32
	n, i int
	eos  bool
}

var _ utfstream.Source = (*prefixed)(nil)

func (p *prefixed) Encoding() utfstream.Encoding { return p.enc }

func (p *prefixed) Len() int {
	l := p.n - p.i
	if p.eos {
		return l
	}
	if ln, ok := p.src.(utfstream.Lener); ok {
		l += ln.Len()
	}
	return l
}

func (p *prefixed) Next(ctx context.Context) (interface{}, error) {
	if p.i < p.n {
		u := p.buf[p.i]
		p.i++
		return p.enc.Unit(u), nil
	}
	if p.eos {
		return nil, luigi.EOS{}
	}
	return p.src.Next(ctx)
}

// peek reads up to n units off src into a prefixed stream without losing any of them.
func peek(ctx context.Context, src luigi.Source, enc utfstream.Encoding, n int) (*prefixed, error) {
	p := &prefixed{src: src, enc: enc}
	for p.n < n {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			p.eos = true
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "bom: error peeking at stream")
		}

		u, err := utfstream.UnitValue(v)
		if err != nil {
			return nil, errors.Wrap(err, "bom: unexpected unit")
		}
		p.buf[p.n] = u
		p.n++
	}
	return p, nil
}

// Consume strips a leading byte order mark from src.
//
// If the stream starts with a native-order mark, the mark is dropped and
// the order is utfstream.Native. If it starts with a byte-swapped mark, the
// mark is dropped, the order is the non-native one and the returned stream
// is converted to native order. Otherwise the stream is returned unchanged
// with order utfstream.Native.
//
// Consume pulls at most Size(enc) units from src before returning.
func Consume(ctx context.Context, src utfstream.Source) (utfstream.Order, utfstream.Source, error) {
	if err := utfstream.Claim(src); err != nil {
		return utfstream.Native, nil, errors.Wrap(err, "bom: error claiming source")
	}

	enc := src.Encoding()
	p, err := peek(ctx, src, enc, Size(enc))
	if err != nil {
		return utfstream.Native, nil, err
	}

	switch {
	case Has(enc, p.buf[:p.n]):
		p.n = 0
		return utfstream.Native, p, nil
	case HasSwapped(enc, p.buf[:p.n]):
		p.n = 0
		order := utfstream.NonNative()
		return order, endian.Convert(p, order, utfstream.Native), nil
	}
	return utfstream.Native, p, nil
}

// Strip is Consume without the detected order.
func Strip(ctx context.Context, src utfstream.Source) (utfstream.Source, error) {
	_, out, err := Consume(ctx, src)
	return out, err
}
