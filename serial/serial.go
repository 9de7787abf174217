// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package serial turns code unit streams into byte streams and back.
//
// Units are laid out in the host's memory order. Use package endian first
// to get a particular byte order on the wire.
package serial // import "github.com/ssbc/utfstream/serial"

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// Serializer is a stream of the bytes of the units of its source.
type Serializer struct {
	utfstream.Once

	src   utfstream.Source
	bo    binary.ByteOrder
	width int

	buf  [4]byte
	n, i int
	err  error
}

// Bytes returns the bytes of every unit of src in host memory order.
// The values are of type byte.
func Bytes(src utfstream.Source) *Serializer {
	s := &Serializer{
		src:   src,
		bo:    utfstream.HostOrder().ByteOrder(),
		width: src.Encoding().Width(),
	}
	if err := utfstream.Claim(src); err != nil {
		s.err = errors.Wrap(err, "serial: error claiming source")
	}
	return s
}

// Encoding is always UTF-8, as bytes are 8-bit units. The bytes need not be UTF-8 text.
func (s *Serializer) Encoding() utfstream.Encoding { return utfstream.UTF8 }

func (s *Serializer) Len() int {
	l := s.n - s.i
	if ln, ok := s.src.(utfstream.Lener); ok {
		l += ln.Len() * s.width
	}
	return l
}

func (s *Serializer) Next(ctx context.Context) (interface{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.i < s.n {
		b := s.buf[s.i]
		s.i++
		return b, nil
	}

	v, err := s.src.Next(ctx)
	if err != nil {
		return nil, err
	}
	u, err := utfstream.UnitValue(v)
	if err != nil {
		return nil, errors.Wrap(err, "serial: unexpected unit")
	}

	switch s.width {
	case 1:
		return byte(u), nil
	case 2:
		s.bo.PutUint16(s.buf[:2], uint16(u))
	default:
		s.bo.PutUint32(s.buf[:4], u)
	}
	s.n, s.i = s.width, 1
	return s.buf[0], nil
}

// Deserializer is a stream of units assembled from a byte source.
type Deserializer struct {
	utfstream.Once

	src luigi.Source
	enc utfstream.Encoding
	bo  binary.ByteOrder

	read int64
	err  error
}

// Units groups the bytes of src into units of enc, reading them in host memory order.
// A stream that ends inside a unit fails with utfstream.ErrPartialUnit.
func Units(src luigi.Source, enc utfstream.Encoding) *Deserializer {
	d := &Deserializer{
		src: src,
		enc: enc,
		bo:  utfstream.HostOrder().ByteOrder(),
	}
	if err := utfstream.Claim(src); err != nil {
		d.err = errors.Wrap(err, "serial: error claiming source")
	}
	return d
}

func (d *Deserializer) Encoding() utfstream.Encoding { return d.enc }

func (d *Deserializer) Len() int {
	if ln, ok := d.src.(utfstream.Lener); ok {
		return ln.Len() / d.enc.Width()
	}
	return 0
}

func (d *Deserializer) Next(ctx context.Context) (interface{}, error) {
	if d.err != nil {
		return nil, d.err
	}

	var buf [4]byte
	w := d.enc.Width()
	for i := 0; i < w; i++ {
		v, err := d.src.Next(ctx)
		if luigi.IsEOS(err) {
			if i == 0 {
				return nil, err
			}
			d.err = errors.Wrapf(utfstream.ErrPartialUnit, "serial: %d of %d bytes at offset %d", i, w, d.read)
			return nil, d.err
		} else if err != nil {
			d.err = errors.Wrapf(err, "serial: error reading bytes at offset %d", d.read+int64(i))
			return nil, d.err
		}

		u, err := utfstream.UnitValue(v)
		if err != nil {
			d.err = errors.Wrap(err, "serial: unexpected byte")
			return nil, d.err
		}
		if u > 0xFF {
			d.err = errors.Wrapf(utfstream.ErrBadUnit, "serial: %#x does not fit a byte", u)
			return nil, d.err
		}
		buf[i] = byte(u)
	}
	d.read += int64(w)

	switch w {
	case 1:
		return buf[0], nil
	case 2:
		return d.bo.Uint16(buf[:2]), nil
	}
	return d.bo.Uint32(buf[:4]), nil
}
