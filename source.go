// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream

import (
	"context"
	"sync/atomic"

	"github.com/ssbc/go-luigi"
)

// Source is a stream of code units of a single encoding.
// Next returns byte, uint16 or uint32 values (see Encoding.Unit) and luigi.EOS at the end.
type Source interface {
	luigi.Source

	// Encoding returns the encoding of the units yielded by Next.
	Encoding() Encoding
}

// Lener is implemented by sources that can tell how many units are left.
// The result is a hint for pre-sizing buffers; 0 means unknown.
type Lener interface {
	Len() int
}

// Claimer is implemented by single-pass streams.
// Claim fails with ErrAlreadyClaimed if the stream already has a consumer.
type Claimer interface {
	Claim() error
}

// Claim marks src as consumed by the calling stage, if src supports it.
func Claim(src luigi.Source) error {
	if c, ok := src.(Claimer); ok {
		return c.Claim()
	}
	return nil
}

// Once implements Claimer. Embed it in single-pass stream types.
type Once struct {
	claimed int32
}

func (o *Once) Claim() error {
	if !atomic.CompareAndSwapInt32(&o.claimed, 0, 1) {
		return ErrAlreadyClaimed
	}
	return nil
}

// WithEncoding declares the encoding of a plain luigi.Source.
func WithEncoding(src luigi.Source, enc Encoding) Source {
	if s, ok := src.(Source); ok && s.Encoding() == enc {
		return s
	}
	return &encSource{Source: src, enc: enc}
}

type encSource struct {
	luigi.Source
	enc Encoding
}

func (s *encSource) Encoding() Encoding { return s.enc }

func (s *encSource) Claim() error { return Claim(s.Source) }

// ErrorSource returns a source that fails with err on every call to Next.
func ErrorSource(enc Encoding, err error) Source {
	return errSource{enc: enc, err: err}
}

type errSource struct {
	enc Encoding
	err error
}

func (s errSource) Next(context.Context) (interface{}, error) { return nil, s.err }

func (s errSource) Encoding() Encoding { return s.enc }
