// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package transcode converts a stream of code units from one encoding into another.
package transcode // import "github.com/ssbc/utfstream/transcode"

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/traits"
)

// Policy decides what happens to input that does not decode.
type Policy uint8

const (
	// Strict stops the stream with a *utfstream.DecodeError.
	Strict Policy = iota

	// Replace emits U+FFFD for every ill-formed sequence and keeps going.
	Replace

	// Skip drops ill-formed sequences.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Replace:
		return "replace"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithPolicy sets the handling of ill-formed input. The default is Strict.
func WithPolicy(p Policy) Option {
	return func(t *Transcoder) {
		t.policy = p
	}
}

type state uint8

const (
	atStart state = iota
	midRun
	exhausted
)

// Transcoder is a lazy stream of code units in the target encoding.
// Each input code point becomes one encoded run; Next hands out the
// units of the current run and decodes the next code point once the run is used up.
type Transcoder struct {
	utfstream.Once

	in, out traits.Traits
	cur     sourceCursor
	policy  Policy

	run   traits.Run
	idx   int
	state state
	err   error
}

var _ utfstream.Source = (*Transcoder)(nil)

// New returns a stream of src re-encoded as to.
func New(src utfstream.Source, to utfstream.Encoding, opts ...Option) *Transcoder {
	t := &Transcoder{
		in:  traits.For(src.Encoding()),
		out: traits.For(to),
		cur: sourceCursor{src: src},
	}
	for _, o := range opts {
		o(t)
	}

	if err := utfstream.Claim(src); err != nil {
		t.state = exhausted
		t.err = errors.Wrap(err, "transcode: error claiming source")
	}
	return t
}

func (t *Transcoder) Encoding() utfstream.Encoding { return t.out.Encoding() }

// Exhausted reports whether the stream has ended, either at the end of input or with an error.
func (t *Transcoder) Exhausted() bool { return t.state == exhausted }

// Consumed returns the number of input units decoded so far.
func (t *Transcoder) Consumed() int64 { return t.cur.pos }

// Next returns the next output unit.
func (t *Transcoder) Next(ctx context.Context) (interface{}, error) {
	if t.state != exhausted && t.idx >= t.run.Len() {
		err := t.advance(ctx)
		if err != nil {
			t.state = exhausted
			if !luigi.IsEOS(err) {
				t.err = err
			}
			return nil, err
		}
		t.state = midRun
	}

	if t.state == exhausted {
		if t.err != nil {
			return nil, t.err
		}
		return nil, luigi.EOS{}
	}

	u := t.run.At(t.idx)
	t.idx++
	return t.out.Encoding().Unit(u), nil
}

// advance decodes input until it has a new run to hand out.
func (t *Transcoder) advance(ctx context.Context) error {
	t.cur.ctx = ctx
	for {
		if _, ok := t.cur.Peek(); !ok {
			if t.cur.err != nil {
				return errors.Wrap(t.cur.err, "transcode: error reading source")
			}
			return luigi.EOS{}
		}

		start := t.cur.pos
		cp := t.in.Decode(&t.cur)
		if t.cur.err != nil {
			return errors.Wrap(t.cur.err, "transcode: error reading source")
		}

		if !cp.Valid() {
			switch t.policy {
			case Replace:
				cp = utfstream.ReplacementChar
			case Skip:
				continue
			default:
				return &utfstream.DecodeError{
					Err:      cp.Err(),
					Encoding: t.in.Encoding(),
					Offset:   start,
				}
			}
		}

		t.run = t.out.Encode(cp)
		t.idx = 0
		return nil
	}
}
