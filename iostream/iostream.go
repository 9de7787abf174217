// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package iostream connects byte streams to io.Reader and io.Writer.
//
// Opening and closing the underlying reader or writer is left to the caller.
package iostream // import "github.com/ssbc/utfstream/iostream"

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// Source is a single-pass stream of the bytes of a reader.
type Source struct {
	utfstream.Once

	r    *bufio.Reader
	read int64
	err  error
}

var _ utfstream.Source = (*Source)(nil)

// NewSource returns a buffered byte stream reading from r.
// The stream can only be traversed once; wrapping it in two stages fails with utfstream.ErrAlreadyClaimed.
func NewSource(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// Encoding is UTF-8 because the units are bytes. Use serial.Units for wider encodings.
func (s *Source) Encoding() utfstream.Encoding { return utfstream.UTF8 }

// Offset returns the number of bytes handed out so far.
func (s *Source) Offset() int64 { return s.read }

func (s *Source) Next(ctx context.Context) (interface{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := s.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.err = luigi.EOS{}
		} else {
			s.err = errors.Wrapf(err, "iostream: error reading at offset %d", s.read)
		}
		return nil, s.err
	}
	s.read++
	return b, nil
}

// Sink writes poured bytes to a writer.
type Sink struct {
	l sync.Mutex

	w       *bufio.Writer
	written int64
	closed  bool
}

var _ luigi.Sink = (*Sink)(nil)

// NewSink returns a buffered sink writing to w. Close flushes the buffer but does not close w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// Written returns the number of bytes poured so far.
func (s *Sink) Written() int64 {
	s.l.Lock()
	defer s.l.Unlock()
	return s.written
}

func (s *Sink) Pour(ctx context.Context, v interface{}) error {
	u, err := utfstream.UnitValue(v)
	if err != nil {
		return errors.Wrap(err, "iostream: error pouring into sink")
	}
	if u > 0xFF {
		return errors.Wrapf(utfstream.ErrBadUnit, "iostream: %#x does not fit a byte", u)
	}

	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return io.ErrClosedPipe
	}
	if err := s.w.WriteByte(byte(u)); err != nil {
		return errors.Wrap(err, "iostream: error writing byte")
	}
	s.written++
	return nil
}

// Close flushes buffered bytes. Closing twice is fine.
func (s *Sink) Close() error {
	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return errors.Wrap(s.w.Flush(), "iostream: error flushing writer")
}
