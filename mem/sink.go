// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package mem

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/traits"
)

// Sink collects poured code units in memory.
type Sink struct {
	l sync.Mutex

	enc    utfstream.Encoding
	units  []uint32
	closed bool
}

var _ luigi.Sink = (*Sink)(nil)

// NewSink returns an empty sink for units of encoding enc.
func NewSink(enc utfstream.Encoding) *Sink {
	return &Sink{enc: enc}
}

// Pour appends a unit.
func (s *Sink) Pour(ctx context.Context, v interface{}) error {
	u, err := utfstream.UnitValue(v)
	if err != nil {
		return errors.Wrap(err, "mem: error pouring into sink")
	}

	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return io.ErrClosedPipe
	}
	s.units = append(s.units, u)
	return nil
}

// Close stops the sink from accepting more units. Closing twice is fine.
func (s *Sink) Close() error {
	s.l.Lock()
	defer s.l.Unlock()
	s.closed = true
	return nil
}

func (s *Sink) Encoding() utfstream.Encoding { return s.enc }

// Units returns a copy of the collected units.
func (s *Sink) Units() []uint32 {
	s.l.Lock()
	defer s.l.Unlock()
	out := make([]uint32, len(s.units))
	copy(out, s.units)
	return out
}

// Bytes returns the collected units truncated to bytes.
// It is meant for UTF-8 sinks and sinks behind serial.Bytes.
func (s *Sink) Bytes() []byte {
	s.l.Lock()
	defer s.l.Unlock()
	out := make([]byte, len(s.units))
	for i, u := range s.units {
		out[i] = byte(u)
	}
	return out
}

// UTF16 returns the collected units truncated to 16 bits.
func (s *Sink) UTF16() []uint16 {
	s.l.Lock()
	defer s.l.Unlock()
	out := make([]uint16, len(s.units))
	for i, u := range s.units {
		out[i] = uint16(u)
	}
	return out
}

// UTF32 returns a copy of the collected units.
func (s *Sink) UTF32() []uint32 { return s.Units() }

// String decodes the collected units, substituting U+FFFD for ill-formed sequences.
func (s *Sink) String() string {
	s.l.Lock()
	defer s.l.Unlock()

	var b strings.Builder
	tr := traits.For(s.enc)
	cur := traits.NewSliceCursor(s.units)
	for !cur.Done() {
		cp := tr.Decode(cur)
		if !cp.Valid() {
			cp = utfstream.ReplacementChar
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}

// Collect pumps all of src into a new sink and closes it.
func Collect(ctx context.Context, src utfstream.Source) (*Sink, error) {
	snk := NewSink(src.Encoding())
	if err := luigi.Pump(ctx, snk, src); err != nil {
		return snk, errors.Wrap(err, "mem: error collecting stream")
	}
	return snk, snk.Close()
}
