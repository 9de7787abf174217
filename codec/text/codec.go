// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package text implements a codec that stores Go strings as UTF-8, UTF-16 or UTF-32 bytes.
package text // import "github.com/ssbc/utfstream/codec/text"

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/codec"
	"github.com/ssbc/utfstream/framing/basic"
	"github.com/ssbc/utfstream/mem"
	"github.com/ssbc/utfstream/pipeline"
	"github.com/ssbc/utfstream/serial"
)

// New returns a codec that marshals text as enc in the given byte order,
// optionally led by a byte order mark. Unmarshal returns a string.
func New(enc utfstream.Encoding, order utfstream.Order, withBOM bool) codec.Codec {
	return &textCodec{enc: enc, order: order, bom: withBOM}
}

type textCodec struct {
	enc   utfstream.Encoding
	order utfstream.Order
	bom   bool
}

func (c *textCodec) Marshal(v interface{}) ([]byte, error) {
	var src utfstream.Source
	from := utfstream.UTF8
	switch tv := v.(type) {
	case string:
		src = mem.FromString(tv).Source()
	case []byte:
		src = mem.FromBytes(tv).Source()
	case []rune:
		from = utfstream.UTF32
		src = serial.Bytes(mem.FromRunes(tv).Source())
	default:
		return nil, errors.Errorf("text: can not marshal %T", v)
	}

	out, err := c.run(src,
		pipeline.From(from),
		pipeline.DetectBOM(false),
		pipeline.To(c.enc),
		pipeline.ToOrder(c.order),
		pipeline.WithBOM(c.bom),
	)
	return out, errors.Wrap(err, "text: error marshaling")
}

// Unmarshal decodes data to a string. A leading byte order mark overrides the codec's order.
func (c *textCodec) Unmarshal(data []byte) (interface{}, error) {
	out, err := c.run(mem.FromBytes(data).Source(),
		pipeline.From(c.enc),
		pipeline.FromOrder(c.order),
		pipeline.DetectBOM(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "text: error unmarshaling")
	}
	return string(out), nil
}

func (c *textCodec) run(byteSrc utfstream.Source, opts ...pipeline.Option) ([]byte, error) {
	ctx := context.Background()
	src, err := pipeline.New(ctx, byteSrc, opts...)
	if err != nil {
		return nil, err
	}

	snk, err := mem.Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return snk.Bytes(), nil
}

func (c *textCodec) NewEncoder(w io.Writer) codec.Encoder {
	return &encoder{c: c, w: w}
}

func (c *textCodec) NewDecoder(r io.Reader) codec.Decoder {
	return &decoder{c: c, r: r}
}

type encoder struct {
	c *textCodec
	w io.Writer
}

// Encode writes v as one frame.
func (enc *encoder) Encode(v interface{}) error {
	data, err := enc.c.Marshal(v)
	if err != nil {
		return err
	}
	return basic.WriteFrame(enc.w, data)
}

type decoder struct {
	c *textCodec
	r io.Reader
}

// Decode reads the next frame. It returns io.EOF after the last one.
func (dec *decoder) Decode() (interface{}, error) {
	data, err := basic.ReadFrame(dec.r)
	if err != nil {
		return nil, err
	}
	return dec.c.Unmarshal(data)
}
