// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package pipeline assembles the stages of utfstream into a byte-to-byte converter.
package pipeline // import "github.com/ssbc/utfstream/pipeline"

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/bom"
	"github.com/ssbc/utfstream/endian"
	"github.com/ssbc/utfstream/iostream"
	"github.com/ssbc/utfstream/serial"
	"github.com/ssbc/utfstream/transcode"
)

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := MergeOptions(opts...)(&cfg); err != nil {
		return cfg, errors.Wrap(err, "pipeline: error applying options")
	}
	return cfg, nil
}

// New returns the bytes of byteSrc re-encoded according to opts.
// Detecting the input encoding or a byte order mark reads ahead a few bytes from byteSrc.
func New(ctx context.Context, byteSrc luigi.Source, opts ...Option) (utfstream.Source, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	var units utfstream.Source
	if cfg.Auto {
		enc, order, src, err := bom.Detect(ctx, byteSrc)
		if err != nil {
			return nil, errors.Wrap(err, "pipeline: error detecting input encoding")
		}
		cfg.Logger.Log("event", "detected", "encoding", enc, "order", order)
		cfg.From, cfg.FromOrder = enc, order

		units = endian.Convert(serial.Units(src, enc), order, utfstream.Native)
	} else {
		units = endian.Convert(serial.Units(byteSrc, cfg.From), cfg.FromOrder, utfstream.Native)

		if cfg.DetectBOM {
			found, stripped, err := bom.Consume(ctx, units)
			if err != nil {
				return nil, errors.Wrap(err, "pipeline: error looking for byte order mark")
			}
			if found != utfstream.Native {
				cfg.Logger.Log("event", "swapped mark", "declared", cfg.FromOrder, "encoding", cfg.From)
			}
			units = stripped
		}
	}

	var out utfstream.Source = transcode.New(units, cfg.To, transcode.WithPolicy(cfg.Policy))
	if cfg.WithBOM {
		out = bom.Add(out)
	}
	out = endian.Convert(out, utfstream.Native, cfg.ToOrder)

	cfg.Logger.Log("event", "pipeline", "from", cfg.From, "to", cfg.To, "order", cfg.ToOrder, "policy", cfg.Policy, "bom", cfg.WithBOM)
	return serial.Bytes(out), nil
}

// Copy converts everything read from r and writes it to w.
// It returns the number of bytes written. Neither r nor w are closed.
func Copy(ctx context.Context, w io.Writer, r io.Reader, opts ...Option) (int64, error) {
	src, err := New(ctx, iostream.NewSource(r), opts...)
	if err != nil {
		return 0, err
	}

	snk := iostream.NewSink(w)
	err = luigi.Pump(ctx, snk, src)
	cerr := snk.Close()
	if err != nil {
		return snk.Written(), errors.Wrap(err, "pipeline: error converting stream")
	}
	if cerr != nil {
		return snk.Written(), cerr
	}
	return snk.Written(), nil
}
