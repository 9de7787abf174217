// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package transcode

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// drain pulls every unit of t and hands it to add.
func drain(ctx context.Context, t *Transcoder, add func(uint32)) error {
	for {
		v, err := t.Next(ctx)
		if luigi.IsEOS(err) {
			return nil
		} else if err != nil {
			return err
		}

		u, err := utfstream.UnitValue(v)
		if err != nil {
			return errors.Wrap(err, "transcode: unexpected unit")
		}
		add(u)
	}
}

// sizeHint guesses the output size from the input length, if the source knows it.
func sizeHint(src utfstream.Source) int {
	if l, ok := src.(utfstream.Lener); ok {
		return l.Len()
	}
	return 0
}

// ToUTF8 reads all of src and returns it as UTF-8.
func ToUTF8(ctx context.Context, src utfstream.Source, opts ...Option) ([]byte, error) {
	out := make([]byte, 0, sizeHint(src))
	err := drain(ctx, New(src, utfstream.UTF8, opts...), func(u uint32) {
		out = append(out, byte(u))
	})
	return out, err
}

// ToUTF16 reads all of src and returns it as UTF-16 in native order.
func ToUTF16(ctx context.Context, src utfstream.Source, opts ...Option) ([]uint16, error) {
	out := make([]uint16, 0, sizeHint(src))
	err := drain(ctx, New(src, utfstream.UTF16, opts...), func(u uint32) {
		out = append(out, uint16(u))
	})
	return out, err
}

// ToUTF32 reads all of src and returns it as UTF-32 in native order.
func ToUTF32(ctx context.Context, src utfstream.Source, opts ...Option) ([]uint32, error) {
	out := make([]uint32, 0, sizeHint(src))
	err := drain(ctx, New(src, utfstream.UTF32, opts...), func(u uint32) {
		out = append(out, u)
	})
	return out, err
}

// ToString reads all of src and returns it as a Go string.
func ToString(ctx context.Context, src utfstream.Source, opts ...Option) (string, error) {
	b, err := ToUTF8(ctx, src, opts...)
	return string(b), err
}
