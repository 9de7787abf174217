// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package bom

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// sniffOrder lists the serialized marks in the order they are tried.
// UTF-32LE comes before UTF-16LE because FF FE is a prefix of FF FE 00 00.
var sniffOrder = []struct {
	enc   utfstream.Encoding
	order utfstream.Order
}{
	{utfstream.UTF32, utfstream.Big},
	{utfstream.UTF32, utfstream.Little},
	{utfstream.UTF8, utfstream.Native},
	{utfstream.UTF16, utfstream.Big},
	{utfstream.UTF16, utfstream.Little},
}

// Sniff looks for a serialized mark at the start of a raw byte prefix.
// It returns the encoding and byte order the mark announces and its length in bytes.
// Without a mark it returns UTF-8, native order and ok == false.
//
// FF FE 00 00 is always taken as the UTF-32LE mark. A UTF-16LE text with a
// mark whose first character is U+0000 is therefore misdetected; declare the
// encoding instead of sniffing it if such input is possible.
func Sniff(prefix []byte) (enc utfstream.Encoding, order utfstream.Order, n int, ok bool) {
	for _, c := range sniffOrder {
		mark := Bytes(c.enc, c.order)
		if bytes.HasPrefix(prefix, mark) {
			return c.enc, c.order, len(mark), true
		}
	}
	return utfstream.UTF8, utfstream.Native, 0, false
}

// Detect sniffs a mark at the start of a raw byte stream and strips it.
// The returned stream still carries bytes; serialize them into units of the
// detected encoding and convert from the detected order to get text.
func Detect(ctx context.Context, src luigi.Source) (utfstream.Encoding, utfstream.Order, utfstream.Source, error) {
	if err := utfstream.Claim(src); err != nil {
		return utfstream.UTF8, utfstream.Native, nil, errors.Wrap(err, "bom: error claiming source")
	}

	p, err := peek(ctx, src, utfstream.UTF8, 4)
	if err != nil {
		return utfstream.UTF8, utfstream.Native, nil, err
	}

	prefix := make([]byte, p.n)
	for i := range prefix {
		prefix[i] = byte(p.buf[i])
	}

	enc, order, n, _ := Sniff(prefix)
	p.i = n
	return enc, order, p, nil
}
