// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package bom

import (
	"github.com/pkg/errors"

	"github.com/ssbc/utfstream"
)

// Add prepends a native-order mark to src. It does not check whether one is already there.
func Add(src utfstream.Source) utfstream.Source {
	if err := utfstream.Claim(src); err != nil {
		return utfstream.ErrorSource(src.Encoding(), errors.Wrap(err, "bom: error claiming source"))
	}

	enc := src.Encoding()
	p := &prefixed{src: src, enc: enc}
	for _, u := range Units(enc) {
		p.buf[p.n] = u
		p.n++
	}
	return p
}
