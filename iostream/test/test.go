// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"bytes"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/iostream"
	"github.com/ssbc/utfstream/serial"
	utest "github.com/ssbc/utfstream/test"
)

func init() {
	utest.Register("iostream", func(enc utfstream.Encoding, units []uint32) utfstream.Source {
		buf := bytes.NewBuffer(utest.WireBytes(enc, utfstream.Native, units))
		return serial.Units(iostream.NewSource(buf), enc)
	})
}
