// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/mem"
	utest "github.com/ssbc/utfstream/test"
)

func init() {
	utest.Register("mem", func(enc utfstream.Encoding, units []uint32) utfstream.Source {
		return mem.New(enc, units).Source()
	})
}
