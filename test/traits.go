// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/traits"
)

// TraitsTest checks that tr round-trips every scalar value and that its widths agree with Encode.
func TraitsTest(tr traits.Traits) func(*testing.T) {
	return func(t *testing.T) {
		a := assert.New(t)

		var fails int
		for c := utfstream.CodePoint(0); c <= utfstream.MaxCodePoint && fails < 10; c++ {
			if !c.Valid() {
				continue
			}

			run := tr.Encode(c)
			if run.Len() != tr.Width(c) || run.Len() > tr.MaxWidth() {
				a.Failf("bad width", "%s: encoded to %d units, width %d, max %d", c, run.Len(), tr.Width(c), tr.MaxWidth())
				fails++
				continue
			}

			cur := traits.NewSliceCursor(run.Units())
			if got := tr.Decode(cur); got != c || !cur.Done() {
				a.Failf("round trip", "%s: decoded %s, consumed %d of %d", c, got, cur.Pos(), run.Len())
				fails++
				continue
			}

			cur = traits.NewSliceCursor(run.Units())
			if got := tr.DecodeValid(cur); got != c || !cur.Done() {
				a.Failf("unchecked round trip", "%s: decoded %s", c, got)
				fails++
			}
		}

		t.Run("empty", func(t *testing.T) {
			cur := traits.NewSliceCursor([]uint32{})
			assert.Equal(t, utfstream.Incomplete, tr.Decode(cur))
		})

		t.Run("sentinels panic", func(t *testing.T) {
			assert.Panics(t, func() { tr.Encode(utfstream.Illegal) })
			assert.Panics(t, func() { tr.Encode(utfstream.Incomplete) })
		})
	}
}
