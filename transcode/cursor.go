// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package transcode

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/ssbc/utfstream"
)

// sourceCursor adapts a luigi.Source to traits.Cursor with one unit of lookahead.
// Errors other than end-of-stream end the cursor and are kept in err.
type sourceCursor struct {
	src luigi.Source
	ctx context.Context

	buf      uint32
	buffered bool
	done     bool
	err      error

	pos int64
}

func (c *sourceCursor) Peek() (uint32, bool) {
	if c.buffered {
		return c.buf, true
	}
	if c.done {
		return 0, false
	}

	v, err := c.src.Next(c.ctx)
	if err != nil {
		c.done = true
		if !luigi.IsEOS(err) {
			c.err = err
		}
		return 0, false
	}

	u, err := utfstream.UnitValue(v)
	if err != nil {
		c.done = true
		c.err = err
		return 0, false
	}

	c.buf, c.buffered = u, true
	return u, true
}

func (c *sourceCursor) Advance() {
	if c.buffered {
		c.buffered = false
		c.pos++
	}
}
