// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream // import "github.com/ssbc/utfstream"

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoding is one of the three Unicode transformation formats.
// It also fixes the width of the code units travelling on a stream.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16
	UTF32
)

// Valid reports whether e is one of UTF8, UTF16 or UTF32.
func (e Encoding) Valid() bool {
	return e <= UTF32
}

// Width returns the size of one code unit in bytes.
func (e Encoding) Width() int {
	switch e {
	case UTF8:
		return 1
	case UTF16:
		return 2
	case UTF32:
		return 4
	}
	panic(fmt.Sprintf("utfstream: invalid encoding %d", uint8(e)))
}

// MaxUnits returns the maximum number of code units one code point needs.
func (e Encoding) MaxUnits() int {
	return 4 / e.Width()
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// Unit boxes u as the Go type carried by streams of this encoding:
// byte for UTF-8, uint16 for UTF-16 and uint32 for UTF-32.
func (e Encoding) Unit(u uint32) interface{} {
	switch e {
	case UTF8:
		return byte(u)
	case UTF16:
		return uint16(u)
	default:
		return u
	}
}

// ParseEncoding accepts the usual spellings, like "utf8", "UTF-16" or "utf_32".
func ParseEncoding(s string) (Encoding, error) {
	norm := strings.ToLower(s)
	norm = strings.NewReplacer("-", "", "_", "").Replace(norm)
	switch norm {
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	case "utf32":
		return UTF32, nil
	}
	return 0, errors.Errorf("utfstream: unknown encoding %q", s)
}

// UnitValue unboxes a code unit pulled from a stream.
func UnitValue(v interface{}) (uint32, error) {
	switch u := v.(type) {
	case byte:
		return uint32(u), nil
	case uint16:
		return uint32(u), nil
	case uint32:
		return u, nil
	case rune:
		return uint32(u), nil
	}
	return 0, errors.Wrapf(ErrBadUnit, "got %T", v)
}
