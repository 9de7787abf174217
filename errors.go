// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIllegal means the input violates UTF well-formedness.
	ErrIllegal = errors.New("illegal code unit sequence")

	// ErrIncomplete means the input ended in the middle of a code point.
	ErrIncomplete = errors.New("incomplete code unit sequence")

	// ErrPartialUnit is returned when a byte stream ends inside a multi-byte code unit.
	ErrPartialUnit = errors.New("trailing bytes do not fill a code unit")

	// ErrAlreadyClaimed is returned when a single-pass stream is wrapped by a second stage.
	ErrAlreadyClaimed = errors.New("stream is already consumed by another stage")

	// ErrBadUnit is returned for stream values that are not byte, uint16, uint32 or rune.
	ErrBadUnit = errors.New("value is not a code unit")
)

// DecodeError reports where in the input a code point could not be decoded.
type DecodeError struct {
	// Err is ErrIllegal or ErrIncomplete.
	Err error

	Encoding Encoding

	// Offset counts the code units consumed before the offending sequence.
	Offset int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode at unit %d: %s", e.Encoding, e.Offset, e.Err)
}

// Cause lets errors.Cause reach the sentinel.
func (e *DecodeError) Cause() error { return e.Err }

func (e *DecodeError) Unwrap() error { return e.Err }

// IsIllegal returns whether err was caused by ill-formed input.
func IsIllegal(err error) bool {
	return errors.Cause(err) == ErrIllegal
}

// IsIncomplete returns whether err was caused by input ending mid-sequence.
func IsIncomplete(err error) bool {
	return errors.Cause(err) == ErrIncomplete
}
