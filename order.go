// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package utfstream

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// Order is the byte order of multi-byte code units.
// It has no effect on UTF-8.
type Order uint8

const (
	Native Order = iota
	Little
	Big
)

var hostOrder = func() Order {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return Little
	}
	return Big
}()

// HostOrder returns the concrete byte order of the running machine.
func HostOrder() Order {
	return hostOrder
}

// NonNative returns the concrete byte order that is not the host's.
func NonNative() Order {
	if hostOrder == Little {
		return Big
	}
	return Little
}

// Resolve maps Native to the host's concrete order.
func (o Order) Resolve() Order {
	if o == Native {
		return hostOrder
	}
	return o
}

// Swapped returns the concrete order opposite to o.
func (o Order) Swapped() Order {
	if o.Resolve() == Little {
		return Big
	}
	return Little
}

// NeedsSwap reports whether units in order from must be byte-swapped to be in order to.
func NeedsSwap(from, to Order) bool {
	return from.Resolve() != to.Resolve()
}

// ByteOrder returns the encoding/binary counterpart of o.
func (o Order) ByteOrder() binary.ByteOrder {
	if o.Resolve() == Little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (o Order) String() string {
	switch o {
	case Native:
		return "native"
	case Little:
		return "little"
	case Big:
		return "big"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder accepts "native", "little"/"le" and "big"/"be".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return Native, nil
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return Native, errors.Errorf("utfstream: unknown byte order %q", s)
}
