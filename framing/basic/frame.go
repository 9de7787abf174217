// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package basic frames byte blocks for streaming codecs.
package basic // import "github.com/ssbc/utfstream/framing/basic"

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Framing turns a block of data into a self-delimiting frame and back.
type Framing interface {
	DecodeFrame([]byte) ([]byte, error)
	EncodeFrame([]byte) ([]byte, error)
}

var _ Framing = Frame32{}

// Frame32 prefixes and suffixes data by its length as a 32bit big endian integer.
// The trailing copy lets readers detect torn frames.
type Frame32 struct{}

// Overhead is the number of bytes a frame adds to its data.
const Overhead = 8

// MaxFrameSize bounds the data of a single frame.
const MaxFrameSize = 16 << 20

// ErrFrameTooLarge is returned for frames whose data exceeds MaxFrameSize.
var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

func (Frame32) DecodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < Overhead {
		return nil, errors.New("frame too short")
	}

	sizeStart := binary.BigEndian.Uint32(frame[:4])
	if sizeStart > MaxFrameSize {
		return nil, errors.Wrapf(ErrFrameTooLarge, "frame of %d bytes", sizeStart)
	}
	if int64(sizeStart)+Overhead != int64(len(frame)) {
		return nil, errors.Errorf("frame size %d does not match block of %d bytes", sizeStart, len(frame))
	}

	sizeEnd := binary.BigEndian.Uint32(frame[len(frame)-4:])
	if sizeStart != sizeEnd {
		return nil, errors.New("frame sizes don't match")
	}
	return frame[4 : len(frame)-4], nil
}

func (Frame32) EncodeFrame(data []byte) ([]byte, error) {
	if len(data) > MaxFrameSize {
		return nil, errors.Wrapf(ErrFrameTooLarge, "data of %d bytes", len(data))
	}

	frame := make([]byte, len(data)+Overhead)
	binary.BigEndian.PutUint32(frame[:4], uint32(len(data)))
	copy(frame[4:], data)
	binary.BigEndian.PutUint32(frame[len(data)+4:], uint32(len(data)))
	return frame, nil
}

// WriteFrame writes data to w as a single frame.
func WriteFrame(w io.Writer, data []byte) error {
	frame, err := Frame32{}.EncodeFrame(data)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return errors.Wrap(err, "error writing frame")
}

// ReadFrame reads the next frame from r and returns its data.
// It returns io.EOF if r ends before the frame starts and ErrFrameTooLarge,
// without reading further, if the header announces more than MaxFrameSize bytes.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "error reading frame header")
	}

	size := binary.BigEndian.Uint32(hdr[:])
	if size > MaxFrameSize {
		return nil, errors.Wrapf(ErrFrameTooLarge, "frame header announces %d bytes", size)
	}
	frame := make([]byte, int(size)+Overhead)
	copy(frame, hdr[:])
	if _, err := io.ReadFull(r, frame[4:]); err != nil {
		return nil, errors.Wrap(err, "error reading frame body")
	}
	return Frame32{}.DecodeFrame(frame)
}
