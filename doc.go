// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package utfstream holds the shared types of a streaming UTF-8/16/32 transcoder.
//
// Every stage of a conversion is a pull stream (a luigi.Source) that does no
// work until Next is called. A typical pipeline wraps the stages explicitly:
//
//	var units utfstream.Source = serial.Units(iostream.NewSource(r), utfstream.UTF16)
//	_, units, err := bom.Consume(ctx, units)
//	utf16be := endian.Convert(transcode.New(units, utfstream.UTF16), utfstream.Native, utfstream.Big)
//	err = luigi.Pump(ctx, iostream.NewSink(w), serial.Bytes(utf16be))
//
// The pipeline package assembles this from options.
package utfstream
