// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// Package fakes holds test doubles for the stream interfaces.
package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fake_sink.go github.com/ssbc/go-luigi.Sink
