// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/pipeline"
	"github.com/ssbc/utfstream/transcode"
)

func defaults() flags {
	return flags{from: "utf8", fromOrder: "native", to: "utf8", toOrder: "native"}
}

func TestBuildOptions(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	f := defaults()
	f.from, f.fromOrder = "UTF-16", "le"
	f.to, f.toOrder = "utf32", "big"
	f.bom, f.keepBOM, f.replace = true, true, true

	opts, err := buildOptions(f)
	r.NoError(err)
	cfg, err := pipeline.NewConfig(opts...)
	r.NoError(err)

	a.Equal(utfstream.UTF16, cfg.From)
	a.Equal(utfstream.Little, cfg.FromOrder)
	a.Equal(utfstream.UTF32, cfg.To)
	a.Equal(utfstream.Big, cfg.ToOrder)
	a.True(cfg.WithBOM)
	a.False(cfg.DetectBOM)
	a.Equal(transcode.Replace, cfg.Policy)

	f = defaults()
	f.from = "auto"
	opts, err = buildOptions(f)
	r.NoError(err)
	cfg, err = pipeline.NewConfig(opts...)
	r.NoError(err)
	a.True(cfg.Auto)
	a.True(cfg.DetectBOM)
}

func TestBadFlags(t *testing.T) {
	for _, f := range []flags{
		{from: "ucs2", fromOrder: "native", to: "utf8", toOrder: "native"},
		{from: "utf8", fromOrder: "pdp", to: "utf8", toOrder: "native"},
		{from: "utf8", fromOrder: "native", to: "latin1", toOrder: "native"},
		{from: "utf8", fromOrder: "native", to: "utf8", toOrder: "sideways"},
	} {
		_, err := buildOptions(f)
		assert.Error(t, err, "%+v", f)
	}
}

func TestRunFiles(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	r.NoError(os.WriteFile(in, []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, 0o600))

	f := defaults()
	f.from = "auto"
	r.NoError(run(context.Background(), f, []string{in, out}))

	got, err := os.ReadFile(out)
	r.NoError(err)
	a.Equal("hi", string(got))

	err = run(context.Background(), defaults(), []string{filepath.Join(dir, "missing"), out})
	a.Error(err)
}
