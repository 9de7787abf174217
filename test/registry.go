// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/ssbc/utfstream/test"

import (
	"testing"

	"github.com/ssbc/utfstream"
)

// NewSourceFunc returns a fresh stream yielding units, which are encoded in enc and native order.
type NewSourceFunc func(enc utfstream.Encoding, units []uint32) utfstream.Source

var NewSourceFuncs map[string]NewSourceFunc

func init() {
	NewSourceFuncs = map[string]NewSourceFunc{}
}

// Register makes a source implementation available to RunSourceTests and RunTranscodeTests.
func Register(name string, f NewSourceFunc) {
	NewSourceFuncs[name] = f
}

func RunSourceTests(t *testing.T) {
	for name, newSrc := range NewSourceFuncs {
		t.Run(name, SourceTest(newSrc))
	}
}

func RunTranscodeTests(t *testing.T) {
	for name, newSrc := range NewSourceFuncs {
		t.Run(name, TranscodeTest(newSrc))
	}
}

func RunPipelineTests(t *testing.T) {
	for name, newSrc := range NewSourceFuncs {
		t.Run(name, PipelineTest(newSrc))
	}
}
