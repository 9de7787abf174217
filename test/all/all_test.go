// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package all

import (
	"testing"

	utest "github.com/ssbc/utfstream/test"
	"github.com/ssbc/utfstream/traits"
)

func Test(t *testing.T) {
	t.Run("Source", utest.RunSourceTests)
	t.Run("Transcode", utest.RunTranscodeTests)
	t.Run("Pipeline", utest.RunPipelineTests)

	t.Run("Traits", func(t *testing.T) {
		t.Run("UTF-8", utest.TraitsTest(traits.UTF8{}))
		t.Run("UTF-16", utest.TraitsTest(traits.UTF16{}))
		t.Run("UTF-32", utest.TraitsTest(traits.UTF32{}))
	})
}
