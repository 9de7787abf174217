// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package all

import (
	// import to register testing helpers
	_ "github.com/ssbc/utfstream/iostream/test"
	_ "github.com/ssbc/utfstream/mem/test"
)
