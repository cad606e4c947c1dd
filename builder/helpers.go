// SPDX-License-Identifier: MIT
// Package: wordgraph/builder

package builder

import (
	"io"
	"strings"
)

func stringReader(s string) io.Reader {
	return strings.NewReader(s)
}
