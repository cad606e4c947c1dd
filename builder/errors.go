// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w and the method name.

package builder

import "errors"

// ErrNilSource indicates a Reader constructor received a nil io.Reader.
var ErrNilSource = errors.New("builder: nil source")

// ErrConstructFailed indicates BuildGraph could not run a constructor
// (for example a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
