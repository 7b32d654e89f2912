// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy (strict, mirrors core):
//   - Only package-level sentinels are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX).
//   - Implementations attach context with %w at the failure site.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is smaller than the
// allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilConstructor indicates BuildGraph received a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
