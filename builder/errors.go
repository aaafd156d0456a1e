// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// errors.go - error helpers for the builder package.
//
// Error policy (explicit and strict):
//   • Parameter validation fails with core.ErrInvalidConfiguration, wrapped
//     with the generator name: "Regular: k=7 not in [0,5]: core: invalid configuration".
//   • ErrConstructFailed covers programmer errors at the Apply boundary
//     (nil topology, nil constructor).
//   • Callers MUST use errors.Is to branch on semantics.
//   • Validation happens before the first mutation; a failed constructor
//     leaves the topology untouched.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cimnet/core"
)

// ErrConstructFailed indicates Apply was called with a nil topology or a nil
// constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// configErrorf wraps core.ErrInvalidConfiguration with method context.
// It returns an error of the form "<Method>: <formatted message>: core: invalid configuration".
func configErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), core.ErrInvalidConfiguration)
}
