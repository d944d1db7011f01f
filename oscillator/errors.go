// SPDX-License-Identifier: MIT

package oscillator

import "errors"

// ErrNotTriangular indicates a particle count that is not the degeneracy of
// any shell.
var ErrNotTriangular = errors.New("oscillator: particle count is not a shell degeneracy")
