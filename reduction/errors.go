// SPDX-License-Identifier: MIT

package reduction

import "errors"

var (
	// ErrParticleMismatch indicates the pattern sum differs from the declared count.
	ErrParticleMismatch = errors.New("reduction: pattern does not hold the declared particle count")

	// ErrNoShell indicates a reduction before any GenerateXYZ call.
	ErrNoShell = errors.New("reduction: oscillator shell not generated")

	// ErrShellMismatch indicates the particle count does not fill the generated shell.
	ErrShellMismatch = errors.New("reduction: particle count does not match the generated shell")

	// ErrUnknownWeight indicates a dominant weight absent from the multiplicity map.
	ErrUnknownWeight = errors.New("reduction: weight not present in multiplicities")
)
