// SPDX-License-Identifier: MIT

// Package oscillator enumerates the single-particle states of one
// three-dimensional harmonic-oscillator shell as (nz, nx, ny) quanta.
//
// Shell n holds Degeneracy(n) = (n+1)(n+2)/2 states. They are listed for
// k = 0..n and, inside each k, for nx = k..0 as (n−k, nx, k−nx). The
// reduction indexes this list by "remaining particles − 1", so the order is
// part of the contract and must not change.
package oscillator
