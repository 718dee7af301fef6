// SPDX-License-Identifier: MIT

package generate

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("generate: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or weight
// function ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph that could not
// be assembled from the emitted edges.
var ErrConstructFailed = errors.New("generate: construction failed")
