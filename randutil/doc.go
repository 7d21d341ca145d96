// SPDX-License-Identifier: MIT
// Package: shape-studio/randutil
//
// Package randutil centralizes deterministic random generation for the
// procedural engine and its parameter layer.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics on user input; only sentinel errors where sampling can fail.
//   - Performance: O(1) helpers; the normal sampler is bounded by its attempt cap.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use Derive to create independent streams for parallel batch
//     callers.
package randutil
