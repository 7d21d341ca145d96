// SPDX-License-Identifier: MIT
// Package: shape-studio/config
//
// Package config carries the application-wide defaults of the studio as
// typed structs, with an optional JSON overlay.
//
// Design:
//   - Defaults() returns the full default tree; Load reads a JSON file ONTO
//     a defaults copy, so absent keys keep their defaults (scalar-level
//     merge, the way encoding/json overlays an initialized struct).
//   - A Config freezes after Load: a second Load on the same Config is an
//     error. Generators receive values, never the Config itself.
//
// Canonical model:
//   - Section and key names match the JSON spelling ("break_margin",
//     "snapshot_interval_default"); struct tags are the source of truth.
package config
