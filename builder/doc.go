// SPDX-License-Identifier: MIT
// Package builder provides deterministic canned graph constructors used as
// extraction fixtures and as the registry's canary graph.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, cons...). Creates g, runs cons
//     in order, fails on the first constructor error.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//     Vertex IDs follow the fixed scheme "v0", "v1", ... (VertexID).
//
// Catalogue:
//   - Complete(n) — complete simple graph K_n.
//   - Cycle(n)    — cycle C_n (n ≥ 3).
//   - Path(n)     — path P_n.
//   - Star(n)     — star with one hub and n-1 leaves.
//   - CompleteAt / CycleAt / PathAt / StarAt — the same shapes with vertex
//     indices shifted by an offset; composing shifted constructors yields
//     disconnected fixtures.
//
// Errors:
//
//	ErrTooFewVertices - a size parameter is below the constructor's minimum.
//	ErrNilConstructor - BuildGraph received a nil constructor.
package builder
