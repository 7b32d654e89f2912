// Package feature defines the contract every feature class implements and
// the small runtime pieces a class sees during one graph's pass: the
// Recorder it writes named values into, and the per-graph memoization
// Cache it shares expensive sub-results through.
//
// A feature class is a stateless value describing itself via Descriptor
// and producing features via Compute. Compute registers zero or more
// named features on the Recorder; scalar features record one column,
// sequence features expand immediately into the six fixed summary columns
// (mean, max, min, median, std, sum), each suffixed onto the base name.
//
// Failure model: a single feature function returning an error records a
// NaN-valued Record carrying that error (visible, testable, never fatal).
// Compute itself returning an error is handled at the dispatcher boundary,
// which fills the class's whole expected schema with NaN for that graph.
//
// The Cache lives for exactly one (graph, worker) pass. It is deliberately
// not shared across workers: in parallel extraction each worker recomputes
// shared structures once per worker, trading duplicate work for zero
// locking and zero cross-process coupling. Do not "fix" this by widening
// the cache's scope.
package feature
