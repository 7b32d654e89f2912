// Package fluidc implements the asynchronous fluid-communities partitioner:
// a seeded, iterative community-detection algorithm over connected,
// undirected graphs.
//
// The algorithm starts from k communities seeded at k distinct random
// vertices, then repeatedly sweeps all vertices in a freshly randomized
// order. Each vertex collects a density-weighted vote from its own and its
// neighbors' communities; communities within a fixed tolerance of the
// maximum vote form the candidate set. A vertex keeps its community when it
// is a candidate (stability bias), otherwise it moves to a uniformly random
// candidate and both community densities (1 / member count) are updated
// immediately. A sweep with zero reassignments converges; exceeding the
// sweep cap terminates with the current partition, flagged as
// non-converged. Both terminal states return a full partition.
//
// Randomness is explicit: every run owns a seeded generator (WithSeed /
// WithRand), so concurrent invocations never interfere and a fixed seed
// reproduces the partition exactly.
//
// Reference: Parés F., Garcia-Gasulla D. et al., "Fluid Communities: A
// Competitive and Highly Scalable Community Detection Algorithm",
// https://arxiv.org/pdf/1703.09307.pdf
package fluidc
