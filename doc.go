// Package grafeat turns a collection of graphs into a clean numeric
// feature matrix for downstream graph classification.
//
// 🚀 What is grafeat?
//
//	A deterministic, fault-isolating feature-extraction engine:
//		• Core primitives: read-only graphs with optional per-node feature vectors
//		• Feature contract: small classes that register named scalar/sequence features
//		• Registry: compiled, canary-validated set of active classes per mode
//		• Dispatcher: sequential or bounded-parallel fan-out, input order preserved
//		• Aggregation: per-graph bundles → rectangular matrix + column metadata
//		• Filtering: non-finite and zero-variance columns dropped
//		• Built-ins: degrees, node features, shortest paths, spectrum,
//		  fluid communities, clique numbers
//
// ✨ Why choose grafeat?
//
//   - Reproducible – explicit seeds everywhere, identical output for 1 or N workers
//   - Fault-isolated – one broken feature never kills a batch; NaN marks the gap
//   - Statically auditable – the active feature set is a plain Go slice, not a scan
//   - Extensible – implement feature.Class and hand it to the registry
//
// Under the hood, everything is organized in flat subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/  — deterministic canned graphs (complete, cycle, path, star...)
//	bfs/      — breadth-first distances and connectivity
//	matrix/   — dense numeric matrices, column statistics, Jacobi eigenvalues
//	fluidc/   — seeded fluid-communities partitioner
//	feature/  — the feature contract, recorder and per-graph memo cache
//	features/ — built-in feature classes (the default registry)
//	extract/  — registry, dispatcher, aggregator, filter and Extract()
//
// Quick sketch:
//
//	graphs := []*core.Graph{...}
//	res, err := extract.Extract(ctx, graphs,
//	    extract.WithMode(feature.ModeFast),
//	    extract.WithWorkers(4))
//	// res.Matrix: one row per graph, res.Info: one entry per column.
//
// Dive into README.md for full examples and the feature catalogue.
//
//	go get github.com/katalvlaran/grafeat
package grafeat
