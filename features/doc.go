// Package features holds the built-in feature classes and the default
// compiled registry handed to the extraction engine.
//
// Catalogue (shortname — modes):
//
//	DS  degree statistics            — fast, medium, slow
//	NF  node-feature statistics      — fast, medium, slow
//	SP  shortest-path statistics     — fast, medium, slow
//	SPM spectrum                     — medium, slow
//	FC  fluid communities            — medium, slow
//	CN  node clique numbers          — medium, slow
//
// Every class follows the same failure discipline: individual feature
// functions return errors for data-dependent gaps (no node features,
// directed input, disconnected graph...) so those columns record NaN while
// the class's schema stays intact; Compute itself only errors on genuinely
// broken invariants, which the dispatcher absorbs per graph.
//
// The classes demonstrate the per-pass cache: shortest paths memoize the
// all-sources BFS table, the spectrum class memoizes eigenvalue sets, and
// the communities class memoizes one partition per community count.
package features
