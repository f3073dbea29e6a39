// Package sro computes Warren-Cowley short-range-order parameters for
// multi-component atomic configurations.
//
// 🚀 What is α_ij?
//
//	For an atom a of species i, let n(a) be the number of its neighbors
//	inside the shell [minCutoff, maxCutoff] and n_j(a) those of species j.
//	With c_j the bulk concentration of j:
//
//	  α_ij(a) = 1 − (n_j(a) / n(a)) / c_j
//
//	α_ij < 0 signals i–j ordering (j over-represented around i),
//	α_ij > 0 signals clustering/segregation, α_ij = 0 a random mixture.
//
// ✨ Key features:
//   - every ordered pair of the species set, including i == i
//   - annular shells: minCutoff narrows the neighbor query's upper bound
//     into a single coordination shell
//   - explicit Value type: "computed zero" and "undefined" never collide
//   - per-pair failures (species absent ⇒ c_j = 0) are recorded on the pair
//     and never abort the rest of the table
//   - optional Sink receives one per-atom property and one scalar attribute
//     per pair plus the summary table
//
// ⚙️ Usage:
//
//	res, err := sro.Compute(s, 0, 3.0, sro.WithShell(1))
//	if err != nil {
//	  // ErrEmptyStructure, ErrMissingSpecies, ErrInvalidCutoff, ErrInvalidInput
//	}
//	for _, p := range res.Pairs {
//	  fmt.Println(p.Label, p.Average)
//	}
//
// Performance:
//
//   - Neighbor enumeration: one batched query, parallel across atoms.
//   - Aggregation: O(N·k) for the per-atom shell histograms, then
//     O(S²·N) for the S² pairs.
//
// Determinism: identical input yields exactly equal output. Parallel phases
// write disjoint per-atom slots; every reduction runs sequentially in atom
// order.
package sro
