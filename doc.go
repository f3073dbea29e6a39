// Package wcsro computes Warren-Cowley short-range order (SRO) parameters
// for multi-component atomic configurations.
//
// What is wcsro?
//
//	A small, concurrent library that answers "does species i prefer species j
//	as a neighbor, more or less than chance?" for every ordered pair:
//		• geom      – 3-vectors and (triclinic) simulation cells with PBC
//		• structure – atoms, species registry, concentrations
//		• neighbor  – spatial-hash neighbor enumeration with periodic images
//		• sro       – α_ij = 1 − (n_j/n)/c_j per atom, per-pair averages, sinks
//		• lattice   – SC/BCC/FCC supercells, ordered or random occupancy
//
// The command in cmd/wcsro wires these together behind a viper config and
// writes a YAML or JSON report.
//
// Quick ASCII example (1D chain, first shell):
//
//	A─B─A─B   every A sees only B   → α_AB = −1 (ordering)
//	A─A─B─B   half like, half unlike → α_AB ≈  0 (random)
//
//	go get github.com/katalvlaran/wcsro
package wcsro
