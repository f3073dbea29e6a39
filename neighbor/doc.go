// Package neighbor enumerates, for every atom of a configuration, the atoms
// lying within a fixed cutoff radius, honoring periodic boundaries.
//
// What:
//
//   - Finder indexes wrapped positions in a spatial hash whose bin edge equals
//     the cutoff, so every neighbor of a point sits in the 27-bin stencil
//     around it.
//   - Periodic axes are covered by explicit image shifts. The number of images
//     per axis is ceil(cutoff / width), where width is the perpendicular
//     distance between opposite cell faces; cutoffs larger than half the box
//     therefore still return every image within range, self-images included.
//   - Find(i) answers one query; FindAll answers all of them in parallel.
//
// Contract:
//
//   - A neighbor satisfies distance ≤ cutoff, measured as Euclidean length of
//     the displacement from atom i to the (image of) atom j.
//   - Atom i at zero shift is never its own neighbor.
//   - The order of the returned slice is deterministic but not part of the
//     contract.
//   - Finder is read-only after construction and safe for concurrent Find.
//
// Complexity:
//
//   - NewFinder: O(N) time and memory.
//   - Find:      O(I · 27 · b) where I is the image count and b the mean bin
//     occupancy; O(k) output.
//   - FindAll:   N × Find, spread across WithWorkers goroutines.
//
// Errors:
//
//   - ErrNoPositions:     empty input.
//   - ErrInvalidCutoff:   cutoff ≤ 0, NaN or Inf.
//   - ErrInvalidPosition: a NaN/Inf coordinate.
//   - ErrDegenerateCell:  zero-volume or non-finite periodic cell.
//   - ErrIndexOutOfRange: Find(i) with i outside [0, N).
package neighbor
