// Package reorder rewrites the intra-residue atom order of PDB coordinate
// streams. The canonical order is not configured: it is learned from the
// first occurrence of each selected residue name, then applied to every
// later occurrence.
//
// The transform is single-pass with two phases. While learning, lines flow
// straight through; the first repeated atom name for a tracked residue
// flips the engine into buffering, where selected-residue lines are grouped
// per residue and replayed in learned order once the input ends.
package reorder
