// Package writers moves transformed PDB lines to their sink.
//
// Design:
//   - Writers own the output side (goroutine drain, broken-pipe policy).
//   - The reorder engine stays domain-only; app stays orchestration-only.
//   - Lines carry their own terminators and are written verbatim.
package writers
