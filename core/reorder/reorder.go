// core/reorder/reorder.go
package reorder

import (
	"sort"

	"pdbreorder-core/pdbio"
)

// ResidueSet is the set of residue names whose atoms get reordered.
// Members are matched against the trimmed residue-name field of each record.
type ResidueSet map[string]struct{}

// NewResidueSet builds a ResidueSet from already-normalized names
// (the CLI layer trims, uppercases and validates before calling in).
func NewResidueSet(names []string) ResidueSet {
	s := make(ResidueSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports membership of a residue name.
func (s ResidueSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

type phase int

const (
	learning phase = iota
	buffering
)

// Reorderer is a one-shot, push-based line transformer. Feed every input
// line to Push in order, then call Flush exactly once at end of input.
// Output lines are delivered to the emit callback; during the learning
// phase they are delivered as lines come in, after the phase transition
// everything buffered is delivered by Flush.
//
// The engine never inspects line content beyond the record prefix and the
// fixed atom-name / residue-name / residue-sequence columns, and never
// modifies a line. Every pushed line is emitted exactly once.
type Reorderer struct {
	set  ResidueSet
	emit func(line string) error

	phase phase

	// refOrder maps residue name to its atom names in first-seen order.
	// Frozen once the phase flips to buffering.
	refOrder map[string][]string

	// Phase-2 accumulators. Buckets are keyed by the residue-sequence field
	// alone, not by (residue name, sequence id): two residues that share a
	// sequence id across chains merge into one bucket and the first line's
	// residue name governs the whole bucket. That matches the behavior of
	// the tool this replaces; see DESIGN.md before "fixing" it.
	buckets     map[string][]string
	bucketOrder []string
	held        []string
}

// New returns a Reorderer for one stream transformation. set must be
// non-empty with names already trimmed and uppercased; validation lives in
// the CLI layer and violating it here is undefined behavior, not an error.
func New(set ResidueSet, emit func(line string) error) *Reorderer {
	return &Reorderer{
		set:      set,
		emit:     emit,
		refOrder: make(map[string][]string),
		buckets:  make(map[string][]string),
	}
}

// LearnedNames returns the residue names a reference order was recorded
// for, sorted. Callers use it to warn about set members that never showed
// up in the input.
func (r *Reorderer) LearnedNames() []string {
	names := make([]string, 0, len(r.refOrder))
	for n := range r.refOrder {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Push feeds the next input line through the engine.
func (r *Reorderer) Push(line string) error {
	if r.phase == buffering {
		r.buffer(line)
		return nil
	}
	if !pdbio.IsRecord(line) {
		return r.emit(line)
	}
	resname := pdbio.ResName(line)
	if !r.set.Contains(resname) {
		return r.emit(line)
	}
	atom := pdbio.AtomName(line)
	order := r.refOrder[resname]
	if !containsAtom(order, atom) {
		r.refOrder[resname] = append(order, atom)
		return r.emit(line)
	}
	// First repeated atom name: the reference order is now frozen and this
	// line opens the buffering phase.
	r.phase = buffering
	r.buffer(line)
	return nil
}

// buffer routes a phase-2 line either into its residue bucket or into the
// held tail of non-matching lines.
func (r *Reorderer) buffer(line string) {
	if pdbio.IsRecord(line) && r.set.Contains(pdbio.ResName(line)) {
		resid := pdbio.ResSeq(line)
		if _, ok := r.buckets[resid]; !ok {
			r.bucketOrder = append(r.bucketOrder, resid)
		}
		r.buckets[resid] = append(r.buckets[resid], line)
		return
	}
	r.held = append(r.held, line)
}

// Flush replays everything buffered since the phase transition: residue
// buckets in first-seen order, each reordered against the learned atom
// order for its residue name, then the held non-matching lines. Calling
// Flush before any phase transition happened is a no-op. The Reorderer is
// spent afterwards.
func (r *Reorderer) Flush() error {
	for _, resid := range r.bucketOrder {
		lines := r.buckets[resid]
		resname := pdbio.ResName(lines[0])
		order, learned := r.refOrder[resname]
		if !learned {
			// Never seen in phase 1: nothing to reorder against.
			if err := r.emitAll(lines); err != nil {
				return err
			}
			continue
		}
		if err := r.emitAll(regroup(lines, order)); err != nil {
			return err
		}
	}
	return r.emitAll(r.held)
}

func (r *Reorderer) emitAll(lines []string) error {
	for _, l := range lines {
		if err := r.emit(l); err != nil {
			return err
		}
	}
	return nil
}

// regroup partitions a residue's lines by atom name following the learned
// order. The partition is stable: lines sharing an atom name (an ATOM and
// its ANISOU) keep their relative order. Lines whose atom name was never
// learned trail the reordered block in original order, so no line is ever
// dropped.
func regroup(lines []string, order []string) []string {
	out := make([]string, 0, len(lines))
	for _, atom := range order {
		for _, l := range lines {
			if pdbio.AtomName(l) == atom {
				out = append(out, l)
			}
		}
	}
	if len(out) == len(lines) {
		return out
	}
	for _, l := range lines {
		if !containsAtom(order, pdbio.AtomName(l)) {
			out = append(out, l)
		}
	}
	return out
}

func containsAtom(order []string, atom string) bool {
	for _, a := range order {
		if a == atom {
			return true
		}
	}
	return false
}
