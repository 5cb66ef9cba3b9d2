// core/pdbio/line.go
package pdbio

import "strings"

// Fixed column windows of the PDB coordinate format (0-indexed, end-exclusive).
const (
	atomNameStart = 12
	atomNameEnd   = 16
	resNameStart  = 17
	resNameEnd    = 20
	resSeqStart   = 22
	resSeqEnd     = 26
)

// recordPrefixes are the record types that carry per-atom coordinate or
// connectivity data. Anything else (CRYST1, REMARK, MODEL, ...) is treated
// as a pass-through line.
var recordPrefixes = [...]string{"ATOM", "HETATM", "ANISOU", "TER"}

// IsRecord reports whether line is a coordinate/connectivity record,
// by literal prefix match.
func IsRecord(line string) bool {
	for _, p := range &recordPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// field slices a fixed-column window out of line, best effort: lines shorter
// than the window yield whatever is available, possibly "".
func field(line string, start, end int) string {
	if len(line) < start {
		return ""
	}
	if len(line) < end {
		end = len(line)
	}
	return line[start:end]
}

// AtomName returns the trimmed atom-name field (columns 13-16).
func AtomName(line string) string {
	return strings.TrimSpace(field(line, atomNameStart, atomNameEnd))
}

// ResName returns the trimmed residue-name field (columns 18-20).
func ResName(line string) string {
	return strings.TrimSpace(field(line, resNameStart, resNameEnd))
}

// ResSeq returns the residue sequence field (columns 23-26), trimmed of
// surrounding spaces but never parsed: non-numeric content such as hybrid-36
// identifiers comes back verbatim.
func ResSeq(line string) string {
	return strings.TrimSpace(field(line, resSeqStart, resSeqEnd))
}
