// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pdbreorder/internal/cliutil"
	"pdbreorder/internal/common"
	"pdbreorder/internal/version"
)

// MaxResidueNameLen is the widest residue-name token the fixed-column
// format can hold (columns 18-20).
const MaxResidueNameLen = 3

// Options holds all CLI flags and arguments.
type Options struct {
	// Residue selection
	Residues []string // normalized: trimmed, uppercased, de-duplicated

	// Input
	Files []string // PDB file(s); "-" = stdin

	// Diagnostics
	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: reorder atoms within PDB residues

Learns the atom order of the first occurrence of each selected residue
name and rewrites every later occurrence of that residue to match.
Reads a PDB file or stdin, writes the result to stdout.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (input paths, '-' for stdin, globs) may be
// interleaved with flags; they are split out before parsing and expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var res stringSlice
	fs.Var(&res, "residues", "residue name(s) to reorder, repeatable or comma-separated [*]")
	fs.Var(&res, "r", "shorthand for --residues")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	var raw []string
	for _, v := range res {
		raw = append(raw, common.SplitList(v)...)
	}
	opt.Residues = common.UniqueUpper(raw)

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files
	if len(opt.Files) == 0 {
		opt.Files = []string{"-"}
	}

	// Validation. The transform engine assumes a clean set; everything is
	// rejected here.
	if len(opt.Residues) == 0 {
		return opt, errors.New("residue name set cannot be empty: provide --residues")
	}
	for _, r := range opt.Residues {
		if len(r) > MaxResidueNameLen {
			return opt, fmt.Errorf("residue name is invalid: %q (max %d characters)", r, MaxResidueNameLen)
		}
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
