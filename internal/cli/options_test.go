// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestResiduesNormalized(t *testing.T) {
	o := mustParse(t, "--residues", "ala, ser", "--residues", "ALA")
	if len(o.Residues) != 2 || o.Residues[0] != "ALA" || o.Residues[1] != "SER" {
		t.Errorf("bad residue normalization %+v", o.Residues)
	}
}

func TestStdinDefault(t *testing.T) {
	o := mustParse(t, "-r", "HOH")
	if len(o.Files) != 1 || o.Files[0] != "-" {
		t.Errorf("want stdin default, got %+v", o.Files)
	}
}

func TestPositionalsInterleaved(t *testing.T) {
	o := mustParse(t, "a.pdb", "-r", "ALA", "-")
	if len(o.Files) != 2 || o.Files[0] != "a.pdb" || o.Files[1] != "-" {
		t.Errorf("bad positional handling %+v", o.Files)
	}
}

func TestErrorEmptySet(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--residues", " , "}); err == nil {
		t.Fatal("expected error for empty residue set")
	}
	if _, err := ParseArgs(newFS(), []string{"x.pdb"}); err == nil {
		t.Fatal("expected error when --residues missing")
	}
}

func TestErrorLongResidueName(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-r", "ALAN"}); err == nil {
		t.Fatal("expected error for 4-character residue name")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatal("version flag lost")
	}
}
