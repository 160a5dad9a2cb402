// Package ddg orchestrates FoldX to score the stability change of every
// single-residue mutation at a set of sites in a protein structure.
package ddg

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// aminoAcids is the canonical 20-letter alphabet in alphabetical order.
// BuildModel numbers its output models by mutant-file line order, so this
// ordering doubles as the file-correlation order and must not change.
const aminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// mutantListFile is the individual-list file BuildModel reads, one
// semicolon-terminated mutation per line.
const mutantListFile = "individual_list.txt"

// substitutionsPerSite is the number of mutations generated per residue:
// every canonical amino acid except the wild type.
const substitutionsPerSite = len(aminoAcids) - 1

// ResidueTarget is one caller-specified site to mutate.
type ResidueTarget struct {
	// Chain is the single-letter chain identifier in the PDB file
	Chain string

	// Position of the residue within the chain
	Position int

	// WildType is the residue currently at that position
	WildType string
}

// ParseResidueTarget parses a chain:position:wildtype spec like "A:468:R".
func ParseResidueTarget(spec string) (ResidueTarget, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return ResidueTarget{}, fmt.Errorf("invalid residue %q: use chain:position:wildtype, eg A:123:R", spec)
	}

	chain := parts[0]
	if len(chain) != 1 || chain[0] < 'A' || chain[0] > 'Z' {
		return ResidueTarget{}, fmt.Errorf("invalid chain %q in residue %q: want a single letter like A", chain, spec)
	}

	pos, err := strconv.Atoi(parts[1])
	if err != nil || pos < 1 {
		return ResidueTarget{}, fmt.Errorf("invalid position %q in residue %q: want a positive integer", parts[1], spec)
	}

	wt := parts[2]
	if len(wt) != 1 || !strings.Contains(aminoAcids, wt) {
		return ResidueTarget{}, fmt.Errorf("invalid wild-type residue %q in residue %q: want one of %s", wt, spec, aminoAcids)
	}

	return ResidueTarget{Chain: chain, Position: pos, WildType: wt}, nil
}

// Mutation is one fully specified substitution at a residue target.
type Mutation struct {
	WildType string
	Chain    string
	Position int
	Target   string
}

// Name returns the identifier embedded in tagged structure and energy
// file names, eg "RA468G". Distinct mutations always have distinct names.
func (m Mutation) Name() string {
	return fmt.Sprintf("%s%s%d%s", m.WildType, m.Chain, m.Position, m.Target)
}

// Instruction returns the mutation in FoldX individual-list format.
func (m Mutation) Instruction() string {
	return m.Name() + ";"
}

// MutationList expands each target into the substitutions to every other
// canonical amino acid, in alphabet order, targets in the order given.
func MutationList(targets []ResidueTarget) ([]Mutation, error) {
	var muts []Mutation
	for _, t := range targets {
		for _, aa := range aminoAcids {
			if string(aa) == t.WildType {
				continue
			}
			muts = append(muts, Mutation{
				WildType: t.WildType,
				Chain:    t.Chain,
				Position: t.Position,
				Target:   string(aa),
			})
		}
	}

	if len(muts) != substitutionsPerSite*len(targets) {
		return nil, fmt.Errorf(
			"malformed mutation list: %d mutations from %d residues, want %d",
			len(muts), len(targets), substitutionsPerSite*len(targets),
		)
	}
	return muts, nil
}

// WriteMutantList writes the instruction file that BuildModel consumes.
func WriteMutantList(store *Store, muts []Mutation) error {
	var b strings.Builder
	for _, m := range muts {
		b.WriteString(m.Instruction())
		b.WriteString("\n")
	}
	return store.Write(mutantListFile, []byte(b.String()))
}

// ReadMutationNames reads the mutation names back out of the instruction
// file on disk. The file, not the in-memory list, is what FoldX read, so
// correlation works from it.
func ReadMutationNames(store *Store) (names []string, err error) {
	data, err := store.Read(mutantListFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", mutantListFile, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
