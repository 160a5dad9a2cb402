package ddg

import (
	"fmt"
	"strings"
	"time"
)

// Pipeline runs the whole workflow in order: repair the structure, write
// the mutation list, build the mutant models, tag them, score everything,
// and aggregate the energies into the report.
//
// Stages run strictly one after the other and hand off through the Store:
// each stage's output files are the next stage's input, and nothing else
// is carried across a stage boundary. A fatal error in any stage aborts
// the run; partial filesystem state is left in place for inspection, and
// the directory has to be cleared before a clean rerun.
type Pipeline struct {
	store *Store
	foldx *FoldX

	// input PDB file name without its extension
	base string

	// the residues to mutate
	targets []ResidueTarget

	// scoring retry budget
	maxRetries int
	retryDelay time.Duration

	// name of the final report file
	reportName string
}

// NewPipeline assembles a pipeline over the given store and driver.
func NewPipeline(
	store *Store,
	foldx *FoldX,
	base string,
	targets []ResidueTarget,
	maxRetries int,
	retryDelay time.Duration,
	reportName string,
) *Pipeline {
	return &Pipeline{
		store:      store,
		foldx:      foldx,
		base:       base,
		targets:    targets,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		reportName: reportName,
	}
}

// Run executes every stage. Errors carry the name of the stage that
// raised them.
func (p *Pipeline) Run() error {
	stderr.Printf("repairing %s.pdb", p.base)
	repaired, err := p.foldx.Repair(p.base)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	stderr.Printf("repaired structure: %s", repaired)

	muts, err := MutationList(p.targets)
	if err != nil {
		return fmt.Errorf("mutation list: %w", err)
	}
	if err := WriteMutantList(p.store, muts); err != nil {
		return fmt.Errorf("mutation list: %w", err)
	}

	// correlation works off the file FoldX will read, not the in-memory
	// list, so read it back and make sure the two agree
	names, err := ReadMutationNames(p.store)
	if err != nil {
		return fmt.Errorf("mutation list: %w", err)
	}
	if len(names) != len(muts) {
		return fmt.Errorf("mutation list: %s holds %d instructions, want %d", mutantListFile, len(names), len(muts))
	}
	stderr.Printf("%d mutations across %d residues", len(muts), len(p.targets))

	out, err := p.foldx.BuildModel(repaired)
	if len(out) > 0 {
		stderr.Printf("BuildModel output:\n%s", strings.TrimSpace(string(out)))
	}
	if err != nil {
		return fmt.Errorf("build models: %w", err)
	}

	if err := Correlate(p.store, repaired, names); err != nil {
		return fmt.Errorf("correlate models: %w", err)
	}

	scorer := NewScorer(p.foldx, p.store, p.maxRetries, p.retryDelay)
	failed, err := scorer.Run(p.base)
	if err != nil {
		return fmt.Errorf("stability: %w", err)
	}
	for _, f := range failed {
		stderr.Printf("%s failed stability %d times, leaving it out of the report", f, p.maxRetries)
	}

	rows, err := Aggregate(p.store, p.base)
	if err != nil {
		return fmt.Errorf("ddg: %w", err)
	}
	if err := WriteReport(p.store, p.reportName, rows); err != nil {
		return fmt.Errorf("ddg: %w", err)
	}
	stderr.Printf("wrote %d rows to %s", len(rows), p.reportName)

	return nil
}
