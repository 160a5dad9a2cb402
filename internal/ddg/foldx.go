package ddg

import (
	"fmt"
	"os/exec"
	"strings"
)

// runner executes one foldx command line with dir as its working
// directory and returns the combined output. Tests swap in a fake.
type runner func(dir, bin string, args ...string) ([]byte, error)

// execRunner shells out to the real foldx binary.
func execRunner(dir, bin string, args ...string) ([]byte, error) {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// FoldX is a utility struct for driving the foldx executable against the
// artifacts in a Store.
type FoldX struct {
	// name of or path to the foldx executable
	bin string

	// the working directory foldx reads from and writes to
	store *Store

	run runner
}

// NewFoldX returns a FoldX that runs bin inside the store's directory.
func NewFoldX(bin string, store *Store) *FoldX {
	return &FoldX{bin: bin, store: store, run: execRunner}
}

// execute runs one foldx command to completion and then verifies that
// every file in expect was actually produced. A zero exit with a missing
// expected file is reported as its own error class: foldx sometimes
// reports success on input it could not act on.
func (f *FoldX) execute(expect []string, args ...string) ([]byte, error) {
	out, err := f.run(f.store.Dir(), f.bin, args...)
	if err != nil {
		return out, fmt.Errorf("foldx execution failed: %v: %s", err, strings.TrimSpace(string(out)))
	}

	for _, name := range expect {
		if !f.store.Exists(name) {
			return out, fmt.Errorf("foldx reported success but did not create %s", name)
		}
	}
	return out, nil
}

// Repair runs RepairPDB on base.pdb, minimizing the structure's free
// energy. It returns the name of the repaired structure; both the
// structure and its raw energy output must exist afterward.
func (f *FoldX) Repair(base string) (string, error) {
	repaired := base + "_Repair.pdb"
	_, err := f.execute(
		[]string{repaired, base + "_Repair.fxout"},
		"--command=RepairPDB",
		"--pdb="+base+".pdb",
	)
	return repaired, err
}

// BuildModel expands the repaired structure into one mutant model per
// line of the mutant list. The models come out numbered by line order;
// the caller validates their count before trusting that order.
func (f *FoldX) BuildModel(repaired string) ([]byte, error) {
	return f.execute(
		nil,
		"--command=BuildModel",
		"--pdb="+repaired,
		"--mutant-file="+mutantListFile,
		"--numberOfRuns=1",
		"--out-pdb=true",
	)
}

// Stability scores one structure file, producing its energy record.
func (f *FoldX) Stability(pdb string) error {
	_, err := f.execute(
		[]string{EnergyRecord(pdb)},
		"--command=Stability",
		"--pdb="+pdb,
	)
	return err
}

// EnergyRecord returns the name of the Stability output file for a
// structure file.
func EnergyRecord(pdb string) string {
	return strings.TrimSuffix(pdb, ".pdb") + "_0_ST.fxout"
}
