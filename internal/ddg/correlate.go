package ddg

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// mutantIndexRe matches the numeric suffix BuildModel gives each model.
var mutantIndexRe = regexp.MustCompile(`_(\d+)\.pdb$`)

// mutationCodeRe matches an embedded mutation name like RA468G:
// wild type, chain, position, target.
var mutationCodeRe = regexp.MustCompile(`[A-Z]{2}\d+[A-Z]`)

// Role classifies a working-directory file by its name alone.
type Role int

const (
	// RoleReference is wild-type material: no mutation code, no model number
	RoleReference Role = iota

	// RoleMutant is a model already tagged with a mutation name
	RoleMutant

	// RoleUntagged is a numbered model BuildModel wrote that has not
	// been tagged yet
	RoleUntagged
)

// Classify buckets a file name: a numeric BuildModel suffix means an
// untagged mutant, an embedded mutation code means a tagged mutant, and
// anything else is wild-type reference material. Never looks at content.
func Classify(name string) Role {
	if mutantIndexRe.MatchString(name) {
		return RoleUntagged
	}
	if mutationCodeRe.MatchString(name) {
		return RoleMutant
	}
	return RoleReference
}

// mutantIndex returns the BuildModel ordinal embedded in name, or -1.
func mutantIndex(name string) int {
	m := mutantIndexRe.FindStringSubmatch(name)
	if m == nil {
		return -1
	}

	i, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return i
}

// Correlate tags the numbered models under repaired with the mutation
// names that produced them. BuildModel writes model i for line i of the
// mutant list, so a model's numeric suffix is its 1-based line number;
// that ordering is the contract this rename depends on, and an index
// outside 1..len(names) is treated as directory contamination.
//
// Tagging never overwrites: a model whose tagged name already exists is
// left alone, so running Correlate again over a finished directory is a
// no-op. The counts still have to line up. If the number of untagged
// models differs from the number of names that lack a tagged model, the
// directory holds leftovers from another run and renaming by position
// would mislabel structures, so that is fatal.
func Correlate(store *Store, repaired string, names []string) error {
	base := strings.TrimSuffix(repaired, ".pdb")

	files, err := store.Glob(base + "_*.pdb")
	if err != nil {
		return err
	}

	var untagged []string
	for _, f := range files {
		if Classify(f) == RoleUntagged {
			untagged = append(untagged, f)
		}
	}

	var missing int
	for _, n := range names {
		if !store.Exists(taggedModel(base, n)) {
			missing++
		}
	}

	if len(untagged) != missing {
		return fmt.Errorf(
			"cannot rename safely: %d unnamed models for %d untagged mutations",
			len(untagged), missing,
		)
	}

	sort.Slice(untagged, func(i, j int) bool {
		return mutantIndex(untagged[i]) < mutantIndex(untagged[j])
	})

	for _, f := range untagged {
		i := mutantIndex(f)
		if i < 1 || i > len(names) {
			return fmt.Errorf("model %s has index %d, outside 1..%d", f, i, len(names))
		}

		tagged := taggedModel(base, names[i-1])
		renamed, err := store.RenameIfAbsent(f, tagged)
		if err != nil {
			return err
		}
		if renamed {
			stderr.Printf("renamed %s -> %s", f, tagged)
		}
	}
	return nil
}

// taggedModel returns the name a mutant model carries once it is tagged.
func taggedModel(base, mutationName string) string {
	return base + "_" + mutationName + ".pdb"
}
