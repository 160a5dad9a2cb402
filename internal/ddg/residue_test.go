package ddg

import (
	"strings"
	"testing"
)

func Test_ParseResidueTarget(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    ResidueTarget
		wantErr bool
	}{
		{
			"simple",
			"A:468:R",
			ResidueTarget{Chain: "A", Position: 468, WildType: "R"},
			false,
		},
		{
			"other chain",
			"B:12:K",
			ResidueTarget{Chain: "B", Position: 12, WildType: "K"},
			false,
		},
		{"missing field", "A:468", ResidueTarget{}, true},
		{"extra field", "A:468:R:G", ResidueTarget{}, true},
		{"empty chain", ":468:R", ResidueTarget{}, true},
		{"lowercase chain", "a:468:R", ResidueTarget{}, true},
		{"zero position", "A:0:R", ResidueTarget{}, true},
		{"negative position", "A:-4:R", ResidueTarget{}, true},
		{"non-numeric position", "A:foo:R", ResidueTarget{}, true},
		{"two-letter wild type", "A:468:RR", ResidueTarget{}, true},
		{"non-canonical wild type", "A:468:X", ResidueTarget{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResidueTarget(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResidueTarget(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseResidueTarget(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func Test_MutationList(t *testing.T) {
	targets := []ResidueTarget{
		{Chain: "A", Position: 468, WildType: "R"},
		{Chain: "B", Position: 12, WildType: "K"},
	}

	muts, err := MutationList(targets)
	if err != nil {
		t.Fatalf("MutationList: %v", err)
	}

	if len(muts) != 38 {
		t.Fatalf("got %d mutations, want 38", len(muts))
	}

	// substitutions come out in alphabet order per target
	if muts[0].Name() != "RA468A" {
		t.Errorf("first mutation = %s, want RA468A", muts[0].Name())
	}
	if muts[18].Name() != "RA468Y" {
		t.Errorf("last mutation of first target = %s, want RA468Y", muts[18].Name())
	}
	if muts[19].Name() != "KB12A" {
		t.Errorf("first mutation of second target = %s, want KB12A", muts[19].Name())
	}

	seen := make(map[string]bool)
	for _, m := range muts {
		if m.Target == m.WildType {
			t.Errorf("%s substitutes the wild type into itself", m.Name())
		}
		if seen[m.Name()] {
			t.Errorf("duplicate mutation name %s", m.Name())
		}
		seen[m.Name()] = true
	}
}

func Test_MutationList_badWildType(t *testing.T) {
	// a wild type outside the alphabet excludes nothing, giving 20
	// substitutions per site, which the count check has to catch
	_, err := MutationList([]ResidueTarget{{Chain: "A", Position: 1, WildType: "X"}})
	if err == nil || !strings.Contains(err.Error(), "malformed mutation list") {
		t.Fatalf("got %v, want a malformed mutation list error", err)
	}
}

func Test_MutantListRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	muts, err := MutationList([]ResidueTarget{{Chain: "A", Position: 468, WildType: "R"}})
	if err != nil {
		t.Fatalf("MutationList: %v", err)
	}
	if err := WriteMutantList(store, muts); err != nil {
		t.Fatalf("WriteMutantList: %v", err)
	}

	data, err := store.Read(mutantListFile)
	if err != nil {
		t.Fatalf("read %s: %v", mutantListFile, err)
	}
	if !strings.Contains(string(data), "RA468A;\n") {
		t.Errorf("%s is missing the RA468A; instruction", mutantListFile)
	}

	names, err := ReadMutationNames(store)
	if err != nil {
		t.Fatalf("ReadMutationNames: %v", err)
	}
	if len(names) != len(muts) {
		t.Fatalf("read %d names back, want %d", len(names), len(muts))
	}
	for i := range names {
		if names[i] != muts[i].Name() {
			t.Errorf("name %d = %s, want %s", i, names[i], muts[i].Name())
		}
	}
}
