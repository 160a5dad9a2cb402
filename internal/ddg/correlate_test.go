package ddg

import (
	"strings"
	"testing"
)

func Test_Classify(t *testing.T) {
	tests := []struct {
		name string
		want Role
	}{
		{"prot.pdb", RoleReference},
		{"prot_Repair.pdb", RoleReference},
		{"prot_Repair.fxout", RoleReference},
		{"individual_list.txt", RoleReference},
		{"prot_Repair_7.pdb", RoleUntagged},
		{"prot_Repair_19.pdb", RoleUntagged},
		{"prot_Repair_RA468G.pdb", RoleMutant},
		{"prot_Repair_KB12A_0_ST.fxout", RoleMutant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_Correlate(t *testing.T) {
	store := NewStore(t.TempDir())
	names := []string{"RA468A", "RA468C", "RA468D"}

	// models created in no particular order; the numeric suffix, not the
	// creation order, decides the pairing
	for _, f := range []string{"prot_Repair.pdb", "prot_Repair_3.pdb", "prot_Repair_1.pdb", "prot_Repair_2.pdb"} {
		if err := store.Write(f, []byte(f)); err != nil {
			t.Fatal(err)
		}
	}

	if err := Correlate(store, "prot_Repair.pdb", names); err != nil {
		t.Fatalf("Correlate: %v", err)
	}

	for i, n := range names {
		tagged := "prot_Repair_" + n + ".pdb"
		data, err := store.Read(tagged)
		if err != nil {
			t.Fatalf("missing tagged model %s: %v", tagged, err)
		}
		// model i+1 must have become the i-th mutation's structure
		if want := "prot_Repair_" + string(rune('1'+i)) + ".pdb"; string(data) != want {
			t.Errorf("%s holds %q, want the content of %s", tagged, data, want)
		}
	}

	files, _ := store.Glob("prot_Repair_*.pdb")
	for _, f := range files {
		if Classify(f) == RoleUntagged {
			t.Errorf("untagged model %s left behind", f)
		}
	}
	if !store.Exists("prot_Repair.pdb") {
		t.Error("reference structure was touched")
	}

	// a second pass over the finished directory is a no-op
	if err := Correlate(store, "prot_Repair.pdb", names); err != nil {
		t.Fatalf("rerunning Correlate: %v", err)
	}
}

func Test_CorrelateCountMismatch(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, f := range []string{"prot_Repair.pdb", "prot_Repair_1.pdb", "prot_Repair_2.pdb"} {
		store.Write(f, nil)
	}

	err := Correlate(store, "prot_Repair.pdb", []string{"RA468A", "RA468C", "RA468D"})
	if err == nil || !strings.Contains(err.Error(), "cannot rename safely") {
		t.Fatalf("got %v, want a rename-safety error", err)
	}
}

func Test_CorrelateIndexOutOfRange(t *testing.T) {
	store := NewStore(t.TempDir())

	// model 9 can't belong to a 3-line mutant list
	for _, f := range []string{"prot_Repair_2.pdb", "prot_Repair_3.pdb", "prot_Repair_9.pdb"} {
		store.Write(f, nil)
	}

	err := Correlate(store, "prot_Repair.pdb", []string{"RA468A", "RA468C", "RA468D"})
	if err == nil || !strings.Contains(err.Error(), "outside") {
		t.Fatalf("got %v, want an index-out-of-range error", err)
	}
}

func Test_CorrelatePartialResume(t *testing.T) {
	store := NewStore(t.TempDir())
	names := []string{"RA468A", "RA468C", "RA468D"}

	// the first model was tagged by an earlier pass; 2 and 3 were not
	for _, f := range []string{"prot_Repair_RA468A.pdb", "prot_Repair_2.pdb", "prot_Repair_3.pdb"} {
		store.Write(f, []byte(f))
	}

	if err := Correlate(store, "prot_Repair.pdb", names); err != nil {
		t.Fatalf("Correlate: %v", err)
	}

	for _, n := range names {
		if !store.Exists("prot_Repair_" + n + ".pdb") {
			t.Errorf("missing tagged model for %s", n)
		}
	}
}
