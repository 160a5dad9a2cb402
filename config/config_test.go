package config

import "testing"

func Test_New(t *testing.T) {
	c := New()

	if c.FoldX != "foldx" {
		t.Errorf("FoldX = %q, want the foldx on PATH by default", c.FoldX)
	}
	if c.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", c.MaxRetries)
	}
	if c.RetryDelay != 5 {
		t.Errorf("RetryDelay = %d, want 5", c.RetryDelay)
	}
	if c.Out != "ddgcalcoutput.txt" {
		t.Errorf("Out = %q, want ddgcalcoutput.txt", c.Out)
	}
}
