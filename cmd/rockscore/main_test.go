package main

import (
	"testing"
)

func TestAnalyzeCmdFlags(t *testing.T) {
	cmd := newAnalyzeCmd()
	f := cmd.Flags()

	// Test default values
	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	ucs, _ := f.GetString("ucs")
	if ucs != "R4" {
		t.Errorf("default ucs = %q, want R4", ucs)
	}
	tol, _ := f.GetFloat64("tolerance")
	if tol != 15 {
		t.Errorf("default tolerance = %g, want 15", tol)
	}
	minMembers, _ := f.GetInt("min-members")
	if minMembers != 3 {
		t.Errorf("default min-members = %d, want 3", minMembers)
	}

	// Test that flags exist
	for _, flag := range []string{"input", "codes", "config", "ucs", "orientation-penalty", "tolerance", "min-members", "metric", "output", "save"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestClusterCmdFlags(t *testing.T) {
	cmd := newClusterCmd()
	f := cmd.Flags()

	metric, _ := f.GetString("metric")
	if metric != "two-threshold" {
		t.Errorf("default metric = %q, want two-threshold", metric)
	}

	for _, flag := range []string{"input", "tolerance", "min-members", "metric", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestValidateCmdFlags(t *testing.T) {
	cmd := newValidateCmd()
	for _, flag := range []string{"input", "codes"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestCodesCmdFlags(t *testing.T) {
	cmd := newCodesCmd()
	if cmd.Flags().Lookup("codes") == nil {
		t.Error("missing flag: codes")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
