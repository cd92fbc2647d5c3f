package config

import "testing"

func TestDefaultMatchesSpecValues(t *testing.T) {
	d := Default()
	if d.LowerBoundPercent != 85 {
		t.Fatalf("LowerBoundPercent = %v, want 85", d.LowerBoundPercent)
	}
	if d.IntervalSize != 200000 {
		t.Fatalf("IntervalSize = %v, want 200000", d.IntervalSize)
	}
	if !d.ProcessPartialRelations {
		t.Fatal("ProcessPartialRelations should default to true")
	}
	if d.MergeLimit != 8 {
		t.Fatalf("MergeLimit = %v, want 8", d.MergeLimit)
	}
}

func TestEqualIgnoresReportCallback(t *testing.T) {
	a := Default()
	b := Default()
	a.Report = func(string, map[string]any) {}
	if !a.Equal(b) {
		t.Fatal("Equal should ignore the Report callback")
	}

	b.Threads = 4
	if a.Equal(b) {
		t.Fatal("Equal should notice a differing Threads field")
	}
}

func TestWithDefaultsLeavesOverridesAlone(t *testing.T) {
	c := Config{LowerBoundPercent: 90, Threads: 3}
	c = c.WithDefaults()

	if c.LowerBoundPercent != 90 {
		t.Fatalf("LowerBoundPercent override clobbered: got %v", c.LowerBoundPercent)
	}
	if c.Threads != 3 {
		t.Fatalf("Threads should be untouched by WithDefaults, got %v", c.Threads)
	}
	if c.IntervalSize != 200000 {
		t.Fatalf("IntervalSize should be filled from Default(), got %v", c.IntervalSize)
	}
	if c.MergeLimit != 8 {
		t.Fatalf("MergeLimit should be filled from Default(), got %v", c.MergeLimit)
	}
}
