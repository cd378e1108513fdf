package monitor

import (
	"strings"
	"testing"
)

func TestDecisions(t *testing.T) {
	m := New()
	m.Decision(true, 0)
	m.Decision(true, 1)
	m.Decision(false, 2)
	m.Decision(false, 1)
	m.Probe()
	c := m.Snapshot()
	if c.CompareUsingRules != 2 || c.CompareUsingStrcmp != 2 {
		t.Fatalf("rules/strcmp: got %d/%d, want 2/2", c.CompareUsingRules, c.CompareUsingStrcmp)
	}
	if c.CompareWithNoCustom != 1 || c.CompareWithOneCustom != 2 || c.CompareWithTwoCustom != 1 {
		t.Fatalf("no/one/two custom: got %d/%d/%d, want 1/2/1",
			c.CompareWithNoCustom, c.CompareWithOneCustom, c.CompareWithTwoCustom)
	}
	if !strings.Contains(c.String(), "no-custom=1 one-custom=2 two-custom=1") {
		t.Fatalf("report misses custom counters: %s", c)
	}
	if c.Comparisons() != 4 || c.WindowProbes != 1 {
		t.Fatalf("comparisons/probes: got %d/%d, want 4/1", c.Comparisons(), c.WindowProbes)
	}
}

func TestPhasesKeepOrder(t *testing.T) {
	m := New()
	m.Start(Build)()
	m.Start(Factorize)()
	m.Start(Build)()
	c := m.Snapshot()
	if len(c.Phases) != 2 || c.Phases[0] != Build || c.Phases[1] != Factorize {
		t.Fatalf("phase order: got %v", c.Phases)
	}
	if !strings.Contains(c.String(), "build=") {
		t.Fatalf("report misses build phase: %s", c)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := New()
	m.Start(Merge)()
	c := m.Snapshot()
	m.Decision(true, 0)
	c.Durations[Merge] = 0
	if c.CompareUsingRules != 0 {
		t.Fatalf("snapshot changed after further decisions")
	}
	if _, ok := m.Snapshot().Durations[Merge]; !ok {
		t.Fatalf("monitor lost phase after snapshot was modified")
	}
}

func TestNilMonitor(t *testing.T) {
	var m *Monitor
	m.Decision(true, 2)
	m.Probe()
	m.Start(Compose)()
	if c := m.Snapshot(); c.Comparisons() != 0 {
		t.Fatalf("nil monitor counted %d comparisons", c.Comparisons())
	}
}
