/*
Package monitor counts the comparisons made while ordering suffixes and
times the phases of a suffix array computation.

A Monitor is purely observational. It is handed down by pointer through one
computation and read after the computation has finished; it is not safe for
concurrent use. All methods accept a nil receiver and then do nothing.
*/
package monitor

import (
	"fmt"
	"strings"
	"time"
)

// Phase names a step of the computation.
type Phase string

// Phases of a suffix array computation, in execution order.
const (
	Factorize Phase = "factorize"
	Chunk     Phase = "chunk"
	Build     Phase = "build"
	Merge     Phase = "merge"
	Compose   Phase = "compose"
)

// Counters is a read-only snapshot of a Monitor.
type Counters struct {
	CompareUsingRules    uint64 // decisions taken from factor metadata
	CompareUsingStrcmp   uint64 // decisions taken by comparing suffix content
	CompareWithNoCustom  uint64 // decisions where neither side was custom
	CompareWithOneCustom uint64 // decisions where exactly one side was custom
	CompareWithTwoCustom uint64 // decisions where both sides were custom
	WindowProbes         uint64 // label probes while locating merge windows
	Durations            map[Phase]time.Duration
	Phases               []Phase // phases in the order they were first started
}

// Comparisons returns the number of ordering decisions.
func (c Counters) Comparisons() uint64 {
	return c.CompareUsingRules + c.CompareUsingStrcmp
}

// Total returns the summed duration of all phases.
func (c Counters) Total() time.Duration {
	var d time.Duration
	for _, p := range c.Phases {
		d += c.Durations[p]
	}
	return d
}

func (c Counters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rules=%d strcmp=%d no-custom=%d one-custom=%d two-custom=%d probes=%d",
		c.CompareUsingRules, c.CompareUsingStrcmp, c.CompareWithNoCustom,
		c.CompareWithOneCustom, c.CompareWithTwoCustom, c.WindowProbes)
	for _, p := range c.Phases {
		fmt.Fprintf(&b, " %s=%s", p, c.Durations[p])
	}
	return b.String()
}

// Monitor accumulates counters and phase durations.
type Monitor struct {
	counters  Counters
	durations map[Phase]time.Duration
	phases    []Phase
}

// New creates an empty monitor.
func New() *Monitor {
	return &Monitor{
		durations: make(map[Phase]time.Duration),
	}
}

// Decision records one ordering decision. byRules tells whether the
// decision was taken without looking at suffix content, customs is the
// number of custom positions involved (0, 1 or 2).
func (m *Monitor) Decision(byRules bool, customs int) {
	if m == nil {
		return
	}
	if byRules {
		m.counters.CompareUsingRules++
	} else {
		m.counters.CompareUsingStrcmp++
	}
	switch customs {
	case 0:
		m.counters.CompareWithNoCustom++
	case 1:
		m.counters.CompareWithOneCustom++
	case 2:
		m.counters.CompareWithTwoCustom++
	}
}

// Probe records one probe of a merge window search.
func (m *Monitor) Probe() {
	if m == nil {
		return
	}
	m.counters.WindowProbes++
}

// Start starts timing phase p. The returned function stops the timer and adds
// the elapsed time to the phase.
func (m *Monitor) Start(p Phase) func() {
	if m == nil {
		return func() {}
	}
	if _, seen := m.durations[p]; !seen {
		m.phases = append(m.phases, p)
		m.durations[p] = 0
	}
	start := time.Now()
	return func() {
		m.durations[p] += time.Since(start)
	}
}

// Snapshot returns a copy of the current counters and durations.
func (m *Monitor) Snapshot() Counters {
	if m == nil {
		return Counters{Durations: map[Phase]time.Duration{}}
	}
	c := m.counters
	c.Durations = make(map[Phase]time.Duration, len(m.durations))
	for p, d := range m.durations {
		c.Durations[p] = d
	}
	c.Phases = append([]Phase(nil), m.phases...)
	return c
}
