package trie

import "unsafe"

// Stats summarizes the shape of a trie.
type Stats struct {
	Nodes     int // including the root
	Leaves    int
	Internal  int // non-root nodes with children
	Ranked    int // nodes holding at least one ranking
	Rankings  int
	MaxDepth  int
	MaxLevel  int
	MaxFanout int
	Memory    uint64 // approximate, in bytes
}

// FillRatio is the share of nodes holding rankings.
func (s Stats) FillRatio() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Ranked) / float64(s.Nodes)
}

// Stats collects statistics and writes them to the trace log.
func (t *Trie) Stats() Stats {
	var s Stats
	t.Walk(func(v NodeView) bool {
		s.Nodes++
		n := &t.nodes[v.ID]
		switch {
		case v.ID == root:
		case v.IsLeaf():
			s.Leaves++
		default:
			s.Internal++
		}
		if len(v.Rankings) > 0 {
			s.Ranked++
			s.Rankings += len(v.Rankings)
		}
		s.MaxDepth = max(s.MaxDepth, v.Depth)
		s.MaxLevel = max(s.MaxLevel, v.Level)
		s.MaxFanout = max(s.MaxFanout, len(n.children))
		s.Memory += uint64(unsafe.Sizeof(*n)) +
			uint64(cap(n.children))*uint64(unsafe.Sizeof(int32(0))) +
			uint64(cap(n.rankings))*uint64(unsafe.Sizeof(int(0)))
		return true
	})
	tracer().Infof("Trie Statistics:")
	tracer().Infof("  Nodes:    %d (%d leaves, %d internal)", s.Nodes, s.Leaves, s.Internal)
	tracer().Infof("  Ranked:   %d of %d (%.1f%%)", s.Ranked, s.Nodes, s.FillRatio()*100)
	tracer().Infof("  Rankings: %d", s.Rankings)
	tracer().Infof("  Depth:    %d, level %d, fan-out %d", s.MaxDepth, s.MaxLevel, s.MaxFanout)
	tracer().Infof("  Memory:   %d bytes", s.Memory)
	return s
}
