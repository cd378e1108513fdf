package trie

import "sort"

// Merge interleaves rankings down the trie, starting at the root.
//
// A node u of depth d holds its rankings in global suffix order. For each
// child c with edge label ℓ, the rankings r of u with seq[r+d:r+d+|ℓ|] == ℓ
// form a contiguous window [minFather, maxFather) of u's rankings. The window
// is merged into the rankings of c; rankings of u outside every window stay
// with u. Windows of consecutive children are disjoint and ascending.
func (t *Trie) Merge() {
	if t.merged {
		return
	}
	stack := []int32{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		from := 0
		for _, c := range t.nodes[u].children {
			lo, hi := t.window(u, c, from)
			child := &t.nodes[c]
			child.minFather, child.maxFather = lo, hi
			if hi > lo {
				child.rankings = t.mergeRankings(t.nodes[u].rankings[lo:hi], child.rankings, int(child.depth))
				tracer().Debugf("merged window [%d,%d) of node %d into node %d", lo, hi, u, c)
			}
			from = hi
			stack = append(stack, c)
		}
	}
	t.merged = true
}

// window locates the rankings of u, at or after index from, which continue
// with the edge label of child c.
func (t *Trie) window(u, c int32, from int) (lo, hi int) {
	rankings := t.nodes[u].rankings[from:]
	if len(rankings) == 0 {
		return from, from
	}
	d := int(t.nodes[u].depth)
	lbl := int(t.nodes[c].label)
	label := t.seq[lbl : lbl+int(t.nodes[c].length)]
	probe := func(r int) int {
		t.rules.mon.Probe()
		start := r + d
		end := min(start+len(label), len(t.seq))
		cont := t.seq[start:end]
		for i := range cont {
			if cont[i] != label[i] {
				if cont[i] < label[i] {
					return -1
				}
				return 1
			}
		}
		if len(cont) < len(label) {
			return -1 // continuation is a proper prefix of the label
		}
		return 0
	}
	lo = sort.Search(len(rankings), func(i int) bool {
		return probe(rankings[i]) >= 0
	})
	hi = lo + sort.Search(len(rankings)-lo, func(i int) bool {
		return probe(rankings[lo+i]) > 0
	})
	return from + lo, from + hi
}

// mergeRankings merges two rankings, each in global suffix order, whose
// positions all share a prefix of length d.
func (t *Trie) mergeRankings(father, own []int, d int) []int {
	merged := make([]int, 0, len(father)+len(own))
	i, j := 0, 0
	for i < len(father) && j < len(own) {
		if t.rules.Compare(father[i], own[j], d) < 0 {
			merged = append(merged, father[i])
			i++
		} else {
			merged = append(merged, own[j])
			j++
		}
	}
	merged = append(merged, father[i:]...)
	merged = append(merged, own[j:]...)
	return merged
}
