package trie

// SuffixArray reads the suffix array off the merged trie, merging first if
// necessary.
//
// The traversal is depth-first and left to right: the rankings of a node
// preceding the window of a child are emitted, then the subtree of the
// child, and emission of the node's rankings resumes after the window.
func (t *Trie) SuffixArray() []int {
	t.Merge()
	sa := make([]int, 0, len(t.seq))
	type frame struct {
		id     int32
		child  int // next child to visit
		cursor int // next ranking of the node to emit
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		u := &t.nodes[f.id]
		if f.child < len(u.children) {
			c := &t.nodes[u.children[f.child]]
			sa = append(sa, u.rankings[f.cursor:c.minFather]...)
			f.cursor = c.maxFather
			next := u.children[f.child]
			f.child++
			stack = append(stack, frame{id: next})
			continue
		}
		sa = append(sa, u.rankings[f.cursor:]...)
		stack = stack[:len(stack)-1]
	}
	assert(len(sa) == len(t.seq), "suffix array does not cover the sequence")
	return sa
}
