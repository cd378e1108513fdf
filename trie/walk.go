package trie

// NodeView is a read-only view of a trie node, handed out by Walk.
// Slices share memory with the trie and must not be modified.
type NodeView struct {
	ID        int
	Parent    int    // -1 for the root
	Level     int    // number of edges from the root
	Depth     int    // length of Path
	Label     []byte // edge label from the parent
	Path      []byte // string spelled by the node
	Rankings  []int
	MinFather int // window into the parent's rankings, valid after Merge
	MaxFather int
	leaf      bool
}

// IsLeaf reports whether the node has no children.
func (v NodeView) IsLeaf() bool {
	return v.leaf
}

// Walk visits all nodes in depth-first pre-order, children left to right.
// Returning false from visit skips the subtree of the node.
func (t *Trie) Walk(visit func(NodeView) bool) {
	type item struct {
		id, parent int32
		level      int
	}
	stack := []item{{id: root, parent: -1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(t.view(it.id, it.parent, it.level)) {
			continue
		}
		children := t.nodes[it.id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{id: children[i], parent: it.id, level: it.level + 1})
		}
	}
}

func (t *Trie) view(id, parent int32, level int) NodeView {
	n := &t.nodes[id]
	end := int(n.label + n.length)
	return NodeView{
		ID:        int(id),
		Parent:    int(parent),
		Level:     level,
		Depth:     int(n.depth),
		Label:     t.seq[n.label:end:end],
		Path:      t.seq[end-int(n.depth) : end : end],
		Rankings:  n.rankings,
		MinFather: n.minFather,
		MaxFather: n.maxFather,
		leaf:      len(n.children) == 0,
	}
}
