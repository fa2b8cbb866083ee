package astar

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// openItem is one frontier entry. seq is the insertion counter, so entries
// with equal f leave in the order they first entered the open set.
type openItem struct {
	f   int
	seq uint64
	id  gridgraph.NodeID
}

func openItemLess(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.seq != b.seq {
		return a.seq < b.seq
	}
	return a.id < b.id
}

// openSet is an ordered tree keyed by (f, seq, id). Decrease-key removes
// the old entry and inserts the new one, so the tree never holds stale
// duplicates and membership equals the frontier exactly.
type openSet struct {
	tree *btree.BTreeG[openItem]
}

func newOpenSet() *openSet {
	return &openSet{
		tree: btree.NewBTreeGOptions[openItem](openItemLess, btree.Options{NoLocks: true}),
	}
}

func (s *openSet) push(id gridgraph.NodeID, f int, seq uint64) {
	s.tree.Set(openItem{f: f, seq: seq, id: id})
}

// update moves id from oldF to newF keeping its seq.
func (s *openSet) update(id gridgraph.NodeID, oldF, newF int, seq uint64) {
	s.tree.Delete(openItem{f: oldF, seq: seq, id: id})
	s.tree.Set(openItem{f: newF, seq: seq, id: id})
}

func (s *openSet) pop() (openItem, bool) {
	return s.tree.PopMin()
}

func (s *openSet) len() int {
	return s.tree.Len()
}

// ids lists the frontier in priority order.
func (s *openSet) ids() []gridgraph.NodeID {
	out := make([]gridgraph.NodeID, 0, s.tree.Len())
	s.tree.Scan(func(it openItem) bool {
		out = append(out, it.id)
		return true
	})
	return out
}
