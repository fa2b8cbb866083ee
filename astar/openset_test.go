package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func drain(s *openSet) []gridgraph.NodeID {
	var out []gridgraph.NodeID
	for {
		it, ok := s.pop()
		if !ok {
			return out
		}
		out = append(out, it.id)
	}
}

func TestOpenSetOrdersByFThenSeq(t *testing.T) {
	s := newOpenSet()
	s.push(7, 4, 1)
	s.push(3, 2, 2)
	s.push(5, 4, 3)
	s.push(1, 2, 4)
	require.Equal(t, 4, s.len())

	assert.Equal(t, []gridgraph.NodeID{3, 1, 7, 5}, s.ids())
	assert.Equal(t, []gridgraph.NodeID{3, 1, 7, 5}, drain(s))
	assert.Zero(t, s.len())
}

func TestOpenSetUpdateKeepsSeq(t *testing.T) {
	s := newOpenSet()
	s.push(1, 3, 1)
	s.push(2, 5, 2)
	s.push(3, 3, 3)

	// 2 drops to f=3 but keeps its seq, so it slots between 1 and 3.
	s.update(2, 5, 3, 2)
	assert.Equal(t, 3, s.len(), "update must not leave a stale entry")
	assert.Equal(t, []gridgraph.NodeID{1, 2, 3}, drain(s))
}

func TestOpenSetPopEmpty(t *testing.T) {
	s := newOpenSet()
	_, ok := s.pop()
	assert.False(t, ok)
	assert.Empty(t, s.ids())
}
