package gridgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum exports the wired grid as a gonum directed graph. Node IDs match
// NodeIDs and every neighbor entry becomes one directed edge, so symmetric
// wiring yields both directions. Useful for running gonum's path and
// topology algorithms against the same topology.
// Complexity: O(W×H×d) time and memory.
func (g *Graph) ToGonum() graph.Directed {
	dg := simple.NewDirectedGraph()
	for i := range g.nodes {
		dg.AddNode(simple.Node(i))
	}
	for i := range g.nodes {
		for _, n := range g.nodes[i].neighbors {
			dg.SetEdge(dg.NewEdge(simple.Node(i), simple.Node(n)))
		}
	}
	return dg
}
