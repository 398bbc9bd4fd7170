package domain

import "slices"

// UnnamedPerson is the display name used for members that carry no name.
const UnnamedPerson = "No name"

// Node is a person in a cluster graph.
type Node struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
}

// Edge is a scored potential match between two persons.
// SubStatus and Notes are empty when the source carried no value.
type Edge struct {
	LowerID   string `json:"lowerId"`
	HigherID  string `json:"higherId"`
	Status    string `json:"status"`
	SubStatus string `json:"subStatus,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ClusterGraph is the canonical node/edge form of one cluster.
// Every edge references nodes present in Nodes.
type ClusterGraph struct {
	ID    string `json:"id"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewClusterGraph builds a graph from candidate nodes and edges. Nodes are
// deduplicated by PersonID keeping the first occurrence, and edges whose
// endpoints are not both present are dropped. Order is preserved.
func NewClusterGraph(id string, nodes []Node, edges []Edge) *ClusterGraph {
	g := &ClusterGraph{
		ID:    id,
		Nodes: make([]Node, 0, len(nodes)),
		Edges: make([]Edge, 0, len(edges)),
	}

	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n.PersonID == "" {
			continue
		}
		if _, dup := seen[n.PersonID]; dup {
			continue
		}
		seen[n.PersonID] = struct{}{}
		g.Nodes = append(g.Nodes, n)
	}

	for _, e := range edges {
		_, okLower := seen[e.LowerID]
		_, okHigher := seen[e.HigherID]
		if !okLower || !okHigher {
			continue
		}
		g.Edges = append(g.Edges, e)
	}

	return g
}

// HasNode reports whether the graph contains a node with the given person id.
func (g *ClusterGraph) HasNode(personID string) bool {
	return slices.ContainsFunc(g.Nodes, func(n Node) bool { return n.PersonID == personID })
}

// Equal reports whether two graphs have the same id, nodes and edge order.
func (g *ClusterGraph) Equal(other *ClusterGraph) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.ID == other.ID &&
		slices.Equal(g.Nodes, other.Nodes) &&
		slices.Equal(g.Edges, other.Edges)
}
