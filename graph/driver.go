package graph

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// FromDriverNode converts a node returned by the Neo4j driver.
func FromDriverNode(n dbtype.Node) Node {
	return Node{
		ID:     n.Id, //nolint:staticcheck // integer ids are what the domain correlates on
		Labels: n.Labels,
		Props:  n.Props,
	}
}

// FromDriverRelationship converts a relationship returned by the Neo4j driver.
func FromDriverRelationship(r dbtype.Relationship) Relationship {
	return Relationship{
		ID:      r.Id,      //nolint:staticcheck
		StartID: r.StartId, //nolint:staticcheck
		EndID:   r.EndId,   //nolint:staticcheck
		Type:    r.Type,
		Props:   r.Props,
	}
}

// FromDriverPath rebuilds the Bolt form of a path from the driver's expanded form.
//
// The driver hands back one node per step (len(Relationships)+1 nodes, repeated when the
// walk revisits a node) and bound relationships. Here nodes and relationships are
// de-duplicated by id and the walk is re-encoded as a signed sequence. A path whose node
// count does not match, or whose relationship does not join the nodes around it, is
// rejected whole.
func FromDriverPath(p dbtype.Path) (Path, error) {
	if len(p.Nodes) != len(p.Relationships)+1 {
		return Path{}, fmt.Errorf("path has %d nodes for %d relationships", len(p.Nodes), len(p.Relationships))
	}
	path := Path{
		Nodes:         make([]Node, 0, len(p.Nodes)),
		Relationships: make([]UnboundRelationship, 0, len(p.Relationships)),
		Sequence:      make([]int64, 0, 2*len(p.Relationships)),
	}

	nodeIndex := make(map[int64]int, len(p.Nodes))
	addNode := func(n dbtype.Node) int {
		node := FromDriverNode(n)
		if i, ok := nodeIndex[node.ID]; ok {
			return i
		}
		nodeIndex[node.ID] = len(path.Nodes)
		path.Nodes = append(path.Nodes, node)
		return len(path.Nodes) - 1
	}
	relIndex := make(map[int64]int, len(p.Relationships))

	addNode(p.Nodes[0])
	for i, r := range p.Relationships {
		rel := FromDriverRelationship(r)
		from, next := FromDriverNode(p.Nodes[i]), FromDriverNode(p.Nodes[i+1])
		forward := rel.StartID == from.ID && rel.EndID == next.ID
		backward := rel.StartID == next.ID && rel.EndID == from.ID
		if !forward && !backward {
			return Path{}, fmt.Errorf("path relationship %d does not join nodes %d and %d", rel.ID, from.ID, next.ID)
		}
		ri, ok := relIndex[rel.ID]
		if !ok {
			ri = len(path.Relationships)
			relIndex[rel.ID] = ri
			path.Relationships = append(path.Relationships, rel.Unbind())
		}

		signed := int64(ri + 1)
		if !forward {
			signed = -signed
		}
		to := addNode(p.Nodes[i+1])
		path.Sequence = append(path.Sequence, signed, int64(to))
	}
	return path, nil
}
