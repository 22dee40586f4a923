// Package graph models the raw, untyped elements a Neo4j query hands back: nodes,
// relationships, unbound relationships and paths. These are the inputs of the codec
// package, which turns them into typed chemistry entities.
//
// The shapes follow the Bolt protocol rather than the driver's convenience types so that
// paths keep their signed traversal sequence and relationships inside paths carry no
// endpoint ids.
package graph

// Value is a property value as stored in the graph: int64, string, float64, nil or a
// []any of further values.
type Value = any

// Node is a graph node with its native id, its labels and its properties.
type Node struct {
	ID     int64
	Labels []string
	Props  map[string]Value
}

// Relationship is a bound relationship: it knows the native ids of both endpoints.
type Relationship struct {
	ID      int64
	StartID int64
	EndID   int64
	Type    string
	Props   map[string]Value
}

// UnboundRelationship is a relationship found inside a path. Its endpoints are implied by
// its position in the path sequence.
type UnboundRelationship struct {
	ID    int64
	Type  string
	Props map[string]Value
}

// Path is a traversal. Sequence holds (relIndex, nodeIndex) pairs: relIndex is 1-based into
// Relationships and negative when the relationship is walked against its direction,
// nodeIndex is 0-based into Nodes. The first node of the walk is always Nodes[0].
type Path struct {
	Nodes         []Node
	Relationships []UnboundRelationship
	Sequence      []int64
}

// Unbind drops the endpoint ids of a relationship.
func (r Relationship) Unbind() UnboundRelationship {
	return UnboundRelationship{ID: r.ID, Type: r.Type, Props: r.Props}
}

// RawReactionDetails is everything one reaction query returns before correlation: the
// reaction node plus, per role, the relationships and the nodes on their far side, in the
// order the database produced them.
type RawReactionDetails struct {
	Reaction     Node
	ReagentIns   []Relationship
	Reagents     []Node
	ProductFroms []Relationship
	Products     []Node
	Accelerates  []Relationship
	Catalysts    []Node
}

// RawMechanismDetails is everything one mechanism query returns before correlation.
// Includes holds both the mechanism-to-stage links and the participant-to-stage links.
type RawMechanismDetails struct {
	Mechanism    Node
	Follow       Relationship
	Stages       []Node
	Includes     []Relationship
	Participants []Node
}
