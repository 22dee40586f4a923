package models

import "fmt"

// IdentityKind says which graph-native id an Identity carries.
type IdentityKind int

const (
	// NodeID is the decoded node's own id.
	NodeID IdentityKind = iota + 1
	// RelStartNodeID is the start endpoint of a bound relationship.
	RelStartNodeID
	// RelTargetNodeID is the endpoint of a bound relationship that the decoded entity is
	// paired with.
	RelTargetNodeID
	// URelID is an unbound relationship's own id. Its endpoints come from the path.
	URelID
)

// Identity relates a decoded entity to the other elements of the same query result. It is
// only meaningful for the duration of one conversion.
type Identity struct {
	Kind IdentityKind
	ID   int64
}

func (i Identity) String() string {
	switch i.Kind {
	case NodeID:
		return fmt.Sprintf("NodeId(%d)", i.ID)
	case RelStartNodeID:
		return fmt.Sprintf("RelStartNodeId(%d)", i.ID)
	case RelTargetNodeID:
		return fmt.Sprintf("RelTargetNodeId(%d)", i.ID)
	case URelID:
		return fmt.Sprintf("URelId(%d)", i.ID)
	default:
		return fmt.Sprintf("Identity(%d)", i.ID)
	}
}

// Refers reports whether i is a relationship endpoint pointing at the node identified by
// node.
func (i Identity) Refers(node Identity) bool {
	if node.Kind != NodeID {
		return false
	}
	switch i.Kind {
	case RelStartNodeID, RelTargetNodeID:
		return i.ID == node.ID
	default:
		return false
	}
}
