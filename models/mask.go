package models

// NodeMask is the property mapping written to a node. It never carries graph ids.
type NodeMask struct {
	Properties map[string]any
}

// RelMask is the property mapping written to a relationship.
type RelMask struct {
	Properties map[string]any
}

// PathMask is the read-side projection of a path: decoded nodes and relationships in
// their original order, and the untouched traversal sequence.
type PathMask struct {
	PathNodesMask         Interactants `json:"pathNodesMask"`
	PathRelationshipsMask Interactants `json:"pathRelationshipsMask"`
	PathSequenceMask      []int64      `json:"pathSequenceMask"`
}
