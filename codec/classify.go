package codec

import (
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// Node labels.
const (
	LabelMolecule  = "Molecule"
	LabelCatalyst  = "Catalyst"
	LabelReaction  = "Reaction"
	LabelMechanism = "Mechanism"
	LabelStage     = "Stage"
)

// Relationship types.
const (
	TypeReagentIn   = "REAGENT_IN"
	TypeProductFrom = "PRODUCT_FROM"
	TypeAccelerate  = "ACCELERATE"
	TypeFollow      = "FOLLOW"
	TypeInclude     = "INCLUDE"
)

var nodeKinds = map[string]models.Kind{
	LabelMolecule:  models.KindMolecule,
	LabelCatalyst:  models.KindCatalyst,
	LabelReaction:  models.KindReaction,
	LabelMechanism: models.KindMechanism,
	LabelStage:     models.KindStage,
}

var relKinds = map[string]models.Kind{
	TypeReagentIn:   models.KindReagentIn,
	TypeProductFrom: models.KindProductFrom,
	TypeAccelerate:  models.KindAccelerate,
	TypeFollow:      models.KindFollow,
	TypeInclude:     models.KindInclude,
}

// ClassifyNode returns the kind named by the node's label. The node must carry exactly
// one label and it must be a known one.
func ClassifyNode(n graph.Node) (models.Kind, error) {
	switch len(n.Labels) {
	case 0:
		return 0, parsingErrorf("node %d has no label", n.ID)
	case 1:
	default:
		return 0, parsingErrorf("node %d has %d labels %v, expected exactly one", n.ID, len(n.Labels), n.Labels)
	}
	kind, ok := nodeKinds[n.Labels[0]]
	if !ok {
		return 0, parsingErrorf("unrecognized node label %q", n.Labels[0])
	}
	return kind, nil
}

// ClassifyRelationship returns the kind named by a relationship type string.
func ClassifyRelationship(relType string) (models.Kind, error) {
	kind, ok := relKinds[relType]
	if !ok {
		return 0, parsingErrorf("unrecognized relationship type %q", relType)
	}
	return kind, nil
}

// LabelOf returns the node label entities of kind k are stored under.
func LabelOf(k models.Kind) (string, error) {
	switch k {
	case models.KindMolecule:
		return LabelMolecule, nil
	case models.KindCatalyst:
		return LabelCatalyst, nil
	case models.KindReaction:
		return LabelReaction, nil
	case models.KindMechanism:
		return LabelMechanism, nil
	case models.KindStage:
		return LabelStage, nil
	default:
		return "", parsingErrorf("%s is not stored as a node", k)
	}
}

// RelTypeOf returns the relationship type entities of kind k are stored under.
func RelTypeOf(k models.Kind) (string, error) {
	switch k {
	case models.KindReagentIn:
		return TypeReagentIn, nil
	case models.KindProductFrom:
		return TypeProductFrom, nil
	case models.KindAccelerate:
		return TypeAccelerate, nil
	case models.KindFollow:
		return TypeFollow, nil
	case models.KindInclude:
		return TypeInclude, nil
	default:
		return "", parsingErrorf("%s is not stored as a relationship", k)
	}
}

func expectNode(n graph.Node, want models.Kind) error {
	kind, err := ClassifyNode(n)
	if err != nil {
		return err
	}
	if kind != want {
		return parsingErrorf("node %d is a %s, expected %s", n.ID, kind, want)
	}
	return nil
}

func expectRel(relType string, want models.Kind) error {
	kind, err := ClassifyRelationship(relType)
	if err != nil {
		return err
	}
	if kind != want {
		return parsingErrorf("relationship type %q is a %s, expected %s", relType, kind, want)
	}
	return nil
}
