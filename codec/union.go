package codec

import (
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// DecodeInteractantNode decodes a node whose kind is only known from its label.
func DecodeInteractantNode(n graph.Node) (models.Interactant, models.Identity, error) {
	kind, err := ClassifyNode(n)
	if err != nil {
		return nil, models.Identity{}, err
	}
	switch kind {
	case models.KindMolecule:
		return widen(DecodeMolecule(n))
	case models.KindCatalyst:
		return widen(DecodeCatalyst(n))
	case models.KindReaction:
		return widen(DecodeReaction(n))
	default:
		return nil, models.Identity{}, parsingErrorf("unrecognized interactant node label %q", n.Labels[0])
	}
}

// DecodeInteractantUnbound decodes a path relationship whose kind is only known from its
// type.
func DecodeInteractantUnbound(r graph.UnboundRelationship) (models.Interactant, models.Identity, error) {
	kind, err := ClassifyRelationship(r.Type)
	if err != nil {
		return nil, models.Identity{}, err
	}
	switch kind {
	case models.KindReagentIn:
		return widen(DecodeReagentInUnbound(r))
	case models.KindProductFrom:
		return widen(DecodeProductFromUnbound(r))
	case models.KindAccelerate:
		return widen(DecodeAccelerateUnbound(r))
	default:
		return nil, models.Identity{}, parsingErrorf("unrecognized interactant relationship type %q", r.Type)
	}
}

// DecodeInteractantRelationship is DecodeInteractantUnbound for bound relationships; the
// Identity is the endpoint the relationship pairs with.
func DecodeInteractantRelationship(r graph.Relationship) (models.Interactant, models.Identity, error) {
	kind, err := ClassifyRelationship(r.Type)
	if err != nil {
		return nil, models.Identity{}, err
	}
	switch kind {
	case models.KindReagentIn:
		return widen(DecodeReagentIn(r))
	case models.KindProductFrom:
		return widen(DecodeProductFrom(r))
	case models.KindAccelerate:
		return widen(DecodeAccelerate(r))
	default:
		return nil, models.Identity{}, parsingErrorf("unrecognized interactant relationship type %q", r.Type)
	}
}

// DecodeExplain decodes a Mechanism or Stage node.
func DecodeExplain(n graph.Node) (models.Explain, models.Identity, error) {
	kind, err := ClassifyNode(n)
	if err != nil {
		return nil, models.Identity{}, err
	}
	switch kind {
	case models.KindMechanism:
		m, id, err := DecodeMechanism(n)
		if err != nil {
			return nil, models.Identity{}, err
		}
		return m, id, nil
	case models.KindStage:
		s, id, err := DecodeStage(n)
		if err != nil {
			return nil, models.Identity{}, err
		}
		return s, id, nil
	default:
		return nil, models.Identity{}, parsingErrorf("unrecognized explain node label %q", n.Labels[0])
	}
}

// widen lifts a typed decode result into the Interactant union. On error the union value
// is nil rather than a zero entity.
func widen[T models.Interactant](v T, id models.Identity, err error) (models.Interactant, models.Identity, error) {
	if err != nil {
		return nil, models.Identity{}, err
	}
	return v, id, nil
}
