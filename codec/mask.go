package codec

import (
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// NodeMaskOf projects a node-side interactant (Molecule, Catalyst, Reaction) into the
// properties written for it. An absent Catalyst name is left out.
func NodeMaskOf(i models.Interactant) (models.NodeMask, error) {
	switch v := i.(type) {
	case models.Molecule:
		return models.NodeMask{Properties: map[string]any{
			"id":        v.ID,
			"smiles":    v.Smiles,
			"iupacName": v.IupacName,
		}}, nil
	case models.Catalyst:
		props := map[string]any{
			"id":     v.ID,
			"smiles": v.Smiles,
		}
		if v.Name != nil {
			props["name"] = *v.Name
		}
		return models.NodeMask{Properties: props}, nil
	case models.Reaction:
		return models.NodeMask{Properties: map[string]any{
			"id":   v.ID,
			"name": v.Name,
		}}, nil
	default:
		return models.NodeMask{}, unrecognizedForMask(i, "node")
	}
}

// RelMaskOf projects a relationship-side interactant (ReagentIn, ProductFrom,
// Accelerate) into the properties written for it.
func RelMaskOf(i models.Interactant) (models.RelMask, error) {
	switch v := i.(type) {
	case models.ReagentIn:
		return models.RelMask{Properties: map[string]any{"amount": float64(v.Amount)}}, nil
	case models.ProductFrom:
		return models.RelMask{Properties: map[string]any{"amount": float64(v.Amount)}}, nil
	case models.Accelerate:
		return models.RelMask{Properties: map[string]any{
			"temperature": widenFloats(v.Temperature),
			"pressure":    widenFloats(v.Pressure),
		}}, nil
	default:
		return models.RelMask{}, unrecognizedForMask(i, "relationship")
	}
}

// ExplainNodeMaskOf projects a Mechanism or Stage.
func ExplainNodeMaskOf(e models.Explain) (models.NodeMask, error) {
	switch v := e.(type) {
	case models.Mechanism:
		return models.NodeMask{Properties: map[string]any{
			"id":               v.ID,
			"name":             v.Name,
			"type":             v.Type,
			"activationEnergy": float64(v.ActivationEnergy),
		}}, nil
	case models.Stage:
		products := make([]string, len(v.Products))
		copy(products, v.Products)
		return models.NodeMask{Properties: map[string]any{
			"order":       v.Order,
			"name":        v.Name,
			"description": v.Description,
			"products":    products,
		}}, nil
	default:
		if e == nil {
			return models.NodeMask{}, parsingErrorf("unrecognized explain for node mask: nil")
		}
		return models.NodeMask{}, parsingErrorf("unrecognized explain for node mask: %s", e.Kind())
	}
}

// FollowRelMask projects a Follow.
func FollowRelMask(f models.Follow) models.RelMask {
	return models.RelMask{Properties: map[string]any{"description": f.Description}}
}

// IncludeRelMask projects an Include, which has no properties.
func IncludeRelMask(models.Include) models.RelMask {
	return models.RelMask{Properties: map[string]any{}}
}

func unrecognizedForMask(i models.Interactant, side string) error {
	if i == nil {
		return parsingErrorf("unrecognized interactant for %s mask: nil", side)
	}
	return parsingErrorf("unrecognized interactant for %s mask: %s", side, i.Kind())
}

func widenFloats(fs []float32) []float64 {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = float64(f)
	}
	return out
}
