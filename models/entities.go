// Package models contains the chemistry domain: the entities stored in the graph, the
// closed unions used when a value's concrete shape is only known at decode time, the
// composite aggregates returned to API clients and the masks handed to write queries.
//
// JSON field names are part of the API contract and must not change.
package models

// Kind enumerates every entity shape the graph can hold.
type Kind int

const (
	KindMolecule Kind = iota + 1
	KindCatalyst
	KindReaction
	KindMechanism
	KindStage
	KindReagentIn
	KindProductFrom
	KindAccelerate
	KindFollow
	KindInclude
)

func (k Kind) String() string {
	switch k {
	case KindMolecule:
		return "Molecule"
	case KindCatalyst:
		return "Catalyst"
	case KindReaction:
		return "Reaction"
	case KindMechanism:
		return "Mechanism"
	case KindStage:
		return "Stage"
	case KindReagentIn:
		return "ReagentIn"
	case KindProductFrom:
		return "ProductFrom"
	case KindAccelerate:
		return "Accelerate"
	case KindFollow:
		return "Follow"
	case KindInclude:
		return "Include"
	default:
		return "Unknown"
	}
}

// Molecule is a chemical compound.
type Molecule struct {
	ID        int64  `json:"id"`
	Smiles    string `json:"smiles"`
	IupacName string `json:"iupacName"`
}

// Catalyst is a substance that accelerates a reaction. Name is optional.
type Catalyst struct {
	ID     int64   `json:"id"`
	Smiles string  `json:"smiles"`
	Name   *string `json:"name"`
}

// Reaction is a chemical reaction.
type Reaction struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReagentIn links a reagent molecule to the reaction consuming it.
type ReagentIn struct {
	Amount float32 `json:"amount"`
}

// ProductFrom links a reaction to a molecule it produces.
type ProductFrom struct {
	Amount float32 `json:"amount"`
}

// Accelerate links a catalyst to a reaction under the given conditions. Temperature is in
// kelvin, pressure in kilopascal.
type Accelerate struct {
	Temperature []float32 `json:"temperature"`
	Pressure    []float32 `json:"pressure"`
}

// StandardConditions is the Accelerate at standard temperature and pressure.
func StandardConditions() Accelerate {
	return Accelerate{
		Temperature: []float32{273.15},
		Pressure:    []float32{101.325},
	}
}

// Mechanism describes how a reaction proceeds.
type Mechanism struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	ActivationEnergy float32 `json:"activationEnergy"`
}

// Stage is one step of a mechanism.
type Stage struct {
	Order       int64    `json:"order"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Products    []string `json:"products"`
}

// Follow links a reaction to the mechanism it follows.
type Follow struct {
	Description string `json:"description"`
}

// Include links a mechanism to its stages and a stage to its participants.
type Include struct{}
