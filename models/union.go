package models

import (
	"encoding/json"
	"fmt"
)

// Interactant is anything that can take part in a reaction: Molecule, Catalyst, Reaction,
// Accelerate, ReagentIn or ProductFrom. The set is closed; no other type implements it.
type Interactant interface {
	Kind() Kind
	interactant()
}

// Explain is a piece of a mechanism description: Mechanism or Stage.
type Explain interface {
	Kind() Kind
	explain()
}

func (Molecule) Kind() Kind    { return KindMolecule }
func (Catalyst) Kind() Kind    { return KindCatalyst }
func (Reaction) Kind() Kind    { return KindReaction }
func (Accelerate) Kind() Kind  { return KindAccelerate }
func (ReagentIn) Kind() Kind   { return KindReagentIn }
func (ProductFrom) Kind() Kind { return KindProductFrom }
func (Mechanism) Kind() Kind   { return KindMechanism }
func (Stage) Kind() Kind       { return KindStage }
func (Follow) Kind() Kind      { return KindFollow }
func (Include) Kind() Kind     { return KindInclude }

func (Molecule) interactant()    {}
func (Catalyst) interactant()    {}
func (Reaction) interactant()    {}
func (Accelerate) interactant()  {}
func (ReagentIn) interactant()   {}
func (ProductFrom) interactant() {}

func (Mechanism) explain() {}
func (Stage) explain()     {}

// taggedJSON is the wire form of a union value.
type taggedJSON struct {
	Tag      string          `json:"tag"`
	Contents json.RawMessage `json:"contents"`
}

// Interactants is a list of Interactant values that serializes each element as
// {"tag": "<Kind>", "contents": {...}}.
type Interactants []Interactant

// MarshalJSON encodes each element with its Kind as tag. A nil element is an error.
func (is Interactants) MarshalJSON() ([]byte, error) {
	out := make([]taggedJSON, 0, len(is))
	for _, i := range is {
		if i == nil {
			return nil, fmt.Errorf("cannot marshal nil interactant")
		}
		contents, err := json.Marshal(i)
		if err != nil {
			return nil, err
		}
		out = append(out, taggedJSON{Tag: i.Kind().String(), Contents: contents})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes tagged elements. An unknown tag is an error.
func (is *Interactants) UnmarshalJSON(data []byte) error {
	var raw []taggedJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Interactants, 0, len(raw))
	for _, r := range raw {
		i, err := unmarshalInteractant(r)
		if err != nil {
			return err
		}
		out = append(out, i)
	}
	*is = out
	return nil
}

func unmarshalInteractant(r taggedJSON) (Interactant, error) {
	switch r.Tag {
	case KindMolecule.String():
		return unmarshalAs[Molecule](r.Contents)
	case KindCatalyst.String():
		return unmarshalAs[Catalyst](r.Contents)
	case KindReaction.String():
		return unmarshalAs[Reaction](r.Contents)
	case KindAccelerate.String():
		return unmarshalAs[Accelerate](r.Contents)
	case KindReagentIn.String():
		return unmarshalAs[ReagentIn](r.Contents)
	case KindProductFrom.String():
		return unmarshalAs[ProductFrom](r.Contents)
	default:
		return nil, fmt.Errorf("unrecognized interactant tag %q", r.Tag)
	}
}

func unmarshalAs[T Interactant](data json.RawMessage) (Interactant, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
