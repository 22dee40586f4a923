package models

import (
	"encoding/json"
	"fmt"
)

// Pair is an ordered couple that travels on the wire as a two-element JSON array.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// MarshalJSON encodes the pair as [first, second].
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.First, p.Second})
}

// UnmarshalJSON decodes a two-element array; any other length is an error.
func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair: expected 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.First); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Second)
}

// ReactionDetails is a reaction with its reagents, products and catalytic conditions.
type ReactionDetails struct {
	Reaction         Reaction                      `json:"reaction"`
	InboundReagents  []Pair[ReagentIn, Molecule]   `json:"inboundReagents"`
	OutboundProducts []Pair[ProductFrom, Molecule] `json:"outboundProducts"`
	Conditions       []Pair[Accelerate, Catalyst]  `json:"conditions"`
}

// MechanismDetails is a mechanism, the Follow that ties it to its reaction, and its stages
// in ascending order, each with the interactants taking part in it.
type MechanismDetails struct {
	MechanismContext Pair[Mechanism, Follow]     `json:"mechanismContext"`
	Stages           []Pair[Stage, Interactants] `json:"stages"`
}

// ProcessDetails is a reaction together with its mechanism. MechanismDetails is nil when
// the reaction follows no known mechanism.
type ProcessDetails struct {
	ReactionDetails  ReactionDetails   `json:"reactionDetails"`
	MechanismDetails *MechanismDetails `json:"mechanismDetails"`
}
