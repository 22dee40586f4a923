package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

func TestDecodeInteractantNode(t *testing.T) {
	tests := []struct {
		name string
		node graph.Node
		want models.Interactant
	}{
		{
			"molecule",
			moleculeNode(1, 2, "CCO", "ethanol"),
			models.Molecule{ID: 2, Smiles: "CCO", IupacName: "ethanol"},
		},
		{
			"catalyst",
			graph.Node{ID: 1, Labels: []string{LabelCatalyst}, Props: map[string]any{"id": int64(4), "smiles": "Pt"}},
			models.Catalyst{ID: 4, Smiles: "Pt"},
		},
		{
			"reaction",
			graph.Node{ID: 1, Labels: []string{LabelReaction}, Props: map[string]any{"id": int64(9), "name": "hydrolysis"}},
			models.Reaction{ID: 9, Name: "hydrolysis"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, id, err := DecodeInteractantNode(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, models.Identity{Kind: models.NodeID, ID: 1}, id)
		})
	}
}

func TestDecodeInteractantNodeRejects(t *testing.T) {
	_, _, err := DecodeInteractantNode(graph.Node{ID: 1, Labels: []string{LabelStage}})
	assert.ErrorContains(t, err, `unrecognized interactant node label "Stage"`)

	_, _, err = DecodeInteractantNode(graph.Node{ID: 1, Labels: []string{"Solvent"}})
	assert.ErrorContains(t, err, `"Solvent"`)

	got, _, err := DecodeInteractantNode(graph.Node{ID: 1, Labels: []string{LabelMolecule}, Props: map[string]any{}})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDecodeInteractantUnbound(t *testing.T) {
	// Scenario: ACCELERATE with temperature and pressure lists.
	got, id, err := DecodeInteractantUnbound(graph.UnboundRelationship{
		ID:    12,
		Type:  TypeAccelerate,
		Props: map[string]any{"temperature": []any{300.0}, "pressure": []any{1.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Accelerate{Temperature: []float32{300}, Pressure: []float32{1}}, got)
	assert.Equal(t, models.Identity{Kind: models.URelID, ID: 12}, id)

	got, _, err = DecodeInteractantUnbound(graph.UnboundRelationship{ID: 13, Type: TypeReagentIn, Props: map[string]any{"amount": 0.5}})
	require.NoError(t, err)
	assert.Equal(t, models.ReagentIn{Amount: 0.5}, got)

	got, _, err = DecodeInteractantUnbound(graph.UnboundRelationship{ID: 14, Type: TypeProductFrom, Props: map[string]any{"amount": 0.25}})
	require.NoError(t, err)
	assert.Equal(t, models.ProductFrom{Amount: 0.25}, got)

	_, _, err = DecodeInteractantUnbound(graph.UnboundRelationship{ID: 15, Type: "DISSOLVES"})
	assert.ErrorContains(t, err, `unrecognized relationship type "DISSOLVES"`)

	_, _, err = DecodeInteractantUnbound(graph.UnboundRelationship{ID: 16, Type: TypeFollow})
	assert.ErrorContains(t, err, `unrecognized interactant relationship type "FOLLOW"`)
}

func TestDecodeInteractantRelationship(t *testing.T) {
	// Scenario: ACCELERATE whose start node is 7.
	got, id, err := DecodeInteractantRelationship(graph.Relationship{
		ID:      30,
		StartID: 7,
		EndID:   8,
		Type:    TypeAccelerate,
		Props:   map[string]any{"temperature": []any{300.0}, "pressure": []any{1.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Accelerate{Temperature: []float32{300}, Pressure: []float32{1}}, got)
	assert.Equal(t, models.Identity{Kind: models.RelTargetNodeID, ID: 7}, id)

	_, _, err = DecodeInteractantRelationship(graph.Relationship{ID: 31, Type: TypeInclude})
	assert.ErrorContains(t, err, `"INCLUDE"`)
}

func TestDecodeExplain(t *testing.T) {
	got, _, err := DecodeExplain(graph.Node{
		ID:     1,
		Labels: []string{LabelMechanism},
		Props:  map[string]any{"id": int64(3), "name": "E1", "type": "elimination", "activationEnergy": 60.0},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Mechanism{ID: 3, Name: "E1", Type: "elimination", ActivationEnergy: 60}, got)

	got, _, err = DecodeExplain(graph.Node{
		ID:     2,
		Labels: []string{LabelStage},
		Props:  map[string]any{"order": int64(2), "name": "loss", "description": "leaving group", "products": []any{}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.KindStage, got.Kind())

	_, _, err = DecodeExplain(moleculeNode(1, 2, "CCO", "ethanol"))
	assert.ErrorContains(t, err, `unrecognized explain node label "Molecule"`)
}
