package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

func TestNodeMaskOfCatalyst(t *testing.T) {
	name := "platinum"

	mask, err := NodeMaskOf(models.Catalyst{ID: 1, Smiles: "Pt", Name: &name})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(1), "smiles": "Pt", "name": "platinum"}, mask.Properties)
}

func TestNodeMaskOfCatalystWithoutName(t *testing.T) {
	mask, err := NodeMaskOf(models.Catalyst{ID: 1, Smiles: "Pt"})

	require.NoError(t, err)
	assert.NotContains(t, mask.Properties, "name")
}

func TestNodeMaskRoundTrip(t *testing.T) {
	nodes := []graph.Node{
		moleculeNode(50, 2, "CCO", "ethanol"),
		catalystNode(51, 10),
		reactionNode(52),
	}
	for _, n := range nodes {
		t.Run(n.Labels[0], func(t *testing.T) {
			decoded, _, err := DecodeInteractantNode(n)
			require.NoError(t, err)

			mask, err := NodeMaskOf(decoded)
			require.NoError(t, err)
			assert.Equal(t, n.Props, mask.Properties)

			again, _, err := DecodeInteractantNode(graph.Node{ID: 999, Labels: n.Labels, Props: mask.Properties})
			require.NoError(t, err)
			assert.Equal(t, decoded, again)
		})
	}
}

func TestRelMaskOf(t *testing.T) {
	mask, err := RelMaskOf(models.Accelerate{Temperature: []float32{300}, Pressure: []float32{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"temperature": []float64{300}, "pressure": []float64{1, 2}}, mask.Properties)

	mask, err = RelMaskOf(models.ReagentIn{Amount: 0.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"amount": 0.5}, mask.Properties)

	mask, err = RelMaskOf(models.ProductFrom{Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"amount": 2.0}, mask.Properties)

	mask, err = RelMaskOf(models.StandardConditions())
	require.NoError(t, err)
	assert.InDelta(t, 273.15, mask.Properties["temperature"].([]float64)[0], 1e-4)
}

func TestMaskWrongSide(t *testing.T) {
	_, err := RelMaskOf(models.Molecule{ID: 1})
	assert.ErrorIs(t, err, ErrParsing)
	assert.ErrorContains(t, err, "unrecognized interactant for relationship mask: Molecule")

	_, err = NodeMaskOf(models.Accelerate{})
	assert.ErrorContains(t, err, "unrecognized interactant for node mask: Accelerate")

	_, err = NodeMaskOf(nil)
	assert.ErrorContains(t, err, "nil")
}

func TestMasksCarryNoGraphIDs(t *testing.T) {
	n := moleculeNode(777, 2, "CCO", "ethanol")
	decoded, _, err := DecodeInteractantNode(n)
	require.NoError(t, err)

	mask, err := NodeMaskOf(decoded)
	require.NoError(t, err)
	for _, v := range mask.Properties {
		assert.NotEqual(t, int64(777), v)
	}
}

func TestExplainNodeMaskOf(t *testing.T) {
	mask, err := ExplainNodeMaskOf(models.Mechanism{ID: 3, Name: "SN2", Type: "substitution", ActivationEnergy: 80.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(3), "name": "SN2", "type": "substitution", "activationEnergy": 80.5}, mask.Properties)

	mask, err = ExplainNodeMaskOf(models.Stage{Order: 1, Name: "a", Description: "b", Products: []string{"TS"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"TS"}, mask.Properties["products"])

	_, err = ExplainNodeMaskOf(nil)
	assert.ErrorIs(t, err, ErrParsing)
}

func TestFollowAndIncludeMasks(t *testing.T) {
	assert.Equal(t, map[string]any{"description": "d"}, FollowRelMask(models.Follow{Description: "d"}).Properties)
	assert.Empty(t, IncludeRelMask(models.Include{}).Properties)
}
