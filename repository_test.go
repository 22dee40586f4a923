package neochem

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/codec"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

func TestInteractantRepositorySave(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewInteractantRepository(runner, quietLogger())

	require.NoError(t, repo.Save(context.Background(), models.Molecule{ID: 2, Smiles: "CCO", IupacName: "ethanol"}))
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0].query, "Molecule")

	err := repo.Save(context.Background(), models.Accelerate{})
	assert.ErrorIs(t, err, codec.ErrParsing)
	assert.Len(t, runner.calls, 1)
}

func TestInteractantRepositoryFindByID(t *testing.T) {
	node := neo4j.Node{Id: 8, Labels: []string{"Catalyst"}, Props: map[string]any{"id": int64(10), "smiles": "Pt", "name": "platinum"}}
	runner := &fakeRunner{results: map[string]*neo4j.EagerResult{"Catalyst": eager([]string{"n"}, []any{node})}}
	repo := NewInteractantRepository(runner, quietLogger())

	got, err := repo.FindByID(context.Background(), models.KindCatalyst, 10)

	require.NoError(t, err)
	catalyst, ok := got.(models.Catalyst)
	require.True(t, ok)
	assert.Equal(t, "platinum", *catalyst.Name)
}

func TestInteractantRepositoryFindByIDErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewInteractantRepository(&fakeRunner{}, quietLogger()).FindByID(ctx, models.KindMolecule, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewInteractantRepository(&fakeRunner{}, quietLogger()).FindByID(ctx, models.KindFollow, 1)
	assert.ErrorIs(t, err, codec.ErrParsing)

	broken := neo4j.Node{Id: 8, Labels: []string{"Molecule"}, Props: map[string]any{"id": int64(1)}}
	runner := &fakeRunner{results: map[string]*neo4j.EagerResult{"Molecule": eager([]string{"n"}, []any{broken})}}
	_, err = NewInteractantRepository(runner, quietLogger()).FindByID(ctx, models.KindMolecule, 1)
	assert.ErrorContains(t, err, `missing property "smiles"`)

	two := eager([]string{"n"}, []any{broken}, []any{broken})
	runner = &fakeRunner{results: map[string]*neo4j.EagerResult{"Molecule": two}}
	_, err = NewInteractantRepository(runner, quietLogger()).FindByID(ctx, models.KindMolecule, 1)
	assert.ErrorContains(t, err, "found 2")
}

func TestInteractantRepositoryDelete(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewInteractantRepository(runner, quietLogger())

	require.NoError(t, repo.Delete(context.Background(), models.KindReaction, 1))
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0].query, "Reaction")

	assert.ErrorIs(t, repo.Delete(context.Background(), models.KindInclude, 1), codec.ErrParsing)
}
