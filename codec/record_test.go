package codec

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordExtraction(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"n", "r", "ns", "rs", "none", "p", "text"},
		Values: []any{
			neo4j.Node{Id: 1, Labels: []string{LabelReaction}},
			neo4j.Relationship{Id: 2, StartId: 3, EndId: 1, Type: TypeReagentIn},
			[]any{neo4j.Node{Id: 3}, neo4j.Node{Id: 4}},
			[]any{neo4j.Relationship{Id: 5}},
			nil,
			neo4j.Path{Nodes: []neo4j.Node{{Id: 1}}},
			"hello",
		},
	}

	n, err := RecordNode(record, "n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)

	r, err := RecordRelationship(record, "r")
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.StartID)

	nodes, err := RecordNodes(record, "ns")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	rels, err := RecordRelationships(record, "rs")
	require.NoError(t, err)
	assert.Len(t, rels, 1)

	empty, err := RecordNodes(record, "none")
	require.NoError(t, err)
	assert.Empty(t, empty)

	p, err := RecordPath(record, "p")
	require.NoError(t, err)
	assert.Len(t, p.Nodes, 1)

	_, err = RecordNode(record, "missing")
	assert.ErrorContains(t, err, `missing result column "missing"`)

	_, err = RecordNode(record, "text")
	assert.ErrorContains(t, err, "expected node, got string")

	_, err = RecordRelationships(record, "ns")
	assert.ErrorContains(t, err, "element 0: expected relationship")

	_, err = RecordPath(record, "n")
	assert.ErrorIs(t, err, ErrParsing)
}

func TestRecordPathRejectsTruncatedPath(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"path"},
		Values: []any{neo4j.Path{
			Nodes:         []neo4j.Node{{Id: 1}},
			Relationships: []neo4j.Relationship{{Id: 2, StartId: 1, EndId: 3, Type: TypeReagentIn}},
		}},
	}

	_, err := RecordPath(record, "path")

	assert.ErrorIs(t, err, ErrParsing)
	assert.ErrorContains(t, err, `result column "path": path has 1 nodes for 1 relationships`)
}
