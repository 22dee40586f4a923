package neochem

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/codec"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
)

// recordView reads columns of one result record into raw graph elements. The first
// failure sticks in err and later reads are skipped.
type recordView struct {
	record *neo4j.Record
	err    error
}

func (r *recordView) node(key string, dst *graph.Node) {
	if r.err == nil {
		*dst, r.err = codec.RecordNode(r.record, key)
	}
}

func (r *recordView) relationship(key string, dst *graph.Relationship) {
	if r.err == nil {
		*dst, r.err = codec.RecordRelationship(r.record, key)
	}
}

func (r *recordView) nodes(key string, dst *[]graph.Node) {
	if r.err == nil {
		*dst, r.err = codec.RecordNodes(r.record, key)
	}
}

func (r *recordView) relationships(key string, dst *[]graph.Relationship) {
	if r.err == nil {
		*dst, r.err = codec.RecordRelationships(r.record, key)
	}
}
