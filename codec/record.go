package codec

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
)

// RecordNode reads the node returned under key.
func RecordNode(record *neo4j.Record, key string) (graph.Node, error) {
	v, ok := record.Get(key)
	if !ok {
		return graph.Node{}, parsingErrorf("missing result column %q", key)
	}
	n, ok := v.(neo4j.Node)
	if !ok {
		return graph.Node{}, parsingErrorf("result column %q: expected node, got %T", key, v)
	}
	return graph.FromDriverNode(n), nil
}

// RecordRelationship reads the relationship returned under key.
func RecordRelationship(record *neo4j.Record, key string) (graph.Relationship, error) {
	v, ok := record.Get(key)
	if !ok {
		return graph.Relationship{}, parsingErrorf("missing result column %q", key)
	}
	r, ok := v.(neo4j.Relationship)
	if !ok {
		return graph.Relationship{}, parsingErrorf("result column %q: expected relationship, got %T", key, v)
	}
	return graph.FromDriverRelationship(r), nil
}

// RecordPath reads the path returned under key.
func RecordPath(record *neo4j.Record, key string) (graph.Path, error) {
	v, ok := record.Get(key)
	if !ok {
		return graph.Path{}, parsingErrorf("missing result column %q", key)
	}
	p, ok := v.(neo4j.Path)
	if !ok {
		return graph.Path{}, parsingErrorf("result column %q: expected path, got %T", key, v)
	}
	path, err := graph.FromDriverPath(p)
	if err != nil {
		return graph.Path{}, parsingErrorf("result column %q: %v", key, err)
	}
	return path, nil
}

// RecordNodes reads the list of nodes returned under key, typically a collect().
func RecordNodes(record *neo4j.Record, key string) ([]graph.Node, error) {
	items, err := recordList(record, key)
	if err != nil {
		return nil, err
	}
	nodes := make([]graph.Node, 0, len(items))
	for i, item := range items {
		n, ok := item.(neo4j.Node)
		if !ok {
			return nil, parsingErrorf("result column %q element %d: expected node, got %T", key, i, item)
		}
		nodes = append(nodes, graph.FromDriverNode(n))
	}
	return nodes, nil
}

// RecordRelationships reads the list of relationships returned under key.
func RecordRelationships(record *neo4j.Record, key string) ([]graph.Relationship, error) {
	items, err := recordList(record, key)
	if err != nil {
		return nil, err
	}
	rels := make([]graph.Relationship, 0, len(items))
	for i, item := range items {
		r, ok := item.(neo4j.Relationship)
		if !ok {
			return nil, parsingErrorf("result column %q element %d: expected relationship, got %T", key, i, item)
		}
		rels = append(rels, graph.FromDriverRelationship(r))
	}
	return rels, nil
}

func recordList(record *neo4j.Record, key string) ([]any, error) {
	v, ok := record.Get(key)
	if !ok {
		return nil, parsingErrorf("missing result column %q", key)
	}
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, parsingErrorf("result column %q: expected list, got %T", key, v)
	}
	return items, nil
}
