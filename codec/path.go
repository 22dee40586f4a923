package codec

import (
	"slices"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// DecodePath decodes every node and relationship of a path, keeping their order, and
// copies the traversal sequence as is. Any element failing to decode fails the whole path.
func DecodePath(p graph.Path) (models.PathMask, error) {
	nodes := make(models.Interactants, 0, len(p.Nodes))
	for i, n := range p.Nodes {
		interactant, _, err := DecodeInteractantNode(n)
		if err != nil {
			return models.PathMask{}, withContext(err, "path node %d", i)
		}
		nodes = append(nodes, interactant)
	}

	rels := make(models.Interactants, 0, len(p.Relationships))
	for i, r := range p.Relationships {
		interactant, _, err := DecodeInteractantUnbound(r)
		if err != nil {
			return models.PathMask{}, withContext(err, "path relationship %d", i)
		}
		rels = append(rels, interactant)
	}

	sequence := slices.Clone(p.Sequence)
	if sequence == nil {
		sequence = []int64{}
	}
	return models.PathMask{
		PathNodesMask:         nodes,
		PathRelationshipsMask: rels,
		PathSequenceMask:      sequence,
	}, nil
}
