package codec

import (
	"sort"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// decodedNode is a node decoded as T together with its identity.
type decodedNode[T any] struct {
	value T
	id    models.Identity
}

// nodeIndex decodes a list of nodes and indexes them by graph id. A node returned more
// than once (one row per relationship) is the same element and is kept once.
func nodeIndex[T any](nodes []graph.Node, decode func(graph.Node) (T, models.Identity, error)) (map[int64]decodedNode[T], error) {
	index := make(map[int64]decodedNode[T], len(nodes))
	for _, n := range nodes {
		if _, seen := index[n.ID]; seen {
			continue
		}
		v, id, err := decode(n)
		if err != nil {
			return nil, err
		}
		index[n.ID] = decodedNode[T]{value: v, id: id}
	}
	return index, nil
}

// partner finds the node a relationship endpoint refers to.
func partner[T any](index map[int64]decodedNode[T], endpoint models.Identity) (T, bool) {
	node, ok := index[endpoint.ID]
	if !ok || !endpoint.Refers(node.id) {
		var zero T
		return zero, false
	}
	return node.value, true
}

// correlate decodes each relationship and pairs it with the node its identity refers to,
// in relationship order.
func correlate[R, N any](
	rels []graph.Relationship,
	decodeRel func(graph.Relationship) (R, models.Identity, error),
	index map[int64]decodedNode[N],
) ([]models.Pair[R, N], error) {
	pairs := make([]models.Pair[R, N], 0, len(rels))
	for _, r := range rels {
		v, endpoint, err := decodeRel(r)
		if err != nil {
			return nil, err
		}
		node, ok := partner(index, endpoint)
		if !ok {
			return nil, parsingErrorf("relationship %d (%s) matches no node for %s", r.ID, r.Type, endpoint)
		}
		pairs = append(pairs, models.PairOf(v, node))
	}
	return pairs, nil
}

// CorrelateReaction decodes a raw reaction result and pairs every REAGENT_IN,
// PRODUCT_FROM and ACCELERATE relationship with its molecule or catalyst.
func CorrelateReaction(raw graph.RawReactionDetails) (models.ReactionDetails, error) {
	reaction, _, err := DecodeReaction(raw.Reaction)
	if err != nil {
		return models.ReactionDetails{}, err
	}

	reagents, err := nodeIndex(raw.Reagents, DecodeMolecule)
	if err != nil {
		return models.ReactionDetails{}, err
	}
	products, err := nodeIndex(raw.Products, DecodeMolecule)
	if err != nil {
		return models.ReactionDetails{}, err
	}
	catalysts, err := nodeIndex(raw.Catalysts, DecodeCatalyst)
	if err != nil {
		return models.ReactionDetails{}, err
	}

	details := models.ReactionDetails{Reaction: reaction}
	if details.InboundReagents, err = correlate(raw.ReagentIns, DecodeReagentIn, reagents); err != nil {
		return models.ReactionDetails{}, err
	}
	if details.OutboundProducts, err = correlate(raw.ProductFroms, DecodeProductFrom, products); err != nil {
		return models.ReactionDetails{}, err
	}
	if details.Conditions, err = correlate(raw.Accelerates, DecodeAccelerate, catalysts); err != nil {
		return models.ReactionDetails{}, err
	}
	return details, nil
}

// CorrelateMechanism decodes a raw mechanism result.
//
// The FOLLOW relationship must end at the mechanism node. Each INCLUDE relationship either
// links the mechanism to a stage or links a participant to a stage, in either direction.
// Stages come back sorted by their order property; participants keep relationship order.
func CorrelateMechanism(raw graph.RawMechanismDetails) (models.MechanismDetails, error) {
	mechanism, mechanismID, err := DecodeMechanism(raw.Mechanism)
	if err != nil {
		return models.MechanismDetails{}, err
	}
	follow, followEnd, err := DecodeFollow(raw.Follow)
	if err != nil {
		return models.MechanismDetails{}, err
	}
	if !followEnd.Refers(mechanismID) {
		return models.MechanismDetails{}, parsingErrorf("relationship %d (%s) matches no node for %s", raw.Follow.ID, raw.Follow.Type, followEnd)
	}

	stages, err := nodeIndex(raw.Stages, DecodeStage)
	if err != nil {
		return models.MechanismDetails{}, err
	}
	participants, err := nodeIndex(raw.Participants, DecodeInteractantNode)
	if err != nil {
		return models.MechanismDetails{}, err
	}

	// Stage graph ids in first-seen order, for a stable sort.
	stageOrder := make([]int64, 0, len(stages))
	seen := make(map[int64]bool, len(stages))
	for _, n := range raw.Stages {
		if !seen[n.ID] {
			seen[n.ID] = true
			stageOrder = append(stageOrder, n.ID)
		}
	}
	members := make(map[int64]models.Interactants, len(stages))

	for _, r := range raw.Includes {
		_, start, end, err := DecodeInclude(r)
		if err != nil {
			return models.MechanismDetails{}, err
		}
		switch {
		case start.Refers(mechanismID):
			if _, ok := partner(stages, end); !ok {
				return models.MechanismDetails{}, parsingErrorf("relationship %d (%s) matches no stage for %s", r.ID, r.Type, end)
			}
		default:
			stageID, participant, ok := includeParticipant(stages, participants, start, end)
			if !ok {
				return models.MechanismDetails{}, parsingErrorf("relationship %d (%s) matches no stage and participant for %s, %s", r.ID, r.Type, start, end)
			}
			members[stageID] = append(members[stageID], participant)
		}
	}

	pairs := make([]models.Pair[models.Stage, models.Interactants], 0, len(stageOrder))
	for _, id := range stageOrder {
		list := members[id]
		if list == nil {
			list = models.Interactants{}
		}
		pairs = append(pairs, models.PairOf(stages[id].value, list))
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].First.Order < pairs[j].First.Order
	})

	return models.MechanismDetails{
		MechanismContext: models.PairOf(mechanism, follow),
		Stages:           pairs,
	}, nil
}

// includeParticipant resolves an INCLUDE between a stage and a participant, whichever end
// the stage is on.
func includeParticipant(
	stages map[int64]decodedNode[models.Stage],
	participants map[int64]decodedNode[models.Interactant],
	start, end models.Identity,
) (int64, models.Interactant, bool) {
	if _, ok := partner(stages, end); ok {
		if p, ok := partner(participants, start); ok {
			return end.ID, p, true
		}
	}
	if _, ok := partner(stages, start); ok {
		if p, ok := partner(participants, end); ok {
			return start.ID, p, true
		}
	}
	return 0, nil, false
}
