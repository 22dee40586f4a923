package neochem

import (
	"context"
	"fmt"

	"github.com/saulfrancisco-ruizacevedo/gocypher"
	"github.com/sirupsen/logrus"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/codec"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// InteractantRepository stores and loads the node-side interactants (Molecule, Catalyst,
// Reaction) keyed by their domain id.
type InteractantRepository struct {
	runner DBRunner
	log    *logrus.Entry
}

// NewInteractantRepository creates a repository running its queries on runner.
func NewInteractantRepository(runner DBRunner, logger *logrus.Logger) *InteractantRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &InteractantRepository{
		runner: runner,
		log:    logger.WithField("component", "InteractantRepository"),
	}
}

// Save creates the node or updates the existing one with the same label and id. Every
// property of the entity's node mask other than id is set on the node.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - entity: A Molecule, Catalyst or Reaction.
//
// Returns:
//
//	A ParsingError if entity is not stored as a node, or the query error.
func (r *InteractantRepository) Save(ctx context.Context, entity models.Interactant) error {
	mask, err := codec.NodeMaskOf(entity)
	if err != nil {
		return err
	}
	label, err := codec.LabelOf(entity.Kind())
	if err != nil {
		return err
	}
	return saveNode(ctx, r.runner, label, mask, "id")
}

// FindByID loads the node of the given kind by domain id.
//
// Returns:
//
//	The decoded entity, ErrNotFound when no node matches, or a ParsingError when the
//	stored node cannot be decoded.
func (r *InteractantRepository) FindByID(ctx context.Context, kind models.Kind, id int64) (models.Interactant, error) {
	label, err := codec.LabelOf(kind)
	if err != nil {
		return nil, err
	}
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label).WithProperties(map[string]interface{}{"id": id})).
		Return("n").
		Build()
	if err != nil {
		return nil, err
	}

	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	if len(result.Records) > 1 {
		// A domain id lookup should be unique.
		return nil, fmt.Errorf("expected 1 %s with id %d but found %d", label, id, len(result.Records))
	}

	node, err := codec.RecordNode(result.Records[0], "n")
	if err != nil {
		return nil, err
	}
	entity, _, err := codec.DecodeInteractantNode(node)
	if err != nil {
		r.log.WithError(err).WithField("node", node.ID).Warn("Stored node does not decode")
		return nil, err
	}
	if entity.Kind() != kind {
		return nil, fmt.Errorf("%s with id %d decoded as %s", label, id, entity.Kind())
	}
	return entity, nil
}

// Delete removes the node of the given kind and all its relationships.
func (r *InteractantRepository) Delete(ctx context.Context, kind models.Kind, id int64) error {
	label, err := codec.LabelOf(kind)
	if err != nil {
		return err
	}
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label).WithProperties(map[string]interface{}{"id": id})).
		DetachDelete("n").
		Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

// saveNode merges a node on the key properties and sets the rest of the mask.
func saveNode(ctx context.Context, runner DBRunner, label string, mask models.NodeMask, keys ...string) error {
	mergeProps := make(map[string]interface{}, len(keys))
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		v, ok := mask.Properties[k]
		if !ok {
			return fmt.Errorf("%s mask has no %q property", label, k)
		}
		mergeProps[k] = v
		isKey[k] = true
	}

	setProps := make(map[string]interface{}, len(mask.Properties))
	for prop, v := range mask.Properties {
		if !isKey[prop] {
			setProps["n."+prop] = v
		}
	}

	qb := gocypher.NewQueryBuilder().Merge(gocypher.N("n", label).WithProperties(mergeProps))
	if len(setProps) > 0 {
		qb = qb.Set(setProps)
	}
	query, params, err := qb.Return("n").Build()
	if err != nil {
		return err
	}
	_, err = runner.Run(ctx, query, params)
	return err
}
