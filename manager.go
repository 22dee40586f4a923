package neochem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
	"github.com/sirupsen/logrus"

	"github.com/saulfrancisco-ruizacevedo/go-neochem/codec"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/metrics"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

// Manager is the entry point of the backend. It runs the reaction and mechanism queries,
// hands the raw results to the codec and returns typed aggregates; on the write side it
// turns entities into masks and masks into Cypher.
type Manager struct {
	runner DBRunner
	repo   *InteractantRepository
	logger *logrus.Logger
}

// NewManager creates a Manager. A nil logger uses the logrus standard logger.
func NewManager(runner DBRunner, logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Manager{
		runner: runner,
		repo:   NewInteractantRepository(runner, logger),
		logger: logger,
	}
}

// Interactants returns the repository for Molecule, Catalyst and Reaction nodes.
func (m *Manager) Interactants() *InteractantRepository {
	return m.repo
}

// track starts an operation: it returns a logger tagged with a fresh request id and a
// function recording the outcome in logs and metrics.
func (m *Manager) track(operation string) (*logrus.Entry, func(error)) {
	log := m.logger.WithFields(logrus.Fields{
		"component":  "Manager",
		"operation":  operation,
		"request_id": uuid.NewString(),
	})
	start := time.Now()
	return log, func(err error) {
		metrics.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		switch {
		case err == nil:
			metrics.QueriesTotal.WithLabelValues(operation, metrics.StatusOK).Inc()
			log.Debug("Operation completed")
		case errors.Is(err, ErrNotFound):
			metrics.QueriesTotal.WithLabelValues(operation, metrics.StatusNotFound).Inc()
			log.Debug("Nothing found")
		default:
			metrics.QueriesTotal.WithLabelValues(operation, metrics.StatusError).Inc()
			if errors.Is(err, codec.ErrParsing) {
				metrics.ParsingFailures.WithLabelValues(operation).Inc()
			}
			log.WithError(err).Error("Operation failed")
		}
	}
}

// single runs a read query expected to produce at most one record.
func (m *Manager) single(ctx context.Context, query string, params map[string]any) (*recordView, error) {
	result, err := m.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	switch len(result.Records) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &recordView{record: result.Records[0]}, nil
	default:
		return nil, fmt.Errorf("expected 1 record but found %d", len(result.Records))
	}
}

// FindReactionDetails loads a reaction with its reagents, products and catalytic
// conditions.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - reactionID: The domain id of the reaction.
//
// Returns:
//
//	The correlated ReactionDetails, ErrNotFound if no such reaction exists, a ParsingError
//	if the stored data cannot be decoded, or the query error.
func (m *Manager) FindReactionDetails(ctx context.Context, reactionID int64) (details models.ReactionDetails, err error) {
	log, done := m.track("find_reaction_details")
	defer func() { done(err) }()
	log = log.WithField("reaction_id", reactionID)

	raw, err := m.rawReactionDetails(ctx, reactionID)
	if err != nil {
		return models.ReactionDetails{}, err
	}
	details, err = codec.CorrelateReaction(raw)
	if err != nil {
		return models.ReactionDetails{}, fmt.Errorf("decoding reaction %d: %w", reactionID, err)
	}
	log.WithFields(logrus.Fields{
		"reagents":   len(details.InboundReagents),
		"products":   len(details.OutboundProducts),
		"conditions": len(details.Conditions),
	}).Debug("Reaction correlated")
	return details, nil
}

func (m *Manager) rawReactionDetails(ctx context.Context, reactionID int64) (graph.RawReactionDetails, error) {
	rec, err := m.single(ctx, reactionDetailsQuery, map[string]any{"id": reactionID})
	if err != nil {
		return graph.RawReactionDetails{}, err
	}
	var raw graph.RawReactionDetails
	rec.node("reaction", &raw.Reaction)
	rec.relationships("reagentIns", &raw.ReagentIns)
	rec.nodes("reagents", &raw.Reagents)
	rec.relationships("productFroms", &raw.ProductFroms)
	rec.nodes("products", &raw.Products)
	rec.relationships("accelerates", &raw.Accelerates)
	rec.nodes("catalysts", &raw.Catalysts)
	if rec.err != nil {
		return graph.RawReactionDetails{}, fmt.Errorf("reading reaction %d: %w", reactionID, rec.err)
	}
	return raw, nil
}

// FindMechanismDetails loads the mechanism a reaction follows with its ordered stages.
//
// Returns:
//
//	ErrNotFound if the reaction does not exist or follows no mechanism.
func (m *Manager) FindMechanismDetails(ctx context.Context, reactionID int64) (details models.MechanismDetails, err error) {
	_, done := m.track("find_mechanism_details")
	defer func() { done(err) }()

	details, err = m.mechanismDetails(ctx, reactionID)
	return details, err
}

func (m *Manager) mechanismDetails(ctx context.Context, reactionID int64) (models.MechanismDetails, error) {
	rec, err := m.single(ctx, mechanismDetailsQuery, map[string]any{"id": reactionID})
	if err != nil {
		return models.MechanismDetails{}, err
	}
	var raw graph.RawMechanismDetails
	rec.node("mechanism", &raw.Mechanism)
	rec.relationship("follow", &raw.Follow)
	rec.nodes("stages", &raw.Stages)
	rec.relationships("includes", &raw.Includes)
	rec.nodes("participants", &raw.Participants)
	if rec.err != nil {
		return models.MechanismDetails{}, fmt.Errorf("reading mechanism of reaction %d: %w", reactionID, rec.err)
	}

	details, err := codec.CorrelateMechanism(raw)
	if err != nil {
		return models.MechanismDetails{}, fmt.Errorf("decoding mechanism of reaction %d: %w", reactionID, err)
	}
	return details, nil
}

// FindProcessDetails loads a reaction and, when it follows one, its mechanism.
func (m *Manager) FindProcessDetails(ctx context.Context, reactionID int64) (process models.ProcessDetails, err error) {
	log, done := m.track("find_process_details")
	defer func() { done(err) }()

	raw, err := m.rawReactionDetails(ctx, reactionID)
	if err != nil {
		return models.ProcessDetails{}, err
	}
	reaction, err := codec.CorrelateReaction(raw)
	if err != nil {
		return models.ProcessDetails{}, fmt.Errorf("decoding reaction %d: %w", reactionID, err)
	}
	process.ReactionDetails = reaction

	mechanism, err := m.mechanismDetails(ctx, reactionID)
	switch {
	case errors.Is(err, ErrNotFound):
		log.WithField("reaction_id", reactionID).Debug("Reaction follows no mechanism")
	case err != nil:
		return models.ProcessDetails{}, err
	default:
		process.MechanismDetails = &mechanism
	}
	return process, nil
}

// FindPath finds the shortest chain of reactions linking two molecules, in either
// direction.
//
// Returns:
//
//	The decoded PathMask, or ErrNotFound when either molecule is missing or they are not
//	connected within the maximum path length.
func (m *Manager) FindPath(ctx context.Context, fromMoleculeID, toMoleculeID int64) (mask models.PathMask, err error) {
	_, done := m.track("find_path")
	defer func() { done(err) }()

	rec, err := m.single(ctx, pathQuery, map[string]any{"from": fromMoleculeID, "to": toMoleculeID})
	if err != nil {
		return models.PathMask{}, err
	}
	path, err := codec.RecordPath(rec.record, "path")
	if err != nil {
		return models.PathMask{}, err
	}
	mask, err = codec.DecodePath(path)
	if err != nil {
		return models.PathMask{}, fmt.Errorf("decoding path %d-%d: %w", fromMoleculeID, toMoleculeID, err)
	}
	return mask, nil
}

// CreateRelation creates a relationship between two existing node-side interactants.
// The relationship type and properties come from rel, which must be a ReagentIn,
// ProductFrom or Accelerate.
func (m *Manager) CreateRelation(ctx context.Context, from, to, rel models.Interactant) (err error) {
	_, done := m.track("create_relation")
	defer func() { done(err) }()

	return m.createRelation(ctx, from, to, rel)
}

func (m *Manager) createRelation(ctx context.Context, from, to, rel models.Interactant) error {
	fromLabel, fromID, err := nodeKey(from)
	if err != nil {
		return err
	}
	toLabel, toID, err := nodeKey(to)
	if err != nil {
		return err
	}
	relMask, err := codec.RelMaskOf(rel)
	if err != nil {
		return err
	}
	relType, err := codec.RelTypeOf(rel.Kind())
	if err != nil {
		return err
	}

	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("a", fromLabel).WithProperties(map[string]interface{}{"id": fromID})).
		Match(gocypher.N("b", toLabel).WithProperties(map[string]interface{}{"id": toID})).
		Create(
			gocypher.N("a", ""),
			gocypher.R("r", relType).To().WithProperties(relMask.Properties),
			gocypher.N("b", ""),
		).
		Build()
	if err != nil {
		return err
	}
	_, err = m.runner.Run(ctx, query, params)
	return err
}

// nodeKey returns the label and domain id of a node-side interactant.
func nodeKey(i models.Interactant) (string, int64, error) {
	mask, err := codec.NodeMaskOf(i)
	if err != nil {
		return "", 0, err
	}
	label, err := codec.LabelOf(i.Kind())
	if err != nil {
		return "", 0, err
	}
	id, _ := mask.Properties["id"].(int64)
	return label, id, nil
}

// SaveReactionDetails writes a reaction, every molecule and catalyst it involves, and the
// relationships between them. Nodes are merged on their id; relationships are created.
func (m *Manager) SaveReactionDetails(ctx context.Context, details models.ReactionDetails) (err error) {
	log, done := m.track("save_reaction_details")
	defer func() { done(err) }()

	if err := m.repo.Save(ctx, details.Reaction); err != nil {
		return err
	}
	for _, p := range details.InboundReagents {
		if err := m.saveAndLink(ctx, p.Second, details.Reaction, p.First); err != nil {
			return err
		}
	}
	for _, p := range details.OutboundProducts {
		if err := m.saveAndLink(ctx, details.Reaction, p.Second, p.First); err != nil {
			return err
		}
	}
	for _, p := range details.Conditions {
		if err := m.saveAndLink(ctx, p.Second, details.Reaction, p.First); err != nil {
			return err
		}
	}
	log.WithField("reaction_id", details.Reaction.ID).Info("Reaction saved")
	return nil
}

// saveAndLink saves whichever endpoint is not the reaction, then links from to to.
func (m *Manager) saveAndLink(ctx context.Context, from, to, rel models.Interactant) error {
	other := from
	if from.Kind() == models.KindReaction {
		other = to
	}
	if err := m.repo.Save(ctx, other); err != nil {
		return err
	}
	return m.createRelation(ctx, from, to, rel)
}

// SaveMechanismDetails writes a mechanism, links the reaction to it with FOLLOW and
// merges each stage under it with INCLUDE. Stage participants must already exist; they
// are linked to their stage with INCLUDE.
func (m *Manager) SaveMechanismDetails(ctx context.Context, reactionID int64, details models.MechanismDetails) (err error) {
	log, done := m.track("save_mechanism_details")
	defer func() { done(err) }()

	mechanism := details.MechanismContext.First
	mask, err := codec.ExplainNodeMaskOf(mechanism)
	if err != nil {
		return err
	}
	if err := saveNode(ctx, m.runner, codec.LabelMechanism, mask, "id"); err != nil {
		return err
	}

	follow := codec.FollowRelMask(details.MechanismContext.Second)
	if _, err := m.runner.Run(ctx, mergeFollowQuery, map[string]any{
		"reactionId":  reactionID,
		"mechanismId": mechanism.ID,
		"props":       follow.Properties,
	}); err != nil {
		return err
	}

	for _, stage := range details.Stages {
		stageMask, err := codec.ExplainNodeMaskOf(stage.First)
		if err != nil {
			return err
		}
		if _, err := m.runner.Run(ctx, mergeStageQuery, map[string]any{
			"mechanismId": mechanism.ID,
			"order":       stage.First.Order,
			"props":       stageMask.Properties,
		}); err != nil {
			return err
		}

		for _, participant := range stage.Second {
			label, id, err := nodeKey(participant)
			if err != nil {
				return err
			}
			if _, err := m.runner.Run(ctx, fmt.Sprintf(mergeParticipantQuery, label), map[string]any{
				"mechanismId":   mechanism.ID,
				"order":         stage.First.Order,
				"participantId": id,
			}); err != nil {
				return err
			}
		}
	}
	log.WithFields(logrus.Fields{
		"reaction_id":  reactionID,
		"mechanism_id": mechanism.ID,
		"stages":       len(details.Stages),
	}).Info("Mechanism saved")
	return nil
}
