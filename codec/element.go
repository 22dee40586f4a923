package codec

import (
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
	"github.com/saulfrancisco-ruizacevedo/go-neochem/models"
)

func nodeIdentity(n graph.Node) models.Identity {
	return models.Identity{Kind: models.NodeID, ID: n.ID}
}

func targetIdentity(id int64) models.Identity {
	return models.Identity{Kind: models.RelTargetNodeID, ID: id}
}

func unboundIdentity(r graph.UnboundRelationship) models.Identity {
	return models.Identity{Kind: models.URelID, ID: r.ID}
}

// DecodeMolecule decodes a Molecule node.
func DecodeMolecule(n graph.Node) (models.Molecule, models.Identity, error) {
	if err := expectNode(n, models.KindMolecule); err != nil {
		return models.Molecule{}, models.Identity{}, err
	}
	m, err := moleculeProps(n.Props)
	if err != nil {
		return models.Molecule{}, models.Identity{}, withContext(err, "molecule node %d", n.ID)
	}
	return m, nodeIdentity(n), nil
}

func moleculeProps(props map[string]graph.Value) (models.Molecule, error) {
	var (
		m   models.Molecule
		err error
	)
	if m.ID, err = property(props, "id", DecodeInt); err != nil {
		return m, err
	}
	if m.Smiles, err = property(props, "smiles", DecodeString); err != nil {
		return m, err
	}
	if m.IupacName, err = property(props, "iupacName", DecodeString); err != nil {
		return m, err
	}
	return m, nil
}

// DecodeCatalyst decodes a Catalyst node. A missing or null name is absent.
func DecodeCatalyst(n graph.Node) (models.Catalyst, models.Identity, error) {
	if err := expectNode(n, models.KindCatalyst); err != nil {
		return models.Catalyst{}, models.Identity{}, err
	}
	c, err := catalystProps(n.Props)
	if err != nil {
		return models.Catalyst{}, models.Identity{}, withContext(err, "catalyst node %d", n.ID)
	}
	return c, nodeIdentity(n), nil
}

func catalystProps(props map[string]graph.Value) (models.Catalyst, error) {
	var (
		c   models.Catalyst
		err error
	)
	if c.ID, err = property(props, "id", DecodeInt); err != nil {
		return c, err
	}
	if c.Smiles, err = property(props, "smiles", DecodeString); err != nil {
		return c, err
	}
	if c.Name, err = optionalProperty(props, "name", DecodeString); err != nil {
		return c, err
	}
	return c, nil
}

// DecodeReaction decodes a Reaction node.
func DecodeReaction(n graph.Node) (models.Reaction, models.Identity, error) {
	if err := expectNode(n, models.KindReaction); err != nil {
		return models.Reaction{}, models.Identity{}, err
	}
	r, err := reactionProps(n.Props)
	if err != nil {
		return models.Reaction{}, models.Identity{}, withContext(err, "reaction node %d", n.ID)
	}
	return r, nodeIdentity(n), nil
}

func reactionProps(props map[string]graph.Value) (models.Reaction, error) {
	var (
		r   models.Reaction
		err error
	)
	if r.ID, err = property(props, "id", DecodeInt); err != nil {
		return r, err
	}
	if r.Name, err = property(props, "name", DecodeString); err != nil {
		return r, err
	}
	return r, nil
}

// DecodeMechanism decodes a Mechanism node.
func DecodeMechanism(n graph.Node) (models.Mechanism, models.Identity, error) {
	if err := expectNode(n, models.KindMechanism); err != nil {
		return models.Mechanism{}, models.Identity{}, err
	}
	m, err := mechanismProps(n.Props)
	if err != nil {
		return models.Mechanism{}, models.Identity{}, withContext(err, "mechanism node %d", n.ID)
	}
	return m, nodeIdentity(n), nil
}

// DecodeStage decodes a Stage node.
func DecodeStage(n graph.Node) (models.Stage, models.Identity, error) {
	if err := expectNode(n, models.KindStage); err != nil {
		return models.Stage{}, models.Identity{}, err
	}
	s, err := stageProps(n.Props)
	if err != nil {
		return models.Stage{}, models.Identity{}, withContext(err, "stage node %d", n.ID)
	}
	return s, nodeIdentity(n), nil
}

func mechanismProps(props map[string]graph.Value) (models.Mechanism, error) {
	var (
		m   models.Mechanism
		err error
	)
	if m.ID, err = property(props, "id", DecodeInt); err != nil {
		return m, err
	}
	if m.Name, err = property(props, "name", DecodeString); err != nil {
		return m, err
	}
	if m.Type, err = property(props, "type", DecodeString); err != nil {
		return m, err
	}
	if m.ActivationEnergy, err = property(props, "activationEnergy", DecodeFloat); err != nil {
		return m, err
	}
	return m, nil
}

func stageProps(props map[string]graph.Value) (models.Stage, error) {
	var (
		s   models.Stage
		err error
	)
	if s.Order, err = property(props, "order", DecodeInt); err != nil {
		return s, err
	}
	if s.Name, err = property(props, "name", DecodeString); err != nil {
		return s, err
	}
	if s.Description, err = property(props, "description", DecodeString); err != nil {
		return s, err
	}
	if s.Products, err = property(props, "products", DecodeList(DecodeString)); err != nil {
		return s, err
	}
	return s, nil
}

func amountProps(props map[string]graph.Value) (float32, error) {
	return property(props, "amount", DecodeFloat)
}

func accelerateProps(props map[string]graph.Value) (models.Accelerate, error) {
	var (
		a   models.Accelerate
		err error
	)
	if a.Temperature, err = property(props, "temperature", DecodeList(DecodeFloat)); err != nil {
		return a, err
	}
	if a.Pressure, err = property(props, "pressure", DecodeList(DecodeFloat)); err != nil {
		return a, err
	}
	return a, nil
}

func followProps(props map[string]graph.Value) (models.Follow, error) {
	description, err := property(props, "description", DecodeString)
	return models.Follow{Description: description}, err
}

// DecodeReagentIn decodes a REAGENT_IN relationship. The reagent molecule is its start
// node.
func DecodeReagentIn(r graph.Relationship) (models.ReagentIn, models.Identity, error) {
	if err := expectRel(r.Type, models.KindReagentIn); err != nil {
		return models.ReagentIn{}, models.Identity{}, err
	}
	amount, err := amountProps(r.Props)
	if err != nil {
		return models.ReagentIn{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return models.ReagentIn{Amount: amount}, targetIdentity(r.StartID), nil
}

// DecodeProductFrom decodes a PRODUCT_FROM relationship. The product molecule is its end
// node.
func DecodeProductFrom(r graph.Relationship) (models.ProductFrom, models.Identity, error) {
	if err := expectRel(r.Type, models.KindProductFrom); err != nil {
		return models.ProductFrom{}, models.Identity{}, err
	}
	amount, err := amountProps(r.Props)
	if err != nil {
		return models.ProductFrom{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return models.ProductFrom{Amount: amount}, targetIdentity(r.EndID), nil
}

// DecodeAccelerate decodes an ACCELERATE relationship. The catalyst is its start node.
func DecodeAccelerate(r graph.Relationship) (models.Accelerate, models.Identity, error) {
	if err := expectRel(r.Type, models.KindAccelerate); err != nil {
		return models.Accelerate{}, models.Identity{}, err
	}
	a, err := accelerateProps(r.Props)
	if err != nil {
		return models.Accelerate{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return a, targetIdentity(r.StartID), nil
}

// DecodeFollow decodes a FOLLOW relationship. The mechanism is its end node.
func DecodeFollow(r graph.Relationship) (models.Follow, models.Identity, error) {
	if err := expectRel(r.Type, models.KindFollow); err != nil {
		return models.Follow{}, models.Identity{}, err
	}
	f, err := followProps(r.Props)
	if err != nil {
		return models.Follow{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return f, targetIdentity(r.EndID), nil
}

// DecodeInclude decodes an INCLUDE relationship and returns the identities of both its
// endpoints.
func DecodeInclude(r graph.Relationship) (models.Include, models.Identity, models.Identity, error) {
	if err := expectRel(r.Type, models.KindInclude); err != nil {
		return models.Include{}, models.Identity{}, models.Identity{}, err
	}
	return models.Include{},
		models.Identity{Kind: models.RelStartNodeID, ID: r.StartID},
		targetIdentity(r.EndID),
		nil
}

// DecodeReagentInUnbound decodes a REAGENT_IN relationship found in a path.
func DecodeReagentInUnbound(r graph.UnboundRelationship) (models.ReagentIn, models.Identity, error) {
	if err := expectRel(r.Type, models.KindReagentIn); err != nil {
		return models.ReagentIn{}, models.Identity{}, err
	}
	amount, err := amountProps(r.Props)
	if err != nil {
		return models.ReagentIn{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return models.ReagentIn{Amount: amount}, unboundIdentity(r), nil
}

// DecodeProductFromUnbound decodes a PRODUCT_FROM relationship found in a path.
func DecodeProductFromUnbound(r graph.UnboundRelationship) (models.ProductFrom, models.Identity, error) {
	if err := expectRel(r.Type, models.KindProductFrom); err != nil {
		return models.ProductFrom{}, models.Identity{}, err
	}
	amount, err := amountProps(r.Props)
	if err != nil {
		return models.ProductFrom{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return models.ProductFrom{Amount: amount}, unboundIdentity(r), nil
}

// DecodeAccelerateUnbound decodes an ACCELERATE relationship found in a path.
func DecodeAccelerateUnbound(r graph.UnboundRelationship) (models.Accelerate, models.Identity, error) {
	if err := expectRel(r.Type, models.KindAccelerate); err != nil {
		return models.Accelerate{}, models.Identity{}, err
	}
	a, err := accelerateProps(r.Props)
	if err != nil {
		return models.Accelerate{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return a, unboundIdentity(r), nil
}

// DecodeFollowUnbound decodes a FOLLOW relationship found in a path.
func DecodeFollowUnbound(r graph.UnboundRelationship) (models.Follow, models.Identity, error) {
	if err := expectRel(r.Type, models.KindFollow); err != nil {
		return models.Follow{}, models.Identity{}, err
	}
	f, err := followProps(r.Props)
	if err != nil {
		return models.Follow{}, models.Identity{}, withContext(err, "relationship %d", r.ID)
	}
	return f, unboundIdentity(r), nil
}

// DecodeIncludeUnbound decodes an INCLUDE relationship found in a path.
func DecodeIncludeUnbound(r graph.UnboundRelationship) (models.Include, models.Identity, error) {
	if err := expectRel(r.Type, models.KindInclude); err != nil {
		return models.Include{}, models.Identity{}, err
	}
	return models.Include{}, unboundIdentity(r), nil
}
