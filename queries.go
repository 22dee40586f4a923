package neochem

import "fmt"

// Read queries return collect()ed lists so that one reaction or mechanism is exactly one
// record, whatever the number of reagents, products, catalysts or stages.

const reactionDetailsQuery = `
MATCH (reaction:Reaction {id: $id})
OPTIONAL MATCH (reagent:Molecule)-[reagentIn:REAGENT_IN]->(reaction)
WITH reaction, collect(reagentIn) AS reagentIns, collect(reagent) AS reagents
OPTIONAL MATCH (reaction)-[productFrom:PRODUCT_FROM]->(product:Molecule)
WITH reaction, reagentIns, reagents, collect(productFrom) AS productFroms, collect(product) AS products
OPTIONAL MATCH (catalyst:Catalyst)-[accelerate:ACCELERATE]->(reaction)
RETURN reaction, reagentIns, reagents, productFroms, products,
       collect(accelerate) AS accelerates, collect(catalyst) AS catalysts`

// A reaction following several mechanisms reports the one with the lowest id.
const mechanismDetailsQuery = `
MATCH (:Reaction {id: $id})-[follow:FOLLOW]->(mechanism:Mechanism)
WITH follow, mechanism ORDER BY mechanism.id LIMIT 1
OPTIONAL MATCH (mechanism)-[stageInclude:INCLUDE]->(stage:Stage)
WITH follow, mechanism, collect(stageInclude) AS stageIncludes, collect(stage) AS stages
OPTIONAL MATCH (participant)-[participantInclude:INCLUDE]->(:Stage)<-[:INCLUDE]-(mechanism)
WHERE participant:Molecule OR participant:Catalyst OR participant:Reaction
WITH mechanism, follow, stages, stageIncludes,
     collect(participantInclude) AS participantIncludes,
     collect(DISTINCT participant) AS participants
RETURN mechanism, follow, stages, stageIncludes + participantIncludes AS includes, participants`

const maxPathLength = 10

var pathQuery = fmt.Sprintf(`
MATCH (source:Molecule {id: $from}), (target:Molecule {id: $to})
MATCH path = shortestPath((source)-[:REAGENT_IN|PRODUCT_FROM|ACCELERATE*..%d]-(target))
RETURN path`, maxPathLength)

const mergeFollowQuery = `
MATCH (reaction:Reaction {id: $reactionId}), (mechanism:Mechanism {id: $mechanismId})
MERGE (reaction)-[follow:FOLLOW]->(mechanism)
SET follow += $props`

const mergeStageQuery = `
MATCH (mechanism:Mechanism {id: $mechanismId})
MERGE (mechanism)-[:INCLUDE]->(stage:Stage {order: $order})
SET stage += $props`

// mergeParticipantQuery takes the participant label as its only format argument. Labels
// come from codec.LabelOf, never from user input.
const mergeParticipantQuery = `
MATCH (:Mechanism {id: $mechanismId})-[:INCLUDE]->(stage:Stage {order: $order})
MATCH (participant:%s {id: $participantId})
MERGE (participant)-[:INCLUDE]->(stage)`
