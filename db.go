// Package neochem stores chemical reactions and their mechanisms in Neo4j and reads them
// back as typed, validated aggregates.
//
// Raw query results are converted by the codec package; this package owns the database
// connection, the Cypher statements and the orchestration around them.
package neochem

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
)

// DBRunner abstracts the execution of a Cypher query, allowing for different
// implementations or mocking in tests.
type DBRunner interface {
	// Run executes a Cypher query with parameters and returns a fully-buffered result.
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

// Neo4jExecutor is the DBRunner backed by the official Neo4j Go driver.
type Neo4jExecutor struct {
	Driver neo4j.DriverWithContext
	DBName string
	log    *logrus.Entry
}

// NewNeo4jExecutor creates a driver for the instance described by cfg.
//
// Parameters:
//   - cfg: URI, credentials and database name of the Neo4j instance.
//   - logger: Logger for query tracing; nil uses the logrus standard logger.
//
// Returns:
//
//	The executor, or an error if the driver cannot be created. The connection itself is
//	only established on first use or by Verify.
func NewNeo4jExecutor(cfg Neo4jConfig, logger *logrus.Logger) (*Neo4jExecutor, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Neo4jExecutor{
		Driver: driver,
		DBName: cfg.Database,
		log: logger.WithFields(logrus.Fields{
			"component": "Neo4jExecutor",
			"database":  cfg.Database,
		}),
	}, nil
}

// Verify checks connectivity to the database.
func (e *Neo4jExecutor) Verify(ctx context.Context) error {
	if err := e.Driver.VerifyConnectivity(ctx); err != nil {
		e.log.WithError(err).Error("Neo4j connectivity check failed")
		return err
	}
	return nil
}

// Close releases the driver and its connection pool.
func (e *Neo4jExecutor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

// Run executes a Cypher query through ExecuteQuery, which manages sessions, transactions
// and retries of transient failures.
func (e *Neo4jExecutor) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	e.log.WithField("params", len(params)).Trace(query)

	result, err := neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName),
	)
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j query: %w", err)
	}

	e.log.WithField("records", len(result.Records)).Debug("Query executed")
	return result, nil
}
