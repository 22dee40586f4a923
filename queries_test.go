package neochem

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// returnColumns splits the final RETURN clause of a query into its columns.
func returnColumns(t *testing.T, query string) []string {
	t.Helper()
	i := strings.LastIndex(query, "RETURN")
	require.GreaterOrEqual(t, i, 0)
	var columns []string
	for _, c := range strings.Split(query[i+len("RETURN"):], ",") {
		columns = append(columns, strings.Join(strings.Fields(c), " "))
	}
	return columns
}

// An aggregating column must be the aggregate alone: Neo4j 5 rejects aggregates mixed
// with variables that are not grouping keys.
func TestReadQueriesAggregateOnlyInPureColumns(t *testing.T) {
	pureAggregate := regexp.MustCompile(`^collect\((DISTINCT )?\w+\) AS \w+$`)

	for name, query := range map[string]string{
		"reaction":  reactionDetailsQuery,
		"mechanism": mechanismDetailsQuery,
	} {
		t.Run(name, func(t *testing.T) {
			for _, column := range returnColumns(t, query) {
				if strings.Contains(column, "collect(") {
					assert.Regexp(t, pureAggregate, column)
				}
			}
		})
	}
}

func TestMechanismQueryReturnsAllColumns(t *testing.T) {
	columns := returnColumns(t, mechanismDetailsQuery)

	assert.Equal(t, []string{
		"mechanism",
		"follow",
		"stages",
		"stageIncludes + participantIncludes AS includes",
		"participants",
	}, columns)
}
