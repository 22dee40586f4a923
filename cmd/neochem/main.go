// Package main provides the neochem CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saulfrancisco-ruizacevedo/go-neochem"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neochem",
		Short: "Query chemical reactions and mechanisms stored in Neo4j",
		Long: `neochem reads reactions, their mechanisms and the reaction paths between
molecules from a Neo4j database and prints them as JSON.

Connection settings come from the --config YAML file and NEOCHEM_* environment
variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("neochem v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reaction [reaction-id]",
		Short: "Show a reaction with its reagents, products and conditions",
		Args:  cobra.ExactArgs(1),
		RunE: withManager(func(ctx context.Context, m *neochem.Manager, ids []int64) (any, error) {
			return m.FindReactionDetails(ctx, ids[0])
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "mechanism [reaction-id]",
		Short: "Show the mechanism a reaction follows, stage by stage",
		Args:  cobra.ExactArgs(1),
		RunE: withManager(func(ctx context.Context, m *neochem.Manager, ids []int64) (any, error) {
			return m.FindMechanismDetails(ctx, ids[0])
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "process [reaction-id]",
		Short: "Show a reaction together with its mechanism, if any",
		Args:  cobra.ExactArgs(1),
		RunE: withManager(func(ctx context.Context, m *neochem.Manager, ids []int64) (any, error) {
			return m.FindProcessDetails(ctx, ids[0])
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "path [from-molecule-id] [to-molecule-id]",
		Short: "Show the shortest reaction path between two molecules",
		Args:  cobra.ExactArgs(2),
		RunE: withManager(func(ctx context.Context, m *neochem.Manager, ids []int64) (any, error) {
			return m.FindPath(ctx, ids[0], ids[1])
		}),
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type lookup func(ctx context.Context, m *neochem.Manager, ids []int64) (any, error)

// withManager parses the positional ids, connects to Neo4j and prints the result of fn.
func withManager(fn lookup) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := neochem.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger := neochem.NewLogger(cfg.Log)

		ctx := cmd.Context()
		executor, err := neochem.NewNeo4jExecutor(cfg.Neo4j, logger)
		if err != nil {
			return err
		}
		defer executor.Close(ctx)
		if err := executor.Verify(ctx); err != nil {
			return fmt.Errorf("could not connect to %s: %w", cfg.Neo4j.URI, err)
		}

		result, err := fn(ctx, neochem.NewManager(executor, logger), ids)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
}
