// Command schemascope explores and documents a fixed relational schema: an
// interactive diagram, generated documentation, an FK-index audit, and a
// read-only JSON server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/audit"
	"github.com/tyltnine/schemascope/graph"
)

func main() {
	cmd := &cli.Command{
		Name:  "schemascope",
		Usage: "Explore and document the database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dataset",
				Usage:   "schema dataset file (default: bundled dataset)",
				Sources: cli.EnvVars("SCHEMASCOPE_DATASET"),
			},
		},
		Commands: []*cli.Command{
			exploreCommand(),
			auditCommand(),
			docsCommand(),
			printCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "schemascope: %v\n", err)
		os.Exit(1)
	}
}

// workspace bundles everything derived from one dataset load.
type workspace struct {
	model    *schemascope.Model
	config   *schemascope.Config
	edges    []graph.Edge
	layout   map[string]graph.Point
	findings []audit.Finding
}

// loadWorkspace loads config and dataset and builds all derived structures.
// The dataset flag beats the config; both absent means the bundled dataset.
// A missing or malformed dataset is fatal: without a schema there is nothing
// to explore.
func loadWorkspace(cmd *cli.Command) (*workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, baseDir, err := schemascope.LoadConfig(cwd)
	if err != nil {
		if !errors.Is(err, schemascope.ErrConfigNotFound) {
			return nil, err
		}

		cfg = &schemascope.Config{}
		baseDir = cwd
	}

	datasetPath := cmd.String("dataset")
	if datasetPath == "" {
		datasetPath = cfg.Dataset
	}

	model, err := schemascope.LoadModel(datasetPath, baseDir)
	if err != nil {
		return nil, fmt.Errorf("loading schema dataset: %w", err)
	}

	params := layoutParams(cfg)

	return &workspace{
		model:    model,
		config:   cfg,
		edges:    graph.BuildEdges(model),
		layout:   graph.ComputeLayout(model.Tables(), params),
		findings: audit.Audit(model),
	}, nil
}

func layoutParams(cfg *schemascope.Config) graph.LayoutParams {
	params := graph.DefaultLayoutParams()

	if cfg.Layout.Columns > 0 {
		params.Columns = cfg.Layout.Columns
	}

	if cfg.Layout.NodeWidth > 0 {
		params.NodeWidth = float64(cfg.Layout.NodeWidth)
	}

	if cfg.Layout.NodePadding > 0 {
		params.NodePadding = float64(cfg.Layout.NodePadding)
	}

	if cfg.Layout.RowHeight > 0 {
		params.RowHeight = float64(cfg.Layout.RowHeight)
	}

	return params
}
