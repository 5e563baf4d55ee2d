package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/tyltnine/schemascope/explorer"
)

func exploreCommand() *cli.Command {
	return &cli.Command{
		Name:   "explore",
		Usage:  "Open the interactive schema diagram",
		Action: runExplore,
	}
}

func runExplore(_ context.Context, cmd *cli.Command) error {
	ws, err := loadWorkspace(cmd)
	if err != nil {
		return err
	}

	columns := layoutParams(ws.config).Columns

	state := explorer.NewState()
	ui := explorer.NewUI(ws.model, ws.edges, ws.layout, ws.findings, state, columns)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		// No TTY: render one static frame instead of starting the event loop.
		diagram := explorer.NewDiagram(ws.model, ws.edges, ws.layout, explorer.DefaultStyles())
		fmt.Println(diagram.Render(state, 120, 40))
		fmt.Printf("\n%d tables, %d relationships, %d audit findings\n",
			len(ws.model.Tables()), len(ws.edges), len(ws.findings))

		return nil
	}

	return explorer.Run(ui)
}
