package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tyltnine/schemascope/audit"
)

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Report foreign-key columns without a covering index",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output findings as JSON",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "run every audit rule, not just fk-missing-index",
			},
		},
		Action: runAudit,
	}
}

func runAudit(_ context.Context, cmd *cli.Command) error {
	ws, err := loadWorkspace(cmd)
	if err != nil {
		return err
	}

	findings := ws.findings
	if cmd.Bool("all") {
		findings = audit.Run(ws.model, audit.DefaultRules())
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(findings)
	}

	if len(findings) == 0 {
		fmt.Println("no findings")

		return nil
	}

	for _, f := range findings {
		fmt.Printf("%s [%s] %s\n", f.Severity, f.Rule, f.Detail)

		if f.SuggestedIndex != "" {
			fmt.Printf("  suggestion: %s\n", f.SuggestedIndex)
		}
	}

	fmt.Printf("\n%d findings\n", len(findings))

	return nil
}
