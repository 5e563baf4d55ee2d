package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/docs"
)

func docsCommand() *cli.Command {
	return &cli.Command{
		Name:  "docs",
		Usage: "Generate schema documentation as Markdown",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "split",
				Usage: "write one file per table into this directory",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: `object filter expression, e.g. 'domain == "billing"'`,
			},
		},
		Action: runDocs,
	}
}

func runDocs(_ context.Context, cmd *cli.Command) error {
	ws, err := loadWorkspace(cmd)
	if err != nil {
		return err
	}

	if dir := cmd.String("split"); dir != "" {
		mf := docs.NewMultiFileFormatter(dir, ws.model, ws.edges, ws.findings)

		return mf.Format()
	}

	var buf bytes.Buffer

	md := docs.NewMarkdownFormatter(&buf, ws.model, ws.edges, ws.findings)

	if src := cmd.String("filter"); src != "" {
		filter, err := schemascope.CompileFilter(src)
		if err != nil {
			return err
		}

		for _, obj := range filter.Apply(ws.model.Objects()) {
			md.FormatObject(obj)
		}
	} else if err := md.Format(); err != nil {
		return err
	}

	return writeOutput(cmd.String("out"), buf.Bytes())
}

func printCommand() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "Generate a print-ready standalone HTML export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
		},
		Action: runPrint,
	}
}

func runPrint(_ context.Context, cmd *cli.Command) error {
	ws, err := loadWorkspace(cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	if err := docs.WritePrintHTML(&buf, ws.model, ws.edges, ws.findings); err != nil {
		return err
	}

	return writeOutput(cmd.String("out"), buf.Bytes())
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)

		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
