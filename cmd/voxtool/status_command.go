package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voxtool/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiAmber = "\x1b[33m"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories and external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			results := preflight.RunAll(cfg)
			colorize := shouldColorize(cmd.OutOrStdout())

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				if !result.Passed && !result.Optional {
					failed++
				}
				rows = append(rows, []string{
					result.Name,
					statusCell(result, colorize),
					result.Detail,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
			if failed > 0 {
				return fmt.Errorf("%d required check(s) failed", failed)
			}
			return nil
		},
	}
}

func statusCell(result preflight.Result, colorize bool) string {
	label, color := "ok", ansiGreen
	switch {
	case !result.Passed && result.Optional:
		label, color = "missing (optional)", ansiAmber
	case !result.Passed:
		label, color = "FAIL", ansiRed
	}
	if colorize {
		return color + label + ansiReset
	}
	return label
}
