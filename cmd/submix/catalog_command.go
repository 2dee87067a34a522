package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"submix/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the subtitle files matched per movie",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			cat, err := catalog.Build(cfg.Paths.SubtitleDir, cfg.CatalogDefaultLanguage(), logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := cat.Entries()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No subtitle files found under %s\n", cfg.Paths.SubtitleDir)
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					displayTitle(entry.Name),
					entry.Language.Name(),
					entry.Path,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Movie", "Language", "File"},
				rows,
			))
			return nil
		},
	}
}
