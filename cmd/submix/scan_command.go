package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report missing subtitle languages per movie",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newAnalyser()
			if err != nil {
				return err
			}

			gaps, err := a.Scan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(gaps) == 0 {
				fmt.Fprintln(out, "No movies found")
				return nil
			}

			rows := make([][]string, 0, len(gaps))
			for _, gap := range gaps {
				missing := "up to date"
				if len(gap.Missing) > 0 {
					missing = languageList(gap.Missing)
				}
				rows = append(rows, []string{
					displayTitle(gap.Movie.Name),
					fmt.Sprintf("%d", len(gap.Movie.EmbeddedSubtitles())),
					missing,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Movie", "Embedded Subs", "Missing"},
				rows,
				1,
			))
			return nil
		},
	}
}
