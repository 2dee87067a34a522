package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var showArgs bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the mux plans a run would execute",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newAnalyser()
			if err != nil {
				return err
			}

			plans, err := a.Plans(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, "Nothing to do")
				return nil
			}

			rows := make([][]string, 0, len(plans))
			for _, result := range plans {
				rows = append(rows, []string{
					displayTitle(result.Movie.Name),
					languageList(result.Added),
					fmt.Sprintf("%d", len(result.Plan.Directives)),
					result.OutputPath,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Movie", "Adding", "Streams", "Output"},
				rows,
				2,
			))

			if showArgs {
				for _, result := range plans {
					fmt.Fprintf(out, "\n%s:\n  ffmpeg %s\n",
						result.Movie.Name,
						strings.Join(result.Plan.FFmpegArgs(result.OutputPath), " "),
					)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showArgs, "args", false, "Print the full ffmpeg argument vector per movie")
	return cmd
}
